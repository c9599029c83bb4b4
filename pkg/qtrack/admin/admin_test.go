package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/auth"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(auth.AuthMiddleware(), auth.RequireAdmin())
	handler.RegisterRoutes(adminGroup)

	return r
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	user := models.User{Email: email, Username: "Test User", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func getAuthHeader(user models.User) string {
	token, _ := auth.GenerateToken(user.ID, user.Email, user.Username, string(user.Role))
	return "Bearer " + token
}

func TestListUsersRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "marie@usine.fr", models.RoleUser)

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", getAuthHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-admin, got %d", resp.Code)
	}
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createTestUser(t, db, "admin@usine.fr", models.RoleAdmin)
	createTestUser(t, db, "qm@usine.fr", models.RoleQualityManager)
	createTestUser(t, db, "marie@usine.fr", models.RoleUser)

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", getAuthHeader(admin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var responses []UserResponse
	json.Unmarshal(resp.Body.Bytes(), &responses)
	if len(responses) != 3 {
		t.Errorf("Expected 3 users, got %d", len(responses))
	}
}

func TestListUsersRoleFilter(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createTestUser(t, db, "admin@usine.fr", models.RoleAdmin)
	createTestUser(t, db, "qm@usine.fr", models.RoleQualityManager)

	req, _ := http.NewRequest("GET", "/api/admin/users?role=Quality+Manager", nil)
	req.Header.Set("Authorization", getAuthHeader(admin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var responses []UserResponse
	json.Unmarshal(resp.Body.Bytes(), &responses)
	if len(responses) != 1 || responses[0].Email != "qm@usine.fr" {
		t.Errorf("Expected only the quality manager, got %v", responses)
	}
}

func TestUpdateUserRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createTestUser(t, db, "admin@usine.fr", models.RoleAdmin)
	user := createTestUser(t, db, "marie@usine.fr", models.RoleUser)

	role := "Quality Manager"
	jsonBody, _ := json.Marshal(UpdateUserRequest{Role: &role})
	req, _ := http.NewRequest("PATCH", "/api/admin/users/2", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(admin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var check models.User
	db.First(&check, user.ID)
	if check.Role != models.RoleQualityManager {
		t.Errorf("Expected role Quality Manager, got %s", check.Role)
	}
}

func TestUpdateUserInvalidRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createTestUser(t, db, "admin@usine.fr", models.RoleAdmin)
	createTestUser(t, db, "marie@usine.fr", models.RoleUser)

	role := "Superviseur"
	jsonBody, _ := json.Marshal(UpdateUserRequest{Role: &role})
	req, _ := http.NewRequest("PATCH", "/api/admin/users/2", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(admin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}
}

func TestAdminCannotDemoteSelf(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createTestUser(t, db, "admin@usine.fr", models.RoleAdmin)

	role := "User"
	jsonBody, _ := json.Marshal(UpdateUserRequest{Role: &role})
	req, _ := http.NewRequest("PATCH", "/api/admin/users/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader(admin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}

	var check models.User
	db.First(&check, admin.ID)
	if check.Role != models.RoleAdmin {
		t.Errorf("Expected role to remain Admin, got %s", check.Role)
	}
}
