package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/auth"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"github.com/qtrack/qtrack/pkg/qtrack/notify"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeNotifier records Send calls and optionally fails them
type fakeNotifier struct {
	calls []notify.Message
	err   error
}

func (f *fakeNotifier) Send(ctx context.Context, msg notify.Message) (string, error) {
	f.calls = append(f.calls, msg)
	if f.err != nil {
		return "", f.err
	}
	return "msg_test", nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return db
}

func setupTestRouter(db *gorm.DB, notifier notify.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db, notifier)

	api := r.Group("/api")
	api.Use(auth.AuthMiddleware())
	handler.RegisterRoutes(api)

	return r
}

func createTestNC(t *testing.T, db *gorm.DB) models.NonConformity {
	user := models.User{Email: "marie@usine.fr", Username: "Marie", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	n := models.NonConformity{
		DefectType: "Fissure", Workstation: "Poste 3",
		Severity: models.SeverityMajeure, Status: models.NCStatusOuvert,
		DeclaredByID: user.ID,
	}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("Failed to create test NC: %v", err)
	}
	return n
}

func getAuthHeader() string {
	token, _ := auth.GenerateToken(1, "marie@usine.fr", "Marie", "User")
	return "Bearer " + token
}

func createAction(t *testing.T, router *gin.Engine, body CreateActionRequest) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/corrective-actions", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateAction(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	router := setupTestRouter(db, notifier)
	n := createTestNC(t, db)

	resp := createAction(t, router, CreateActionRequest{
		NCID:         n.ID,
		Description:  "Remplacer le joint",
		Responsible:  "technicien@usine.fr",
		DeadlineDays: 7,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var response ActionResponse
	json.Unmarshal(resp.Body.Bytes(), &response)

	if response.Status != string(models.ActionStatusOuvert) {
		t.Errorf("Expected status Ouvert, got %s", response.Status)
	}
	if response.IsLate {
		t.Error("Expected a fresh action not to be late")
	}

	// The responsible party is always informed
	if len(notifier.calls) != 1 {
		t.Fatalf("Expected 1 notification call, got %d", len(notifier.calls))
	}
	if len(notifier.calls[0].To) != 1 || notifier.calls[0].To[0] != "technicien@usine.fr" {
		t.Errorf("Expected recipient technicien@usine.fr, got %v", notifier.calls[0].To)
	}
}

func TestCreateActionNotificationFailureIsNonFatal(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{err: errors.New("bad credentials")}
	router := setupTestRouter(db, notifier)
	n := createTestNC(t, db)

	resp := createAction(t, router, CreateActionRequest{
		NCID:         n.ID,
		Description:  "Remplacer le joint",
		Responsible:  "technicien@usine.fr",
		DeadlineDays: 7,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 despite notification failure, got %d: %s", resp.Code, resp.Body.String())
	}

	var count int64
	db.Model(&models.CorrectiveAction{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected the action to be persisted, got %d rows", count)
	}
}

func TestCreateActionValidation(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	router := setupTestRouter(db, notifier)
	n := createTestNC(t, db)

	cases := []struct {
		name string
		body CreateActionRequest
	}{
		{"zero deadline", CreateActionRequest{NCID: n.ID, Description: "x", Responsible: "t@usine.fr", DeadlineDays: 0}},
		{"negative deadline", CreateActionRequest{NCID: n.ID, Description: "x", Responsible: "t@usine.fr", DeadlineDays: -3}},
		{"invalid email", CreateActionRequest{NCID: n.ID, Description: "x", Responsible: "not-an-email", DeadlineDays: 7}},
		{"empty description", CreateActionRequest{NCID: n.ID, Responsible: "t@usine.fr", DeadlineDays: 7}},
	}

	for _, tc := range cases {
		resp := createAction(t, router, tc.body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", tc.name, resp.Code)
		}
	}

	var count int64
	db.Model(&models.CorrectiveAction{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no persisted actions, got %d", count)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("Expected no notification attempts, got %d", len(notifier.calls))
	}
}

func TestCreateActionUnknownNC(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, &fakeNotifier{})
	createTestNC(t, db)

	resp := createAction(t, router, CreateActionRequest{
		NCID:         999,
		Description:  "Remplacer le joint",
		Responsible:  "technicien@usine.fr",
		DeadlineDays: 7,
	})

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Code)
	}
}

func TestListActionsComputesLateness(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, &fakeNotifier{})
	n := createTestNC(t, db)

	// Created 10 days ago with a 7-day deadline: 3 days overdue
	late := models.CorrectiveAction{
		NCID: n.ID, Description: "Remplacer le joint",
		Responsible: "technicien@usine.fr", DeadlineDays: 7,
		Status:    models.ActionStatusOuvert,
		CreatedAt: time.Now().AddDate(0, 0, -10),
	}
	db.Create(&late)

	// Same age but finished: never late
	done := models.CorrectiveAction{
		NCID: n.ID, Description: "Former l'opérateur",
		Responsible: "chef@usine.fr", DeadlineDays: 7,
		Status:    models.ActionStatusTermine,
		CreatedAt: time.Now().AddDate(0, 0, -10),
	}
	db.Create(&done)

	req, _ := http.NewRequest("GET", "/api/corrective-actions", nil)
	req.Header.Set("Authorization", getAuthHeader())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var responses []ActionResponse
	json.Unmarshal(resp.Body.Bytes(), &responses)

	if len(responses) != 2 {
		t.Fatalf("Expected 2 actions, got %d", len(responses))
	}

	byID := map[uint]ActionResponse{}
	for _, r := range responses {
		byID[r.ID] = r
	}

	if !byID[late.ID].IsLate {
		t.Error("Expected open 10-day-old action with 7-day deadline to be late")
	}
	if byID[late.ID].DaysOverdue != 3 {
		t.Errorf("Expected 3 days overdue, got %d", byID[late.ID].DaysOverdue)
	}
	if byID[done.ID].IsLate {
		t.Error("Expected finished action not to be late regardless of elapsed time")
	}
}

func TestUpdateActionStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, &fakeNotifier{})
	n := createTestNC(t, db)

	action := models.CorrectiveAction{
		NCID: n.ID, Description: "Remplacer le joint",
		Responsible: "technicien@usine.fr", DeadlineDays: 7,
		Status: models.ActionStatusOuvert,
	}
	db.Create(&action)

	jsonBody, _ := json.Marshal(UpdateStatusRequest{Status: "Terminé"})
	req, _ := http.NewRequest("PATCH", "/api/corrective-actions/1/status", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", getAuthHeader())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var check models.CorrectiveAction
	db.First(&check, action.ID)
	if check.Status != models.ActionStatusTermine {
		t.Errorf("Expected status Terminé, got %s", check.Status)
	}
}
