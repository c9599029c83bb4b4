package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/qtrack/qtrack/pkg/qtrack/actions"
	"github.com/qtrack/qtrack/pkg/qtrack/admin"
	"github.com/qtrack/qtrack/pkg/qtrack/analysis"
	"github.com/qtrack/qtrack/pkg/qtrack/auth"
	"github.com/qtrack/qtrack/pkg/qtrack/dashboard"
	"github.com/qtrack/qtrack/pkg/qtrack/database"
	"github.com/qtrack/qtrack/pkg/qtrack/models"
	"github.com/qtrack/qtrack/pkg/qtrack/nc"
	"github.com/qtrack/qtrack/pkg/qtrack/notify"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/qtrack/qtrack/api/swagger"
)

// @title Q-TRACK API
// @version 1.0
// @description Manufacturing non-conformity tracking: declaration, root-cause analysis, corrective actions and closure, with escalation emails for critical incidents.

// @contact.name Q-TRACK Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	// Get database path from environment or use default
	dbPath := os.Getenv("QTRACK_DB_PATH")
	if dbPath == "" {
		dbPath = "qtrack.db"
	}

	// Connect to database
	if err := database.Connect(dbPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Create default admin user if no admin exists
	if err := ensureAdminExists(); err != nil {
		log.Fatalf("Failed to ensure admin user exists: %v", err)
	}

	// Escalation emails go through Resend. Without an API key the first
	// send fails and is logged; declarations still succeed.
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("RESEND_API_KEY not set - escalation emails will fail (non-fatal)")
	}
	mailFrom := os.Getenv("QTRACK_MAIL_FROM")
	if mailFrom == "" {
		mailFrom = "onboarding@resend.dev"
	}
	notifier := notify.NewResendNotifier(apiKey, mailFrom)

	// Set up Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "qtrack",
			})
		})

		// Auth routes (public)
		authHandler := auth.NewHandler(database.GetDB())
		authHandler.RegisterRoutes(api.Group("/auth"))

		protected := api.Group("", auth.AuthMiddleware())

		// NC lifecycle routes
		ncHandler := nc.NewHandler(database.GetDB(), notifier)
		ncHandler.RegisterRoutes(protected)

		// Cause-analysis routes
		analysisHandler := analysis.NewHandler(database.GetDB())
		analysisHandler.RegisterRoutes(protected)

		// Corrective-action routes
		actionsHandler := actions.NewHandler(database.GetDB(), notifier)
		actionsHandler.RegisterRoutes(protected)

		// Dashboard routes
		dashboardHandler := dashboard.NewHandler(database.GetDB())
		dashboardHandler.RegisterRoutes(protected)

		// Admin routes (admin role required)
		adminHandler := admin.NewHandler(database.GetDB())
		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.AuthMiddleware(), auth.RequireAdmin())
		adminHandler.RegisterRoutes(adminGroup)
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting Q-TRACK server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureAdminExists creates a default admin user if no admin exists in the
// database. Admins receive critical-NC escalation emails and can promote
// quality managers.
func ensureAdminExists() error {
	db := database.GetDB()

	// Check if any admin user exists
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil // Admin already exists
	}

	// Create default admin user
	hashedPassword, err := auth.HashPassword("changeme")
	if err != nil {
		return err
	}

	adminUser := models.User{
		Email:        "admin@qtrack.local",
		Username:     "admin",
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Printf("Created default admin user: admin@qtrack.local (password: changeme)")
	return nil
}
