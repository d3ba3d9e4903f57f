package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arnavshah/tipout-api-go/pkg/auth"
	"github.com/arnavshah/tipout-api-go/pkg/database"
	"github.com/arnavshah/tipout-api-go/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Tipout Tracker API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Tipout Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.GET("/employees", h.ListEmployees)
		api.POST("/employees", h.CreateEmployee)
		api.DELETE("/employees/:id", h.DeleteEmployee)

		api.GET("/roles", h.ListRoles)
		api.POST("/roles", h.CreateRole)
		api.POST("/roles/:id/configs", h.AddRoleConfig)

		api.GET("/shifts", h.ListShifts)
		api.POST("/shifts", h.CreateShift)
		api.DELETE("/shifts/:id", h.DeleteShift)
		api.POST("/shifts/csv", h.ImportShiftsCSV)

		api.GET("/reports/payroll", h.PayrollReport)
		api.GET("/reports/payroll/csv", h.PayrollReportCSV)
		api.GET("/reports/summary", h.SummaryReport)
		api.POST("/reports/preview", h.PreviewReport)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
