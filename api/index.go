package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arnavshah/tipout-api-go/pkg/auth"
	"github.com/arnavshah/tipout-api-go/pkg/database"
	"github.com/arnavshah/tipout-api-go/pkg/handlers"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Tipout Tracker API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
