package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/handlers"
	"github.com/riskbee/riskbee-backend/internal/middleware"
)

type RouterConfig struct {
	AllowOrigins []string

	AuthMiddleware   *middleware.AuthMiddleware
	AuthHandler      *handlers.AuthHandler
	CompanyHandler   *handlers.CompanyHandler
	MatrixHandler    *handlers.MatrixHandler
	RiskHandler      *handlers.RiskHandler
	HazardHandler    *handlers.HazardHandler
	IperHandler      *handlers.IperHandler
	DashboardHandler *handlers.DashboardHandler
	LegalHandler     *handlers.LegalHandler
	AgendaHandler    *handlers.AgendaHandler
	DocumentHandler  *handlers.DocumentHandler
	AccidentHandler  *handlers.AccidentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	// Protected
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)

	// Companies
	protected.POST("/companies", cfg.CompanyHandler.Create)
	protected.GET("/companies", cfg.CompanyHandler.List)
	protected.GET("/companies/:id", cfg.CompanyHandler.Get)
	protected.PUT("/companies/:id", cfg.CompanyHandler.Update)
	protected.DELETE("/companies/:id", cfg.CompanyHandler.Delete)
	protected.POST("/companies/:id/contacts", cfg.CompanyHandler.AddContact)
	protected.GET("/companies/:id/contacts", cfg.CompanyHandler.ListContacts)

	// Hierarchical risk matrices
	protected.POST("/matrices", cfg.MatrixHandler.Create)
	protected.GET("/companies/:id/matrices", cfg.MatrixHandler.ListByCompany)
	protected.GET("/matrices/:id", cfg.MatrixHandler.Get)
	protected.PUT("/matrices/:id", cfg.MatrixHandler.Update)
	protected.DELETE("/matrices/:id", cfg.MatrixHandler.Delete)
	protected.POST("/matrices/:id/processes", cfg.MatrixHandler.CreateProcess)
	protected.GET("/matrices/:id/processes", cfg.MatrixHandler.ListProcesses)
	protected.PUT("/processes/:id", cfg.MatrixHandler.UpdateProcess)
	protected.DELETE("/processes/:id", cfg.MatrixHandler.DeleteProcess)
	protected.POST("/processes/:id/tasks", cfg.MatrixHandler.CreateTask)
	protected.GET("/processes/:id/tasks", cfg.MatrixHandler.ListTasks)
	protected.PUT("/tasks/:id", cfg.MatrixHandler.UpdateTask)
	protected.DELETE("/tasks/:id", cfg.MatrixHandler.DeleteTask)

	// Risks and control measures
	protected.POST("/tasks/:id/risks", cfg.RiskHandler.Create)
	protected.GET("/tasks/:id/risks", cfg.RiskHandler.ListByTask)
	protected.GET("/risks/:id", cfg.RiskHandler.Get)
	protected.PUT("/risks/:id/evaluate", cfg.RiskHandler.Evaluate)
	protected.DELETE("/risks/:id", cfg.RiskHandler.Delete)
	protected.POST("/risks/:id/controls", cfg.RiskHandler.AddControlMeasure)
	protected.GET("/risks/:id/controls", cfg.RiskHandler.ListControlMeasures)
	protected.DELETE("/controls/:id", cfg.RiskHandler.DeleteControlMeasure)

	// Hazard catalog
	protected.POST("/hazards", cfg.HazardHandler.Create)
	protected.GET("/hazards", cfg.HazardHandler.List)
	protected.PUT("/hazards/:id", cfg.HazardHandler.Update)
	protected.DELETE("/hazards/:id", cfg.HazardHandler.Delete)

	// IPER grid
	protected.POST("/iper", cfg.IperHandler.CreateMatrix)
	protected.GET("/companies/:id/iper", cfg.IperHandler.ListMatrices)
	protected.GET("/iper/:id", cfg.IperHandler.GetMatrix)
	protected.DELETE("/iper/:id", cfg.IperHandler.DeleteMatrix)
	protected.GET("/iper/:id/rows", cfg.IperHandler.ListRows)
	protected.POST("/iper/:id/update-cell", cfg.IperHandler.UpdateCell)
	protected.DELETE("/iper-rows/:id", cfg.IperHandler.DeleteRow)

	// Dashboard
	protected.GET("/dashboard/chart-data", cfg.DashboardHandler.ChartData)

	// Legal compliance
	protected.POST("/companies/:id/legal-tasks", cfg.LegalHandler.Create)
	protected.GET("/companies/:id/legal-tasks", cfg.LegalHandler.ListByCompany)
	protected.POST("/legal-tasks/:id/complete", cfg.LegalHandler.Complete)
	protected.DELETE("/legal-tasks/:id", cfg.LegalHandler.Delete)
	protected.POST("/regulations", cfg.LegalHandler.CreateRegulation)
	protected.GET("/regulations", cfg.LegalHandler.ListRegulations)

	// Agenda
	protected.POST("/companies/:id/visits", cfg.AgendaHandler.CreateVisit)
	protected.GET("/companies/:id/visits", cfg.AgendaHandler.ListVisits)
	protected.PUT("/visits/:id/state", cfg.AgendaHandler.UpdateVisitState)
	protected.DELETE("/visits/:id", cfg.AgendaHandler.DeleteVisit)
	protected.POST("/reminders", cfg.AgendaHandler.CreateReminder)
	protected.GET("/reminders", cfg.AgendaHandler.ListReminders)
	protected.DELETE("/reminders/:id", cfg.AgendaHandler.DeleteReminder)

	// Documents
	protected.POST("/companies/:id/documents", cfg.DocumentHandler.Create)
	protected.POST("/companies/:id/documents/upload", cfg.DocumentHandler.Upload)
	protected.GET("/companies/:id/documents", cfg.DocumentHandler.ListByCompany)
	protected.DELETE("/documents/:id", cfg.DocumentHandler.Delete)

	// Accidents
	protected.POST("/companies/:id/accidents", cfg.AccidentHandler.CreateReport)
	protected.GET("/companies/:id/accidents", cfg.AccidentHandler.ListReports)
	protected.GET("/accidents/:id", cfg.AccidentHandler.GetReport)
	protected.GET("/accidents/:id/investigation", cfg.AccidentHandler.GetInvestigation)
	protected.PUT("/accidents/:id/investigation", cfg.AccidentHandler.SaveInvestigation)

	return router
}
