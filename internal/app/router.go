package app

import (
	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, m Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AuthMiddleware:   m.Auth,
		AuthHandler:      h.Auth,
		CompanyHandler:   h.Company,
		MatrixHandler:    h.Matrix,
		RiskHandler:      h.Risk,
		HazardHandler:    h.Hazard,
		IperHandler:      h.Iper,
		DashboardHandler: h.Dashboard,
		LegalHandler:     h.Legal,
		AgendaHandler:    h.Agenda,
		DocumentHandler:  h.Document,
		AccidentHandler:  h.Accident,
	})
}
