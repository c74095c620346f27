package app

import (
	"github.com/riskbee/riskbee-backend/internal/handlers"
	"github.com/riskbee/riskbee-backend/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Company   *handlers.CompanyHandler
	Matrix    *handlers.MatrixHandler
	Risk      *handlers.RiskHandler
	Hazard    *handlers.HazardHandler
	Iper      *handlers.IperHandler
	Dashboard *handlers.DashboardHandler
	Legal     *handlers.LegalHandler
	Agenda    *handlers.AgendaHandler
	Document  *handlers.DocumentHandler
	Accident  *handlers.AccidentHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(s.Auth),
		Company:   handlers.NewCompanyHandler(s.Company),
		Matrix:    handlers.NewMatrixHandler(s.Matrix),
		Risk:      handlers.NewRiskHandler(s.Risk),
		Hazard:    handlers.NewHazardHandler(s.Hazard),
		Iper:      handlers.NewIperHandler(s.Iper),
		Dashboard: handlers.NewDashboardHandler(s.Dashboard),
		Legal:     handlers.NewLegalHandler(s.Legal),
		Agenda:    handlers.NewAgendaHandler(s.Agenda),
		Document:  handlers.NewDocumentHandler(s.Document),
		Accident:  handlers.NewAccidentHandler(s.Accident),
	}
}
