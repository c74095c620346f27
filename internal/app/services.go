package app

import (
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Company   services.CompanyService
	Matrix    services.MatrixService
	Hazard    services.HazardService
	Risk      services.RiskService
	Iper      services.IperService
	Dashboard services.DashboardService
	Legal     services.LegalService
	Agenda    services.AgendaService
	Document  services.DocumentService
	Accident  services.AccidentService
	Bucket    services.BucketService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	bucket, err := services.NewBucketService(log)
	if err != nil {
		log.Warn("Object storage disabled", "error", err.Error())
		bucket = nil
	}
	return Services{
		Auth:      services.NewAuthService(db, log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Company:   services.NewCompanyService(db, log, r.Company, r.Contact),
		Matrix:    services.NewMatrixService(db, log, r.Company, r.Matrix, r.Process, r.Task),
		Hazard:    services.NewHazardService(db, log, r.Hazard),
		Risk:      services.NewRiskService(db, log, r.Task, r.Hazard, r.Risk, r.ControlMeasure),
		Iper:      services.NewIperService(db, log, r.Company, r.IperMatrix, r.IperDetail),
		Dashboard: services.NewDashboardService(db, log, r.Risk, r.ControlMeasure),
		Legal:     services.NewLegalService(db, log, r.Company, r.LegalTask, r.Regulation),
		Agenda:    services.NewAgendaService(db, log, r.Company, r.Visit, r.Reminder),
		Document:  services.NewDocumentService(db, log, r.Company, r.Document, bucket),
		Accident:  services.NewAccidentService(db, log, r.Company, r.AccidentReport, r.AccidentInvestigation),
		Bucket:    bucket,
	}
}
