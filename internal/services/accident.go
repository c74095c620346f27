package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

var validAccidentTypes = map[string]struct{}{
	types.AccidentTrabajo:     {},
	types.AccidentTrayecto:    {},
	types.AccidentEnfermedad:  {},
	types.AccidentSinIncap:    {},
	types.AccidentEnfSinIncap: {},
	types.AccidentComun:       {},
	types.AccidentEnfComun:    {},
}

var validSeverities = map[string]struct{}{
	types.SeveridadIncidente: {},
	types.SeveridadLeve:      {},
	types.SeveridadGrave:     {},
	types.SeveridadFatal:     {},
}

// InvestigationInput carries the investigation form. Completada drives the
// report state transition.
type InvestigationInput struct {
	CausasInmediatas   string     `json:"causas_inmediatas"`
	CausasBasicas      string     `json:"causas_basicas"`
	MedidasCorrectivas string     `json:"medidas_correctivas"`
	Responsables       string     `json:"responsables_implementacion"`
	FechaLimite        time.Time  `json:"fecha_limite_implementacion"`
	Completada         bool       `json:"completada"`
	FechaCierre        *time.Time `json:"fecha_cierre"`
}

type AccidentService interface {
	CreateReport(ctx context.Context, s scope.Scope, report *types.AccidentReport) (*types.AccidentReport, error)
	GetReport(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.AccidentReport, error)
	ListReports(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.AccidentReport, error)
	GetInvestigation(ctx context.Context, s scope.Scope, reportID uuid.UUID) (*types.AccidentInvestigation, error)
	SaveInvestigation(ctx context.Context, s scope.Scope, reportID uuid.UUID, input InvestigationInput) (*types.AccidentReport, error)
}

type accidentService struct {
	db                *gorm.DB
	log               *logger.Logger
	companyRepo       repos.CompanyRepo
	reportRepo        repos.AccidentReportRepo
	investigationRepo repos.AccidentInvestigationRepo
}

func NewAccidentService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, reportRepo repos.AccidentReportRepo, investigationRepo repos.AccidentInvestigationRepo) AccidentService {
	return &accidentService{
		db:                db,
		log:               log.With("service", "AccidentService"),
		companyRepo:       companyRepo,
		reportRepo:        reportRepo,
		investigationRepo: investigationRepo,
	}
}

func (as *accidentService) CreateReport(ctx context.Context, s scope.Scope, report *types.AccidentReport) (*types.AccidentReport, error) {
	if strings.TrimSpace(report.DescripcionEvento) == "" {
		return nil, apierr.Validation("descripcion_evento is required")
	}
	if report.FechaAccidente.IsZero() {
		return nil, apierr.Validation("fecha_accidente is required")
	}
	if _, ok := validAccidentTypes[report.TipoAccidente]; !ok {
		return nil, apierr.Validation("tipo_accidente %q is not valid", report.TipoAccidente)
	}
	if report.Severidad != "" {
		if _, ok := validSeverities[report.Severidad]; !ok {
			return nil, apierr.Validation("clasificacion_severidad %q is not valid", report.Severidad)
		}
	}
	if _, err := as.companyRepo.GetByID(ctx, nil, s, report.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	reporter := s.UserID()
	report.ReportedByID = &reporter
	report.Estado = types.ReportStateReported
	return as.reportRepo.Create(ctx, nil, report)
}

func (as *accidentService) GetReport(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.AccidentReport, error) {
	report, err := as.reportRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "accident report")
	}
	return report, nil
}

func (as *accidentService) ListReports(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.AccidentReport, error) {
	if _, err := as.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return as.reportRepo.ListByCompany(ctx, nil, s, companyID)
}

func (as *accidentService) GetInvestigation(ctx context.Context, s scope.Scope, reportID uuid.UUID) (*types.AccidentInvestigation, error) {
	if _, err := as.reportRepo.GetByID(ctx, nil, s, reportID); err != nil {
		return nil, mapNotFound(err, "accident report")
	}
	investigation, err := as.investigationRepo.GetByReportID(ctx, nil, reportID)
	if err != nil {
		return nil, mapNotFound(err, "investigation")
	}
	return investigation, nil
}

// SaveInvestigation upserts the investigation and moves the report through
// its state machine in the same transaction, so a failed report update never
// leaves a saved investigation behind.
func (as *accidentService) SaveInvestigation(ctx context.Context, s scope.Scope, reportID uuid.UUID, input InvestigationInput) (*types.AccidentReport, error) {
	if strings.TrimSpace(input.CausasInmediatas) == "" {
		return nil, apierr.Validation("causas_inmediatas is required")
	}
	if strings.TrimSpace(input.CausasBasicas) == "" {
		return nil, apierr.Validation("causas_basicas is required")
	}
	if strings.TrimSpace(input.MedidasCorrectivas) == "" {
		return nil, apierr.Validation("medidas_correctivas is required")
	}
	if strings.TrimSpace(input.Responsables) == "" {
		return nil, apierr.Validation("responsables_implementacion is required")
	}
	if input.FechaLimite.IsZero() {
		return nil, apierr.Validation("fecha_limite_implementacion is required")
	}

	report, err := as.reportRepo.GetByID(ctx, nil, s, reportID)
	if err != nil {
		return nil, mapNotFound(err, "accident report")
	}

	investigation := &types.AccidentInvestigation{
		ReportID:           report.ID,
		CausasInmediatas:   input.CausasInmediatas,
		CausasBasicas:      input.CausasBasicas,
		MedidasCorrectivas: input.MedidasCorrectivas,
		Responsables:       input.Responsables,
		FechaLimite:        input.FechaLimite,
		Completada:         input.Completada,
		FechaCierre:        input.FechaCierre,
	}
	if investigation.Completada && investigation.FechaCierre == nil {
		now := time.Now()
		investigation.FechaCierre = &now
	}
	lead := s.UserID()
	investigation.InvestigadorLiderID = &lead

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.investigationRepo.Upsert(ctx, tx, investigation); err != nil {
			return err
		}
		report.Estado = types.NextReportState(report.Estado, investigation.Completada)
		if _, err := as.reportRepo.Update(ctx, tx, report); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("investigation saved",
		"report_id", report.ID.String(),
		"estado", report.Estado)
	return report, nil
}
