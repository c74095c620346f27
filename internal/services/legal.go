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

var validFrequencies = map[string]struct{}{
	types.FrecuenciaPuntual:    {},
	types.FrecuenciaMensual:    {},
	types.FrecuenciaTrimestral: {},
	types.FrecuenciaSemestral:  {},
	types.FrecuenciaAnual:      {},
}

type LegalService interface {
	Create(ctx context.Context, s scope.Scope, task *types.LegalTask) (*types.LegalTask, error)
	ListByCompany(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.LegalTask, error)
	Complete(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.LegalTask, error)
	Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error

	CreateRegulation(ctx context.Context, regulation *types.Regulation) (*types.Regulation, error)
	ListRegulations(ctx context.Context) ([]*types.Regulation, error)
}

type legalService struct {
	db             *gorm.DB
	log            *logger.Logger
	companyRepo    repos.CompanyRepo
	taskRepo       repos.LegalTaskRepo
	regulationRepo repos.RegulationRepo
}

func NewLegalService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, taskRepo repos.LegalTaskRepo, regulationRepo repos.RegulationRepo) LegalService {
	return &legalService{
		db:             db,
		log:            log.With("service", "LegalService"),
		companyRepo:    companyRepo,
		taskRepo:       taskRepo,
		regulationRepo: regulationRepo,
	}
}

func (ls *legalService) Create(ctx context.Context, s scope.Scope, task *types.LegalTask) (*types.LegalTask, error) {
	if strings.TrimSpace(task.NombreObligacion) == "" {
		return nil, apierr.Validation("nombre_obligacion is required")
	}
	if task.Frecuencia == "" {
		task.Frecuencia = types.FrecuenciaPuntual
	}
	if _, ok := validFrequencies[task.Frecuencia]; !ok {
		return nil, apierr.Validation("frecuencia %q is not valid", task.Frecuencia)
	}
	if task.FechaInicio.IsZero() {
		return nil, apierr.Validation("fecha_inicio is required")
	}
	if _, err := ls.companyRepo.GetByID(ctx, nil, s, task.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	// A new obligation comes due on its start date.
	task.ProximaFechaVencimiento = task.FechaInicio
	return ls.taskRepo.Create(ctx, nil, task)
}

func (ls *legalService) ListByCompany(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.LegalTask, error) {
	if _, err := ls.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return ls.taskRepo.ListByCompany(ctx, nil, s, companyID)
}

// Complete marks the obligation done. Recurring obligations advance to their
// next due date and stay open; puntual ones close.
func (ls *legalService) Complete(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.LegalTask, error) {
	task, err := ls.taskRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "legal task")
	}
	now := time.Now()
	if next := task.NextDueDate(task.ProximaFechaVencimiento); next != nil {
		task.ProximaFechaVencimiento = *next
		task.Completada = false
	} else {
		task.Completada = true
	}
	task.FechaCompletada = &now
	return ls.taskRepo.Update(ctx, nil, task)
}

func (ls *legalService) Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := ls.taskRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "legal task")
	}
	return nil
}

// Regulations are an application-wide library, like the hazard catalog.
func (ls *legalService) CreateRegulation(ctx context.Context, regulation *types.Regulation) (*types.Regulation, error) {
	if strings.TrimSpace(regulation.Nombre) == "" {
		return nil, apierr.Validation("nombre is required")
	}
	return ls.regulationRepo.Create(ctx, nil, regulation)
}

func (ls *legalService) ListRegulations(ctx context.Context) ([]*types.Regulation, error) {
	return ls.regulationRepo.List(ctx, nil)
}
