package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

var validVisitStates = map[string]struct{}{
	types.VisitPropuesta:  {},
	types.VisitAgendada:   {},
	types.VisitCompletada: {},
	types.VisitCancelada:  {},
}

type AgendaService interface {
	CreateVisit(ctx context.Context, s scope.Scope, visit *types.Visit) (*types.Visit, error)
	ListVisits(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Visit, error)
	UpdateVisitState(ctx context.Context, s scope.Scope, id uuid.UUID, estado string) (*types.Visit, error)
	DeleteVisit(ctx context.Context, s scope.Scope, id uuid.UUID) error

	CreateReminder(ctx context.Context, s scope.Scope, reminder *types.Reminder) (*types.Reminder, error)
	ListReminders(ctx context.Context, s scope.Scope) ([]*types.Reminder, error)
	DeleteReminder(ctx context.Context, s scope.Scope, id uuid.UUID) error
}

type agendaService struct {
	db           *gorm.DB
	log          *logger.Logger
	companyRepo  repos.CompanyRepo
	visitRepo    repos.VisitRepo
	reminderRepo repos.ReminderRepo
}

func NewAgendaService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, visitRepo repos.VisitRepo, reminderRepo repos.ReminderRepo) AgendaService {
	return &agendaService{
		db:           db,
		log:          log.With("service", "AgendaService"),
		companyRepo:  companyRepo,
		visitRepo:    visitRepo,
		reminderRepo: reminderRepo,
	}
}

func (as *agendaService) CreateVisit(ctx context.Context, s scope.Scope, visit *types.Visit) (*types.Visit, error) {
	if strings.TrimSpace(visit.Asunto) == "" {
		return nil, apierr.Validation("asunto is required")
	}
	if visit.FechaHora.IsZero() {
		return nil, apierr.Validation("fecha_hora is required")
	}
	if _, err := as.companyRepo.GetByID(ctx, nil, s, visit.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	if visit.Estado == "" {
		visit.Estado = types.VisitPropuesta
	}
	if _, ok := validVisitStates[visit.Estado]; !ok {
		return nil, apierr.Validation("estado %q is not valid", visit.Estado)
	}
	return as.visitRepo.Create(ctx, nil, visit)
}

func (as *agendaService) ListVisits(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Visit, error) {
	if _, err := as.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return as.visitRepo.ListByCompany(ctx, nil, s, companyID)
}

func (as *agendaService) UpdateVisitState(ctx context.Context, s scope.Scope, id uuid.UUID, estado string) (*types.Visit, error) {
	if _, ok := validVisitStates[estado]; !ok {
		return nil, apierr.Validation("estado %q is not valid", estado)
	}
	visit, err := as.visitRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "visit")
	}
	visit.Estado = estado
	return as.visitRepo.Update(ctx, nil, visit)
}

func (as *agendaService) DeleteVisit(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := as.visitRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "visit")
	}
	return nil
}

func (as *agendaService) CreateReminder(ctx context.Context, s scope.Scope, reminder *types.Reminder) (*types.Reminder, error) {
	if strings.TrimSpace(reminder.Titulo) == "" {
		return nil, apierr.Validation("titulo is required")
	}
	if reminder.FechaHora.IsZero() {
		return nil, apierr.Validation("fecha_hora is required")
	}
	reminder.UserID = s.UserID()
	return as.reminderRepo.Create(ctx, nil, reminder)
}

func (as *agendaService) ListReminders(ctx context.Context, s scope.Scope) ([]*types.Reminder, error) {
	return as.reminderRepo.ListByUser(ctx, nil, s.UserID())
}

func (as *agendaService) DeleteReminder(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := as.reminderRepo.Delete(ctx, nil, s.UserID(), id); err != nil {
		return mapNotFound(err, "reminder")
	}
	return nil
}
