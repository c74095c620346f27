package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/riskeval"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// EvaluateInput carries one full evaluation form submission. Nil pointers
// mean "leave this category unevaluated", not "keep the previous value": the
// form always posts the complete evaluation state.
type EvaluateInput struct {
	ProbSeguridad           *int `json:"probabilidad_seguridad"`
	ConsSeguridad           *int `json:"consecuencia_seguridad"`
	ProbHigienicos          *int `json:"probabilidad_higienicos"`
	ConsHigienicos          *int `json:"consecuencia_higienicos"`
	ProbPsicosociales       *int `json:"probabilidad_psicosociales"`
	ConsPsicosociales       *int `json:"consecuencia_psicosociales"`
	ProbMusculoesqueleticos *int `json:"probabilidad_musculoesqueleticos"`
	ConsMusculoesqueleticos *int `json:"consecuencia_musculoesqueleticos"`
	ProbResidual            *int `json:"probabilidad_residual"`
	ConsResidual            *int `json:"consecuencia_residual"`
	ProbEspecial            *int `json:"probabilidad_especial"`
	ConsEspecial            *int `json:"consecuencia_especial"`

	// Optional inline "current control": when non-empty, a control measure
	// is created in the same transaction as the risk save.
	ControlesExistentes string `json:"controles_existentes"`
}

type RiskService interface {
	Create(ctx context.Context, s scope.Scope, risk *types.Risk) (*types.Risk, error)
	Get(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Risk, error)
	ListByTask(ctx context.Context, s scope.Scope, taskID uuid.UUID) ([]*types.Risk, error)
	Evaluate(ctx context.Context, s scope.Scope, id uuid.UUID, input EvaluateInput) (*types.Risk, error)
	Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error

	AddControlMeasure(ctx context.Context, s scope.Scope, measure *types.ControlMeasure) (*types.ControlMeasure, error)
	ListControlMeasures(ctx context.Context, s scope.Scope, riskID uuid.UUID) ([]*types.ControlMeasure, error)
	DeleteControlMeasure(ctx context.Context, s scope.Scope, id uuid.UUID) error
}

type riskService struct {
	db          *gorm.DB
	log         *logger.Logger
	taskRepo    repos.TaskRepo
	hazardRepo  repos.HazardRepo
	riskRepo    repos.RiskRepo
	measureRepo repos.ControlMeasureRepo
}

func NewRiskService(
	db *gorm.DB,
	log *logger.Logger,
	taskRepo repos.TaskRepo,
	hazardRepo repos.HazardRepo,
	riskRepo repos.RiskRepo,
	measureRepo repos.ControlMeasureRepo,
) RiskService {
	return &riskService{
		db:          db,
		log:         log.With("service", "RiskService"),
		taskRepo:    taskRepo,
		hazardRepo:  hazardRepo,
		riskRepo:    riskRepo,
		measureRepo: measureRepo,
	}
}

func (rs *riskService) Create(ctx context.Context, s scope.Scope, risk *types.Risk) (*types.Risk, error) {
	if _, err := rs.taskRepo.GetByID(ctx, nil, s, risk.TaskID); err != nil {
		return nil, mapNotFound(err, "task")
	}
	if _, err := rs.hazardRepo.GetByID(ctx, nil, risk.HazardID); err != nil {
		return nil, mapNotFound(err, "hazard")
	}
	switch risk.Esquema {
	case "":
		risk.Esquema = string(riskeval.SchemeCategory)
	case string(riskeval.SchemeCategory), string(riskeval.SchemeLegacyVEP):
	default:
		return nil, apierr.Validation("esquema must be %q or %q", riskeval.SchemeCategory, riskeval.SchemeLegacyVEP)
	}
	// A new risk starts unevaluated; the stored classifications still have
	// to be consistent with its (empty) inputs.
	risk.Recalculate()
	return rs.riskRepo.Create(ctx, nil, risk)
}

func (rs *riskService) Get(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Risk, error) {
	risk, err := rs.riskRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "risk")
	}
	return risk, nil
}

func (rs *riskService) ListByTask(ctx context.Context, s scope.Scope, taskID uuid.UUID) ([]*types.Risk, error) {
	if _, err := rs.taskRepo.GetByID(ctx, nil, s, taskID); err != nil {
		return nil, mapNotFound(err, "task")
	}
	return rs.riskRepo.ListByTask(ctx, nil, s, taskID)
}

// Evaluate applies a full evaluation form, reclassifies and saves. When the
// inline current-control text is present, the risk save and the control
// measure creation commit or roll back together.
func (rs *riskService) Evaluate(ctx context.Context, s scope.Scope, id uuid.UUID, input EvaluateInput) (*types.Risk, error) {
	risk, err := rs.riskRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "risk")
	}

	risk.ProbSeguridad = input.ProbSeguridad
	risk.ConsSeguridad = input.ConsSeguridad
	risk.ProbHigienicos = input.ProbHigienicos
	risk.ConsHigienicos = input.ConsHigienicos
	risk.ProbPsicosociales = input.ProbPsicosociales
	risk.ConsPsicosociales = input.ConsPsicosociales
	risk.ProbMusculoesqueleticos = input.ProbMusculoesqueleticos
	risk.ConsMusculoesqueleticos = input.ConsMusculoesqueleticos
	risk.ProbResidual = input.ProbResidual
	risk.ConsResidual = input.ConsResidual
	risk.ProbEspecial = input.ProbEspecial
	risk.ConsEspecial = input.ConsEspecial

	if err := risk.Evaluation().Validate(); err != nil {
		return nil, apierr.Validation("%s", err.Error())
	}
	risk.Recalculate()

	controles := strings.TrimSpace(input.ControlesExistentes)
	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if controles != "" && controles != risk.ControlesExistentes {
			if _, err := rs.measureRepo.Create(ctx, tx, &types.ControlMeasure{
				RiskID:      risk.ID,
				Descripcion: controles,
				TipoControl: types.ControlAdministrative,
				Responsable: "Por asignar",
			}); err != nil {
				return err
			}
		}
		risk.ControlesExistentes = controles
		_, err := rs.riskRepo.Update(ctx, tx, risk)
		return err
	}); err != nil {
		return nil, err
	}
	return risk, nil
}

func (rs *riskService) Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := rs.riskRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "risk")
	}
	return nil
}

func (rs *riskService) AddControlMeasure(ctx context.Context, s scope.Scope, measure *types.ControlMeasure) (*types.ControlMeasure, error) {
	if _, err := rs.riskRepo.GetByID(ctx, nil, s, measure.RiskID); err != nil {
		return nil, mapNotFound(err, "risk")
	}
	if strings.TrimSpace(measure.Descripcion) == "" {
		return nil, apierr.Validation("descripcion is required")
	}
	if _, ok := types.ControlTypeLabels[measure.TipoControl]; !ok {
		return nil, apierr.Validation("tipo_control %q is not a control hierarchy type", measure.TipoControl)
	}
	return rs.measureRepo.Create(ctx, nil, measure)
}

func (rs *riskService) ListControlMeasures(ctx context.Context, s scope.Scope, riskID uuid.UUID) ([]*types.ControlMeasure, error) {
	if _, err := rs.riskRepo.GetByID(ctx, nil, s, riskID); err != nil {
		return nil, mapNotFound(err, "risk")
	}
	return rs.measureRepo.ListByRisk(ctx, nil, s, riskID)
}

func (rs *riskService) DeleteControlMeasure(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := rs.measureRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "control measure")
	}
	return nil
}
