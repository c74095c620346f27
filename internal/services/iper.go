package services

import (
	"context"
	"strconv"
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

// NewRowID is the sentinel the grid posts when a cell edit should create the
// row first.
const NewRowID = "new"

type CellUpdateResult struct {
	Status string    `json:"status"`
	ID     uuid.UUID `json:"id,omitempty"`
}

type IperService interface {
	CreateMatrix(ctx context.Context, s scope.Scope, matrix *types.IperMatrix) (*types.IperMatrix, error)
	GetMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.IperMatrix, error)
	ListMatrices(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.IperMatrix, error)
	DeleteMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) error
	ListRows(ctx context.Context, s scope.Scope, matrixID uuid.UUID) ([]*types.IperDetail, error)
	DeleteRow(ctx context.Context, s scope.Scope, id uuid.UUID) error
	UpdateCell(ctx context.Context, s scope.Scope, matrixID uuid.UUID, rowID, field string, value interface{}) (*CellUpdateResult, error)
}

type iperService struct {
	db          *gorm.DB
	log         *logger.Logger
	companyRepo repos.CompanyRepo
	matrixRepo  repos.IperMatrixRepo
	detailRepo  repos.IperDetailRepo
}

func NewIperService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, matrixRepo repos.IperMatrixRepo, detailRepo repos.IperDetailRepo) IperService {
	return &iperService{
		db:          db,
		log:         log.With("service", "IperService"),
		companyRepo: companyRepo,
		matrixRepo:  matrixRepo,
		detailRepo:  detailRepo,
	}
}

// cellField binds one editable grid column to its setter and, for scoring
// inputs, the recompute of the dependent value/classification pair. The
// allow-list replaces the open attribute access the grid used to rely on:
// anything not in the map is an unknown-field error, never a silent no-op.
type cellField struct {
	set       func(d *types.IperDetail, v interface{}) error
	recompute func(d *types.IperDetail)
}

func textField(assign func(d *types.IperDetail, s string)) cellField {
	return cellField{
		set: func(d *types.IperDetail, v interface{}) error {
			s, err := asText(v)
			if err != nil {
				return err
			}
			assign(d, s)
			return nil
		},
	}
}

func levelField(assign func(d *types.IperDetail, level *int), recompute func(d *types.IperDetail)) cellField {
	return cellField{
		set: func(d *types.IperDetail, v interface{}) error {
			level, err := asLevel(v)
			if err != nil {
				return err
			}
			assign(d, level)
			return nil
		},
		recompute: recompute,
	}
}

var cellFields = map[string]cellField{
	"proceso":              textField(func(d *types.IperDetail, s string) { d.Proceso = s }),
	"actividad":            textField(func(d *types.IperDetail, s string) { d.Actividad = s }),
	"peligro":              textField(func(d *types.IperDetail, s string) { d.Peligro = s }),
	"riesgo":               textField(func(d *types.IperDetail, s string) { d.Riesgo = s }),
	"consecuencia":         textField(func(d *types.IperDetail, s string) { d.Consecuencia = s }),
	"gema":                 textField(func(d *types.IperDetail, s string) { d.Gema = s }),
	"controles_existentes": textField(func(d *types.IperDetail, s string) { d.ControlesExistentes = s }),

	"eval_probabilidad": levelField(
		func(d *types.IperDetail, level *int) { d.EvalProbabilidad = level },
		(*types.IperDetail).RecalculateInherent,
	),
	"eval_severidad": levelField(
		func(d *types.IperDetail, level *int) { d.EvalSeveridad = level },
		(*types.IperDetail).RecalculateInherent,
	),
	"res_probabilidad": levelField(
		func(d *types.IperDetail, level *int) { d.ResProbabilidad = level },
		(*types.IperDetail).RecalculateResidual,
	),
	"res_severidad": levelField(
		func(d *types.IperDetail, level *int) { d.ResSeveridad = level },
		(*types.IperDetail).RecalculateResidual,
	),
}

func asText(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apierr.Validation("expected text value, got %T", v)
	}
	return strings.TrimSpace(s), nil
}

func asLevel(v interface{}) (*int, error) {
	if v == nil {
		return nil, nil
	}
	var n int
	switch value := v.(type) {
	case float64:
		n = int(value)
		if float64(n) != value {
			return nil, apierr.Validation("expected integer value, got %v", value)
		}
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, apierr.Validation("expected integer value, got %q", value)
		}
		n = parsed
	default:
		return nil, apierr.Validation("expected integer value, got %T", v)
	}
	if err := riskeval.ValidateLevel("value", n); err != nil {
		return nil, apierr.Validation("%s", err.Error())
	}
	return &n, nil
}

func (is *iperService) CreateMatrix(ctx context.Context, s scope.Scope, matrix *types.IperMatrix) (*types.IperMatrix, error) {
	if _, err := is.companyRepo.GetByID(ctx, nil, s, matrix.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return is.matrixRepo.Create(ctx, nil, matrix)
}

func (is *iperService) GetMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.IperMatrix, error) {
	matrix, err := is.matrixRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "iper matrix")
	}
	return matrix, nil
}

func (is *iperService) ListMatrices(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.IperMatrix, error) {
	if _, err := is.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return is.matrixRepo.ListByCompany(ctx, nil, s, companyID)
}

func (is *iperService) DeleteMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := is.matrixRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "iper matrix")
	}
	return nil
}

func (is *iperService) ListRows(ctx context.Context, s scope.Scope, matrixID uuid.UUID) ([]*types.IperDetail, error) {
	if _, err := is.matrixRepo.GetByID(ctx, nil, s, matrixID); err != nil {
		return nil, mapNotFound(err, "iper matrix")
	}
	return is.detailRepo.ListByMatrix(ctx, nil, s, matrixID)
}

func (is *iperService) DeleteRow(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := is.detailRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "iper row")
	}
	return nil
}

// UpdateCell is the single-field write behind the editable grid. Writes are
// last-write-wins per field. The create-then-set path for a "new" row runs in
// one transaction so a failed set never leaves an empty row behind.
func (is *iperService) UpdateCell(ctx context.Context, s scope.Scope, matrixID uuid.UUID, rowID, field string, value interface{}) (*CellUpdateResult, error) {
	cf, ok := cellFields[field]
	if !ok {
		return nil, apierr.UnknownField(field)
	}

	if rowID == NewRowID {
		if _, err := is.matrixRepo.GetByID(ctx, nil, s, matrixID); err != nil {
			return nil, mapNotFound(err, "iper matrix")
		}
		detail := &types.IperDetail{IperMatrixID: matrixID}
		if err := cf.set(detail, value); err != nil {
			return nil, err
		}
		if cf.recompute != nil {
			cf.recompute(detail)
		}
		if err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := is.detailRepo.Create(ctx, tx, detail)
			return err
		}); err != nil {
			return nil, err
		}
		return &CellUpdateResult{Status: "created", ID: detail.ID}, nil
	}

	id, err := uuid.Parse(rowID)
	if err != nil {
		return nil, apierr.Validation("invalid row id %q", rowID)
	}
	detail, err := is.detailRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "iper row")
	}
	if err := cf.set(detail, value); err != nil {
		return nil, err
	}
	if cf.recompute != nil {
		cf.recompute(detail)
	}
	if _, err := is.detailRepo.Update(ctx, nil, detail); err != nil {
		return nil, err
	}
	return &CellUpdateResult{Status: "ok", ID: detail.ID}, nil
}
