package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// ClassificationCount is one dashboard bucket.
type ClassificationCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}

type RiskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, risk *types.Risk) (*types.Risk, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Risk, error)
	ListByTask(ctx context.Context, tx *gorm.DB, s scope.Scope, taskID uuid.UUID) ([]*types.Risk, error)
	Update(ctx context.Context, tx *gorm.DB, risk *types.Risk) (*types.Risk, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
	CountByClassification(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error)
}

type riskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRiskRepo(db *gorm.DB, baseLog *logger.Logger) RiskRepo {
	return &riskRepo{db: db, log: baseLog.With("repo", "RiskRepo")}
}

func (rr *riskRepo) Create(ctx context.Context, tx *gorm.DB, risk *types.Risk) (*types.Risk, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(risk).Error; err != nil {
		return nil, err
	}
	return risk, nil
}

func (rr *riskRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Risk, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var risk types.Risk
	q := transaction.WithContext(ctx).Where(`"risk"."id" = ?`, id)
	if err := scopeRisk(q, s).First(&risk).Error; err != nil {
		return nil, err
	}
	return &risk, nil
}

func (rr *riskRepo) ListByTask(ctx context.Context, tx *gorm.DB, s scope.Scope, taskID uuid.UUID) ([]*types.Risk, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Risk
	q := transaction.WithContext(ctx).
		Where(`"risk"."task_id" = ?`, taskID).
		Order(`"risk"."created_at"`)
	if err := scopeRisk(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *riskRepo) Update(ctx context.Context, tx *gorm.DB, risk *types.Risk) (*types.Risk, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Save(risk).Error; err != nil {
		return nil, err
	}
	return risk, nil
}

func (rr *riskRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	risk, err := rr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(risk).Error
}

// CountByClassification groups the caller's risks by the stored overall
// inherent classification. Unevaluated risks are their own bucket, never
// filtered out.
func (rr *riskRepo) CountByClassification(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []ClassificationCount
	q := transaction.WithContext(ctx).
		Model(&types.Risk{}).
		Select(`"risk"."clasificacion_inherente" AS label, COUNT(*) AS count`).
		Group(`"risk"."clasificacion_inherente"`)
	if err := scopeRisk(q, s).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type ControlMeasureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, measure *types.ControlMeasure) (*types.ControlMeasure, error)
	ListByRisk(ctx context.Context, tx *gorm.DB, s scope.Scope, riskID uuid.UUID) ([]*types.ControlMeasure, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
	CountByType(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error)
}

type controlMeasureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewControlMeasureRepo(db *gorm.DB, baseLog *logger.Logger) ControlMeasureRepo {
	return &controlMeasureRepo{db: db, log: baseLog.With("repo", "ControlMeasureRepo")}
}

func (cr *controlMeasureRepo) Create(ctx context.Context, tx *gorm.DB, measure *types.ControlMeasure) (*types.ControlMeasure, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(measure).Error; err != nil {
		return nil, err
	}
	return measure, nil
}

func (cr *controlMeasureRepo) ListByRisk(ctx context.Context, tx *gorm.DB, s scope.Scope, riskID uuid.UUID) ([]*types.ControlMeasure, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ControlMeasure
	q := transaction.WithContext(ctx).
		Where(`"control_measure"."risk_id" = ?`, riskID).
		Order(`"control_measure"."created_at"`)
	if err := scopeControlMeasure(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *controlMeasureRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var measure types.ControlMeasure
	q := transaction.WithContext(ctx).Where(`"control_measure"."id" = ?`, id)
	if err := scopeControlMeasure(q, s).First(&measure).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&measure).Error
}

func (cr *controlMeasureRepo) CountByType(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []ClassificationCount
	q := transaction.WithContext(ctx).
		Model(&types.ControlMeasure{}).
		Select(`"control_measure"."tipo_control" AS label, COUNT(*) AS count`).
		Group(`"control_measure"."tipo_control"`)
	if err := scopeControlMeasure(q, s).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
