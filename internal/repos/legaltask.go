package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type LegalTaskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, task *types.LegalTask) (*types.LegalTask, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.LegalTask, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.LegalTask, error)
	Update(ctx context.Context, tx *gorm.DB, task *types.LegalTask) (*types.LegalTask, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
	ListDueBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.LegalTask, error)
}

type legalTaskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLegalTaskRepo(db *gorm.DB, baseLog *logger.Logger) LegalTaskRepo {
	return &legalTaskRepo{db: db, log: baseLog.With("repo", "LegalTaskRepo")}
}

func (lr *legalTaskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.LegalTask) (*types.LegalTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (lr *legalTaskRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.LegalTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var task types.LegalTask
	q := transaction.WithContext(ctx).Where(`"legal_task"."id" = ?`, id)
	if err := scopeByCompanyID(q, s, "legal_task").First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (lr *legalTaskRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.LegalTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.LegalTask
	q := transaction.WithContext(ctx).
		Where(`"legal_task"."company_id" = ?`, companyID).
		Order(`"legal_task"."proxima_fecha_vencimiento"`)
	if err := scopeByCompanyID(q, s, "legal_task").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *legalTaskRepo) Update(ctx context.Context, tx *gorm.DB, task *types.LegalTask) (*types.LegalTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (lr *legalTaskRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	task, err := lr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(task).Error
}

// ListDueBefore feeds the alert job; it runs unscoped because the batch
// process notifies across all tenants.
func (lr *legalTaskRepo) ListDueBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) ([]*types.LegalTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.LegalTask
	if err := transaction.WithContext(ctx).
		Where("proxima_fecha_vencimiento <= ? AND completada = ?", cutoff, false).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
