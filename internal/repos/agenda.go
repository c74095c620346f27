package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type VisitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Visit, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Visit, error)
	Update(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type visitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVisitRepo(db *gorm.DB, baseLog *logger.Logger) VisitRepo {
	return &visitRepo{db: db, log: baseLog.With("repo", "VisitRepo")}
}

func (vr *visitRepo) Create(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

func (vr *visitRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var visit types.Visit
	q := transaction.WithContext(ctx).Where(`"visit"."id" = ?`, id)
	if err := scopeByCompanyID(q, s, "visit").First(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (vr *visitRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.Visit
	q := transaction.WithContext(ctx).
		Where(`"visit"."company_id" = ?`, companyID).
		Order(`"visit"."fecha_hora"`)
	if err := scopeByCompanyID(q, s, "visit").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *visitRepo) Update(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Save(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

func (vr *visitRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	visit, err := vr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(visit).Error
}

type ReminderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Reminder, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type reminderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReminderRepo(db *gorm.DB, baseLog *logger.Logger) ReminderRepo {
	return &reminderRepo{db: db, log: baseLog.With("repo", "ReminderRepo")}
}

func (rr *reminderRepo) Create(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (rr *reminderRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Reminder
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("fecha_hora").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reminderRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
