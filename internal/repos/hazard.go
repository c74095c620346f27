package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// Hazards and regulations are application-wide catalogs, shared by all
// tenants, so their reads take no scope.

type HazardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, hazard *types.Hazard) (*types.Hazard, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Hazard, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Hazard, error)
	Update(ctx context.Context, tx *gorm.DB, hazard *types.Hazard) (*types.Hazard, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CodigoExists(ctx context.Context, tx *gorm.DB, codigo string, excludeID *uuid.UUID) (bool, error)
	ReferenceCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type hazardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHazardRepo(db *gorm.DB, baseLog *logger.Logger) HazardRepo {
	return &hazardRepo{db: db, log: baseLog.With("repo", "HazardRepo")}
}

func (hr *hazardRepo) Create(ctx context.Context, tx *gorm.DB, hazard *types.Hazard) (*types.Hazard, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Create(hazard).Error; err != nil {
		return nil, err
	}
	return hazard, nil
}

func (hr *hazardRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Hazard, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var hazard types.Hazard
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&hazard).Error; err != nil {
		return nil, err
	}
	return &hazard, nil
}

func (hr *hazardRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Hazard, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.Hazard
	if err := transaction.WithContext(ctx).
		Order("codigo").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *hazardRepo) Update(ctx context.Context, tx *gorm.DB, hazard *types.Hazard) (*types.Hazard, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Save(hazard).Error; err != nil {
		return nil, err
	}
	return hazard, nil
}

func (hr *hazardRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Hazard{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (hr *hazardRepo) CodigoExists(ctx context.Context, tx *gorm.DB, codigo string, excludeID *uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var count int64
	q := transaction.WithContext(ctx).Model(&types.Hazard{}).Where("codigo = ?", codigo)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (hr *hazardRepo) ReferenceCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Risk{}).
		Where("hazard_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type RegulationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Regulation, error)
	Update(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type regulationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRegulationRepo(db *gorm.DB, baseLog *logger.Logger) RegulationRepo {
	return &regulationRepo{db: db, log: baseLog.With("repo", "RegulationRepo")}
}

func (rr *regulationRepo) Create(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(regulation).Error; err != nil {
		return nil, err
	}
	return regulation, nil
}

func (rr *regulationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Regulation
	if err := transaction.WithContext(ctx).
		Order("nombre").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *regulationRepo) Update(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Save(regulation).Error; err != nil {
		return nil, err
	}
	return regulation, nil
}

func (rr *regulationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Regulation{}).Error
}
