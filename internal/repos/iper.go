package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type IperMatrixRepo interface {
	Create(ctx context.Context, tx *gorm.DB, matrix *types.IperMatrix) (*types.IperMatrix, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.IperMatrix, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.IperMatrix, error)
	Update(ctx context.Context, tx *gorm.DB, matrix *types.IperMatrix) (*types.IperMatrix, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type iperMatrixRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIperMatrixRepo(db *gorm.DB, baseLog *logger.Logger) IperMatrixRepo {
	return &iperMatrixRepo{db: db, log: baseLog.With("repo", "IperMatrixRepo")}
}

func (ir *iperMatrixRepo) Create(ctx context.Context, tx *gorm.DB, matrix *types.IperMatrix) (*types.IperMatrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if err := transaction.WithContext(ctx).Create(matrix).Error; err != nil {
		return nil, err
	}
	return matrix, nil
}

func (ir *iperMatrixRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.IperMatrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var matrix types.IperMatrix
	q := transaction.WithContext(ctx).Where(`"iper_matrix"."id" = ?`, id)
	if err := scopeByCompanyID(q, s, "iper_matrix").First(&matrix).Error; err != nil {
		return nil, err
	}
	return &matrix, nil
}

func (ir *iperMatrixRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.IperMatrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.IperMatrix
	q := transaction.WithContext(ctx).
		Where(`"iper_matrix"."company_id" = ?`, companyID).
		Order(`"iper_matrix"."created_at"`)
	if err := scopeByCompanyID(q, s, "iper_matrix").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *iperMatrixRepo) Update(ctx context.Context, tx *gorm.DB, matrix *types.IperMatrix) (*types.IperMatrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if err := transaction.WithContext(ctx).Save(matrix).Error; err != nil {
		return nil, err
	}
	return matrix, nil
}

func (ir *iperMatrixRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	matrix, err := ir.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(matrix).Error
}

type IperDetailRepo interface {
	Create(ctx context.Context, tx *gorm.DB, detail *types.IperDetail) (*types.IperDetail, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.IperDetail, error)
	ListByMatrix(ctx context.Context, tx *gorm.DB, s scope.Scope, matrixID uuid.UUID) ([]*types.IperDetail, error)
	Update(ctx context.Context, tx *gorm.DB, detail *types.IperDetail) (*types.IperDetail, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type iperDetailRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIperDetailRepo(db *gorm.DB, baseLog *logger.Logger) IperDetailRepo {
	return &iperDetailRepo{db: db, log: baseLog.With("repo", "IperDetailRepo")}
}

func (ir *iperDetailRepo) Create(ctx context.Context, tx *gorm.DB, detail *types.IperDetail) (*types.IperDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if err := transaction.WithContext(ctx).Create(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

func (ir *iperDetailRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.IperDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var detail types.IperDetail
	q := transaction.WithContext(ctx).Where(`"iper_detail"."id" = ?`, id)
	if err := scopeIperDetail(q, s).First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (ir *iperDetailRepo) ListByMatrix(ctx context.Context, tx *gorm.DB, s scope.Scope, matrixID uuid.UUID) ([]*types.IperDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.IperDetail
	q := transaction.WithContext(ctx).
		Where(`"iper_detail"."iper_matrix_id" = ?`, matrixID).
		Order(`"iper_detail"."created_at"`)
	if err := scopeIperDetail(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *iperDetailRepo) Update(ctx context.Context, tx *gorm.DB, detail *types.IperDetail) (*types.IperDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if err := transaction.WithContext(ctx).Save(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

func (ir *iperDetailRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	detail, err := ir.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(detail).Error
}
