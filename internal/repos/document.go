package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type DocumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, document *types.Document) (*types.Document, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Document, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Document, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	return &documentRepo{db: db, log: baseLog.With("repo", "DocumentRepo")}
}

func (dr *documentRepo) Create(ctx context.Context, tx *gorm.DB, document *types.Document) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).Create(document).Error; err != nil {
		return nil, err
	}
	return document, nil
}

func (dr *documentRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var document types.Document
	q := transaction.WithContext(ctx).Where(`"document"."id" = ?`, id)
	if err := scopeByCompanyID(q, s, "document").First(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (dr *documentRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []*types.Document
	q := transaction.WithContext(ctx).
		Where(`"document"."company_id" = ?`, companyID).
		Order(`"document"."created_at" DESC`)
	if err := scopeByCompanyID(q, s, "document").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *documentRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	document, err := dr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(document).Error
}
