package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type CompanyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Company, error)
	List(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]*types.Company, error)
	Update(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
	RutExists(ctx context.Context, tx *gorm.DB, rut string, excludeID *uuid.UUID) (bool, error)
	CompanyIDs(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]uuid.UUID, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Company, error)
}

type companyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyRepo(db *gorm.DB, baseLog *logger.Logger) CompanyRepo {
	return &companyRepo{db: db, log: baseLog.With("repo", "CompanyRepo")}
}

func (cr *companyRepo) Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (cr *companyRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var company types.Company
	q := transaction.WithContext(ctx).Where(`"company"."id" = ?`, id)
	if err := scopeCompany(q, s).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (cr *companyRepo) List(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Company
	q := transaction.WithContext(ctx).Order("razon_social")
	if err := scopeCompany(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *companyRepo) Update(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// Delete hard-deletes the company; the database cascades through matrices,
// processes, tasks, risks, control measures, documents and the rest of the
// chain.
func (cr *companyRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	q := transaction.WithContext(ctx).Where(`"company"."id" = ?`, id)
	res := scopeCompany(q, s).Delete(&types.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (cr *companyRepo) RutExists(ctx context.Context, tx *gorm.DB, rut string, excludeID *uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	q := transaction.WithContext(ctx).Model(&types.Company{}).Where("rut = ?", rut)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *companyRepo) CompanyIDs(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var ids []uuid.UUID
	q := transaction.WithContext(ctx).Model(&types.Company{})
	if err := scopeCompany(q, s).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByIDs runs unscoped; it serves the cross-tenant alert batch.
func (cr *companyRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Company
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, companyID uuid.UUID) ([]*types.Contact, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (cr *contactRepo) ListByCompany(ctx context.Context, tx *gorm.DB, companyID uuid.UUID) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("nombre").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Contact{}).Error
}
