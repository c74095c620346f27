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

type CompanyService interface {
	Create(ctx context.Context, s scope.Scope, company *types.Company) (*types.Company, error)
	Get(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Company, error)
	List(ctx context.Context, s scope.Scope) ([]*types.Company, error)
	Update(ctx context.Context, s scope.Scope, company *types.Company) (*types.Company, error)
	Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error
	AddContact(ctx context.Context, s scope.Scope, contact *types.Contact) (*types.Contact, error)
	ListContacts(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Contact, error)
}

type companyService struct {
	db          *gorm.DB
	log         *logger.Logger
	companyRepo repos.CompanyRepo
	contactRepo repos.ContactRepo
}

func NewCompanyService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, contactRepo repos.ContactRepo) CompanyService {
	return &companyService{
		db:          db,
		log:         log.With("service", "CompanyService"),
		companyRepo: companyRepo,
		contactRepo: contactRepo,
	}
}

func (cs *companyService) validate(ctx context.Context, company *types.Company, excludeID *uuid.UUID) error {
	company.RazonSocial = strings.TrimSpace(company.RazonSocial)
	company.Rut = strings.TrimSpace(company.Rut)
	if company.RazonSocial == "" {
		return apierr.Validation("razon_social is required")
	}
	if company.Rut == "" {
		return apierr.Validation("rut is required")
	}
	// Duplicate razon social is allowed; duplicate rut is not.
	exists, err := cs.companyRepo.RutExists(ctx, nil, company.Rut, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apierr.Validation("rut %q is already registered", company.Rut)
	}
	return nil
}

func (cs *companyService) Create(ctx context.Context, s scope.Scope, company *types.Company) (*types.Company, error) {
	if err := cs.validate(ctx, company, nil); err != nil {
		return nil, err
	}
	company.OwnerID = s.UserID()
	created, err := cs.companyRepo.Create(ctx, nil, company)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (cs *companyService) Get(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Company, error) {
	company, err := cs.companyRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "company")
	}
	return company, nil
}

func (cs *companyService) List(ctx context.Context, s scope.Scope) ([]*types.Company, error) {
	return cs.companyRepo.List(ctx, nil, s)
}

func (cs *companyService) Update(ctx context.Context, s scope.Scope, company *types.Company) (*types.Company, error) {
	existing, err := cs.companyRepo.GetByID(ctx, nil, s, company.ID)
	if err != nil {
		return nil, mapNotFound(err, "company")
	}
	if err := cs.validate(ctx, company, &company.ID); err != nil {
		return nil, err
	}
	existing.RazonSocial = company.RazonSocial
	existing.Rut = company.Rut
	existing.Direccion = company.Direccion
	existing.Telefono = company.Telefono
	return cs.companyRepo.Update(ctx, nil, existing)
}

func (cs *companyService) Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := cs.companyRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "company")
	}
	return nil
}

func (cs *companyService) AddContact(ctx context.Context, s scope.Scope, contact *types.Contact) (*types.Contact, error) {
	if _, err := cs.companyRepo.GetByID(ctx, nil, s, contact.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	if strings.TrimSpace(contact.Nombre) == "" {
		return nil, apierr.Validation("nombre is required")
	}
	return cs.contactRepo.Create(ctx, nil, contact)
}

func (cs *companyService) ListContacts(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Contact, error) {
	if _, err := cs.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return cs.contactRepo.ListByCompany(ctx, nil, companyID)
}
