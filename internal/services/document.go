package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type UploadDocumentInput struct {
	CompanyID uuid.UUID
	Nombre    string
	Categoria string
	Filename  string
	File      io.Reader
}

type DocumentService interface {
	Create(ctx context.Context, s scope.Scope, document *types.Document) (*types.Document, error)
	Upload(ctx context.Context, s scope.Scope, input UploadDocumentInput) (*types.Document, error)
	ListByCompany(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Document, error)
	Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error
	FileURL(document *types.Document) string
}

type documentService struct {
	db           *gorm.DB
	log          *logger.Logger
	companyRepo  repos.CompanyRepo
	documentRepo repos.DocumentRepo
	bucket       BucketService
}

// bucket may be nil when the deployment has no object store; metadata-only
// documents still work, uploads are rejected.
func NewDocumentService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, documentRepo repos.DocumentRepo, bucket BucketService) DocumentService {
	return &documentService{
		db:           db,
		log:          log.With("service", "DocumentService"),
		companyRepo:  companyRepo,
		documentRepo: documentRepo,
		bucket:       bucket,
	}
}

func (ds *documentService) Create(ctx context.Context, s scope.Scope, document *types.Document) (*types.Document, error) {
	if strings.TrimSpace(document.Nombre) == "" {
		return nil, apierr.Validation("nombre is required")
	}
	if _, err := ds.companyRepo.GetByID(ctx, nil, s, document.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return ds.documentRepo.Create(ctx, nil, document)
}

func (ds *documentService) Upload(ctx context.Context, s scope.Scope, input UploadDocumentInput) (*types.Document, error) {
	if ds.bucket == nil {
		return nil, apierr.Validation("object storage is not configured")
	}
	if strings.TrimSpace(input.Nombre) == "" {
		return nil, apierr.Validation("nombre is required")
	}
	if input.File == nil {
		return nil, apierr.Validation("file is required")
	}
	if _, err := ds.companyRepo.GetByID(ctx, nil, s, input.CompanyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	key := fmt.Sprintf("companies/%s/documents/%s%s", input.CompanyID, uuid.New(), path.Ext(input.Filename))
	if err := ds.bucket.UploadFile(ctx, key, input.File); err != nil {
		return nil, err
	}
	document := &types.Document{
		CompanyID: input.CompanyID,
		Nombre:    input.Nombre,
		Categoria: input.Categoria,
		BucketKey: key,
	}
	created, err := ds.documentRepo.Create(ctx, nil, document)
	if err != nil {
		// the row is the source of truth; drop the orphan object
		if delErr := ds.bucket.DeleteFile(ctx, key); delErr != nil {
			ds.log.Warn("orphan object left in bucket", "key", key, "error", delErr.Error())
		}
		return nil, err
	}
	return created, nil
}

func (ds *documentService) FileURL(document *types.Document) string {
	if ds.bucket == nil || document.BucketKey == "" {
		return ""
	}
	return ds.bucket.GetPublicURL(document.BucketKey)
}

func (ds *documentService) ListByCompany(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Document, error) {
	if _, err := ds.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return ds.documentRepo.ListByCompany(ctx, nil, s, companyID)
}

func (ds *documentService) Delete(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	document, err := ds.documentRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return mapNotFound(err, "document")
	}
	if err := ds.documentRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "document")
	}
	if ds.bucket != nil && document.BucketKey != "" {
		if err := ds.bucket.DeleteFile(ctx, document.BucketKey); err != nil {
			ds.log.Warn("bucket delete failed", "key", document.BucketKey, "error", err.Error())
		}
	}
	return nil
}
