package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type HazardService interface {
	Create(ctx context.Context, hazard *types.Hazard) (*types.Hazard, error)
	List(ctx context.Context) ([]*types.Hazard, error)
	Update(ctx context.Context, hazard *types.Hazard) (*types.Hazard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hazardService struct {
	db         *gorm.DB
	log        *logger.Logger
	hazardRepo repos.HazardRepo
}

func NewHazardService(db *gorm.DB, log *logger.Logger, hazardRepo repos.HazardRepo) HazardService {
	return &hazardService{
		db:         db,
		log:        log.With("service", "HazardService"),
		hazardRepo: hazardRepo,
	}
}

func (hs *hazardService) validate(ctx context.Context, hazard *types.Hazard, excludeID *uuid.UUID) error {
	hazard.Codigo = strings.TrimSpace(hazard.Codigo)
	if hazard.Codigo == "" {
		return apierr.Validation("codigo is required")
	}
	if strings.TrimSpace(hazard.RiesgoEspecifico) == "" {
		return apierr.Validation("riesgo_especifico is required")
	}
	exists, err := hs.hazardRepo.CodigoExists(ctx, nil, hazard.Codigo, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apierr.Validation("codigo %q is already in the catalog", hazard.Codigo)
	}
	return nil
}

func (hs *hazardService) Create(ctx context.Context, hazard *types.Hazard) (*types.Hazard, error) {
	if err := hs.validate(ctx, hazard, nil); err != nil {
		return nil, err
	}
	return hs.hazardRepo.Create(ctx, nil, hazard)
}

func (hs *hazardService) List(ctx context.Context) ([]*types.Hazard, error) {
	return hs.hazardRepo.List(ctx, nil)
}

func (hs *hazardService) Update(ctx context.Context, hazard *types.Hazard) (*types.Hazard, error) {
	existing, err := hs.hazardRepo.GetByID(ctx, nil, hazard.ID)
	if err != nil {
		return nil, mapNotFound(err, "hazard")
	}
	if err := hs.validate(ctx, hazard, &hazard.ID); err != nil {
		return nil, err
	}
	existing.FamiliaRiesgo = hazard.FamiliaRiesgo
	existing.RiesgoEspecifico = hazard.RiesgoEspecifico
	existing.Definicion = hazard.Definicion
	existing.Codigo = hazard.Codigo
	return hs.hazardRepo.Update(ctx, nil, existing)
}

// Delete refuses to remove a catalog entry that any risk still references.
// The FK is also declared RESTRICT, so the check holds even under races.
func (hs *hazardService) Delete(ctx context.Context, id uuid.UUID) error {
	refs, err := hs.hazardRepo.ReferenceCount(ctx, nil, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierr.ReferentialIntegrity("hazard is referenced by %d risk(s)", refs)
	}
	if err := hs.hazardRepo.Delete(ctx, nil, id); err != nil {
		return mapNotFound(err, "hazard")
	}
	return nil
}
