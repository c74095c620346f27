package services

import (
	"context"
	"testing"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
)

func TestHazardServiceDeleteRefusesReferenced(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	svc := NewHazardService(tx, log, repos.NewHazardRepo(tx, log))

	owner := testutil.SeedUser(t, ctx, tx, "hazard-guard@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "82.300.400-5")
	matrix := testutil.SeedMatrix(t, ctx, tx, company.ID)
	process := testutil.SeedProcess(t, ctx, tx, matrix.ID, "Soldadura")
	task := testutil.SeedTask(t, ctx, tx, process.ID)
	hazard := testutil.SeedHazard(t, ctx, tx, "SEG-30")
	risk := testutil.SeedRisk(t, ctx, tx, task.ID, hazard.ID)

	err := svc.Delete(ctx, hazard.ID)
	if err == nil {
		t.Fatalf("Delete: expected refusal for referenced hazard")
	}
	if !apierr.IsCode(err, apierr.CodeReferentialIntegrity) {
		t.Fatalf("Delete: expected referential_integrity, got %v", err)
	}

	if err := tx.WithContext(ctx).Delete(risk).Error; err != nil {
		t.Fatalf("delete risk: %v", err)
	}
	if err := svc.Delete(ctx, hazard.ID); err != nil {
		t.Fatalf("Delete after dereference: %v", err)
	}
}
