package services

import (
	"context"
	"testing"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/riskeval"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

func TestRiskServiceCreateEsquema(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	svc := NewRiskService(tx, log,
		repos.NewTaskRepo(tx, log),
		repos.NewHazardRepo(tx, log),
		repos.NewRiskRepo(tx, log),
		repos.NewControlMeasureRepo(tx, log))

	owner := testutil.SeedUser(t, ctx, tx, "risk-esquema@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "83.400.500-6")
	matrix := testutil.SeedMatrix(t, ctx, tx, company.ID)
	process := testutil.SeedProcess(t, ctx, tx, matrix.ID, "Bodega")
	task := testutil.SeedTask(t, ctx, tx, process.ID)
	hazard := testutil.SeedHazard(t, ctx, tx, "SEG-40")
	s := scope.ForUser(owner.ID, false)

	created, err := svc.Create(ctx, s, &types.Risk{
		TaskID:   task.ID,
		HazardID: hazard.ID,
		Esquema:  string(riskeval.SchemeLegacyVEP),
	})
	if err != nil {
		t.Fatalf("Create vep: %v", err)
	}
	if created.Esquema != string(riskeval.SchemeLegacyVEP) {
		t.Fatalf("Create vep: esquema = %q, want %q", created.Esquema, riskeval.SchemeLegacyVEP)
	}
	stored, err := svc.Get(ctx, s, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Esquema != string(riskeval.SchemeLegacyVEP) {
		t.Fatalf("Get: esquema = %q, want %q", stored.Esquema, riskeval.SchemeLegacyVEP)
	}

	defaulted, err := svc.Create(ctx, s, &types.Risk{
		TaskID:   task.ID,
		HazardID: hazard.ID,
	})
	if err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if defaulted.Esquema != string(riskeval.SchemeCategory) {
		t.Fatalf("Create default: esquema = %q, want %q", defaulted.Esquema, riskeval.SchemeCategory)
	}

	_, err = svc.Create(ctx, s, &types.Risk{
		TaskID:   task.ID,
		HazardID: hazard.ID,
		Esquema:  "matriz-5x5",
	})
	if err == nil {
		t.Fatalf("Create: expected rejection of unknown esquema")
	}
	if !apierr.IsCode(err, apierr.CodeValidationFailed) {
		t.Fatalf("Create: expected validation_failed, got %v", err)
	}
}
