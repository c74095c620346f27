package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

func TestCompanyRepoScoping(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCompanyRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "other@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "76.123.456-7")

	got, err := repo.GetByID(ctx, tx, scope.ForUser(owner.ID, false), company.ID)
	if err != nil {
		t.Fatalf("GetByID as owner: %v", err)
	}
	if got.ID != company.ID {
		t.Fatalf("GetByID as owner: expected %s, got %s", company.ID, got.ID)
	}

	// another tenant's company is indistinguishable from a missing one
	_, err = repo.GetByID(ctx, tx, scope.ForUser(other.ID, false), company.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID as other user: expected record not found, got %v", err)
	}

	got, err = repo.GetByID(ctx, tx, scope.ForUser(other.ID, true), company.ID)
	if err != nil {
		t.Fatalf("GetByID as superuser: %v", err)
	}
	if got.ID != company.ID {
		t.Fatalf("GetByID as superuser: expected %s, got %s", company.ID, got.ID)
	}

	ownerList, err := repo.List(ctx, tx, scope.ForUser(owner.ID, false))
	if err != nil {
		t.Fatalf("List as owner: %v", err)
	}
	if len(ownerList) != 1 {
		t.Fatalf("List as owner: expected 1 company, got %d", len(ownerList))
	}

	otherList, err := repo.List(ctx, tx, scope.ForUser(other.ID, false))
	if err != nil {
		t.Fatalf("List as other user: %v", err)
	}
	if len(otherList) != 0 {
		t.Fatalf("List as other user: expected 0 companies, got %d", len(otherList))
	}
}

// Deleting a company must take its whole hierarchy with it; the catalog
// tables survive.
func TestCompanyDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCompanyRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "cascade-owner@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "81.200.300-4")
	matrix := testutil.SeedMatrix(t, ctx, tx, company.ID)
	process := testutil.SeedProcess(t, ctx, tx, matrix.ID, "Demolición")
	task := testutil.SeedTask(t, ctx, tx, process.ID)
	hazard := testutil.SeedHazard(t, ctx, tx, "SEG-20")
	risk := testutil.SeedRisk(t, ctx, tx, task.ID, hazard.ID)
	testutil.SeedControlMeasure(t, ctx, tx, risk.ID)
	testutil.SeedIperMatrix(t, ctx, tx, company.ID)
	testutil.SeedLegalTask(t, ctx, tx, company.ID, time.Now().AddDate(0, 0, 30))

	if err := repo.Delete(ctx, tx, scope.ForUser(owner.ID, false), company.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining := []struct {
		name  string
		model interface{}
		where string
		arg   interface{}
	}{
		{"matrix", &types.Matrix{}, "company_id = ?", company.ID},
		{"process", &types.Process{}, "matrix_id = ?", matrix.ID},
		{"task", &types.Task{}, "process_id = ?", process.ID},
		{"risk", &types.Risk{}, "task_id = ?", task.ID},
		{"control measure", &types.ControlMeasure{}, "risk_id = ?", risk.ID},
		{"iper matrix", &types.IperMatrix{}, "company_id = ?", company.ID},
		{"legal task", &types.LegalTask{}, "company_id = ?", company.ID},
	}
	for _, r := range remaining {
		var n int64
		if err := tx.WithContext(ctx).Model(r.model).Where(r.where, r.arg).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", r.name, err)
		}
		if n != 0 {
			t.Errorf("expected no %s rows after company delete, got %d", r.name, n)
		}
	}

	// the hazard catalog is application-wide, not company-owned
	var hazards int64
	if err := tx.WithContext(ctx).Model(&types.Hazard{}).Where("id = ?", hazard.ID).Count(&hazards).Error; err != nil {
		t.Fatalf("count hazards: %v", err)
	}
	if hazards != 1 {
		t.Fatalf("expected hazard to survive company delete")
	}
}

func TestCompanyRepoRutExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCompanyRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "rut-owner@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "77.000.111-2")

	exists, err := repo.RutExists(ctx, tx, company.Rut, nil)
	if err != nil {
		t.Fatalf("RutExists: %v", err)
	}
	if !exists {
		t.Fatalf("RutExists: expected true for seeded rut")
	}

	// excluding the company itself makes its own rut free again, which is
	// what the update path relies on
	exists, err = repo.RutExists(ctx, tx, company.Rut, &company.ID)
	if err != nil {
		t.Fatalf("RutExists (exclude self): %v", err)
	}
	if exists {
		t.Fatalf("RutExists (exclude self): expected false")
	}

	exists, err = repo.RutExists(ctx, tx, "99.999.999-9", nil)
	if err != nil {
		t.Fatalf("RutExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("RutExists (missing): expected false")
	}
}
