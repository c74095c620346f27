package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/scope"
)

// The risk table has no company_id column; scoping walks the
// task -> process -> matrix -> company chain.
func TestRiskRepoScoping(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewRiskRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "risk-owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "risk-other@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "79.300.400-5")
	matrix := testutil.SeedMatrix(t, ctx, tx, company.ID)
	process := testutil.SeedProcess(t, ctx, tx, matrix.ID, "Hormigonado")
	task := testutil.SeedTask(t, ctx, tx, process.ID)
	hazard := testutil.SeedHazard(t, ctx, tx, "SEG-01")
	risk := testutil.SeedRisk(t, ctx, tx, task.ID, hazard.ID)

	got, err := repo.GetByID(ctx, tx, scope.ForUser(owner.ID, false), risk.ID)
	if err != nil {
		t.Fatalf("GetByID as owner: %v", err)
	}
	if got.ID != risk.ID {
		t.Fatalf("GetByID as owner: expected %s, got %s", risk.ID, got.ID)
	}

	_, err = repo.GetByID(ctx, tx, scope.ForUser(other.ID, false), risk.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID as other user: expected record not found, got %v", err)
	}

	list, err := repo.ListByTask(ctx, tx, scope.ForUser(owner.ID, false), task.ID)
	if err != nil {
		t.Fatalf("ListByTask as owner: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListByTask as owner: expected 1 risk, got %d", len(list))
	}

	list, err = repo.ListByTask(ctx, tx, scope.ForUser(other.ID, false), task.ID)
	if err != nil {
		t.Fatalf("ListByTask as other user: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("ListByTask as other user: expected 0 risks, got %d", len(list))
	}
}
