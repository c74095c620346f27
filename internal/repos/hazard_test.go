package repos

import (
	"context"
	"testing"

	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
)

// The hazard catalog is protected: the risk FK is declared ON DELETE
// RESTRICT, so the database refuses to drop a referenced entry even if the
// service-level guard is bypassed.
func TestHazardDeleteRestrictedWhileReferenced(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewHazardRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "hazard-restrict@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "80.100.200-1")
	matrix := testutil.SeedMatrix(t, ctx, tx, company.ID)
	process := testutil.SeedProcess(t, ctx, tx, matrix.ID, "Montaje")
	task := testutil.SeedTask(t, ctx, tx, process.ID)
	hazard := testutil.SeedHazard(t, ctx, tx, "SEG-10")
	risk := testutil.SeedRisk(t, ctx, tx, task.ID, hazard.ID)

	refs, err := repo.ReferenceCount(ctx, tx, hazard.ID)
	if err != nil {
		t.Fatalf("ReferenceCount: %v", err)
	}
	if refs != 1 {
		t.Fatalf("ReferenceCount: expected 1, got %d", refs)
	}

	// the failed delete poisons the enclosing test transaction, so give it
	// a savepoint to recover to
	if err := tx.SavePoint("before_delete").Error; err != nil {
		t.Fatalf("savepoint: %v", err)
	}
	if err := repo.Delete(ctx, tx, hazard.ID); err == nil {
		t.Fatalf("Delete: expected FK violation for referenced hazard")
	}
	if err := tx.RollbackTo("before_delete").Error; err != nil {
		t.Fatalf("rollback to savepoint: %v", err)
	}

	// unreferenced, the same entry deletes fine
	if err := tx.WithContext(ctx).Delete(risk).Error; err != nil {
		t.Fatalf("delete risk: %v", err)
	}
	if err := repo.Delete(ctx, tx, hazard.ID); err != nil {
		t.Fatalf("Delete after dereference: %v", err)
	}
}
