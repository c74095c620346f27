package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/scope"
)

func TestLegalTaskRepoListDueBefore(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewLegalTaskRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "alertas@example.com")
	companyA := testutil.SeedCompany(t, ctx, tx, owner.ID, "78.100.200-3")
	companyB := testutil.SeedCompany(t, ctx, tx, owner.ID, "78.100.200-4")

	now := time.Now()
	dueSoon := testutil.SeedLegalTask(t, ctx, tx, companyA.ID, now.AddDate(0, 0, 3))
	dueSoonOther := testutil.SeedLegalTask(t, ctx, tx, companyB.ID, now.AddDate(0, 0, 5))
	dueLater := testutil.SeedLegalTask(t, ctx, tx, companyA.ID, now.AddDate(0, 1, 0))

	done := testutil.SeedLegalTask(t, ctx, tx, companyA.ID, now.AddDate(0, 0, 1))
	done.Completada = true
	if _, err := repo.Update(ctx, tx, done); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.ListDueBefore(ctx, tx, now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("ListDueBefore: %v", err)
	}

	found := map[uuid.UUID]bool{}
	for _, task := range got {
		found[task.ID] = true
	}
	if !found[dueSoon.ID] || !found[dueSoonOther.ID] {
		t.Fatalf("ListDueBefore: expected both due tasks, got %d results", len(got))
	}
	if found[done.ID] {
		t.Fatalf("ListDueBefore: completed task must not be returned")
	}
	if found[dueLater.ID] {
		t.Fatalf("ListDueBefore: task beyond the cutoff must not be returned")
	}
}

func TestLegalTaskRepoScoping(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewLegalTaskRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "legal-owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "legal-other@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "78.500.600-7")
	task := testutil.SeedLegalTask(t, ctx, tx, company.ID, time.Now().AddDate(0, 0, 10))

	got, err := repo.GetByID(ctx, tx, scope.ForUser(owner.ID, false), task.ID)
	if err != nil {
		t.Fatalf("GetByID as owner: %v", err)
	}
	if got.ID != task.ID {
		t.Fatalf("GetByID as owner: expected %s, got %s", task.ID, got.ID)
	}

	list, err := repo.ListByCompany(ctx, tx, scope.ForUser(other.ID, false), company.ID)
	if err != nil {
		t.Fatalf("ListByCompany as other user: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("ListByCompany as other user: expected 0 tasks, got %d", len(list))
	}
}
