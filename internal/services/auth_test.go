package services

import (
	"context"
	"testing"
	"time"

	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/types"
)

func TestAuthServiceRefreshRotatesPair(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	svc := NewAuthService(tx, log, repos.NewUserRepo(tx, log), repos.NewUserTokenRepo(tx, log),
		"test-secret", 15*time.Minute, 24*time.Hour)

	user := &types.User{
		Email:     "refresh@example.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "B",
	}
	if err := svc.RegisterUser(ctx, user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	access, refresh, err := svc.LoginUser(ctx, user.Email, "secret123")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("LoginUser: expected token pair")
	}

	newAccess, newRefresh, err := svc.RefreshUser(ctx, refresh)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("RefreshUser: expected token pair")
	}
	if newRefresh == refresh {
		t.Fatalf("RefreshUser: refresh token must rotate")
	}

	// the redeemed token is gone
	if _, _, err := svc.RefreshUser(ctx, refresh); err == nil {
		t.Fatalf("RefreshUser: expected rejection of already-redeemed token")
	}

	// the rotated token still works
	if _, _, err := svc.RefreshUser(ctx, newRefresh); err != nil {
		t.Fatalf("RefreshUser (rotated): %v", err)
	}
}

func TestAuthServiceRefreshRejectsExpired(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	tokenRepo := repos.NewUserTokenRepo(tx, log)
	svc := NewAuthService(tx, log, repos.NewUserRepo(tx, log), tokenRepo,
		"test-secret", 15*time.Minute, 24*time.Hour)

	owner := testutil.SeedUser(t, ctx, tx, "refresh-expired@example.com")
	expired, err := tokenRepo.Create(ctx, tx, &types.UserToken{
		UserID:       owner.ID,
		RefreshToken: "stale-token",
		ExpiresAt:    time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("Create token: %v", err)
	}

	if _, _, err := svc.RefreshUser(ctx, expired.RefreshToken); err == nil {
		t.Fatalf("RefreshUser: expected rejection of expired token")
	}

	// an expired token is removed on sight
	if _, err := tokenRepo.GetByRefreshToken(ctx, tx, expired.RefreshToken); err == nil {
		t.Fatalf("expected expired token to be deleted")
	}
}
