package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/account"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := SignHS256(map[string]any{"sub": "u1", "exp": time.Now().Add(time.Minute).Unix()}, []byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseAndVerifyHS256(token, []byte("secret"))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub, _ := claims["sub"].(string); sub != "u1" {
		t.Fatalf("sub = %q, want u1", sub)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := SignHS256(map[string]any{"sub": "u1"}, []byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAndVerifyHS256(token, []byte("other")); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := SignHS256(map[string]any{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()}, []byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAndVerifyHS256(token, []byte("secret")); err == nil {
		t.Fatal("expected expired token rejection")
	}
}

func TestRefreshRejectsBumpedTokenVersion(t *testing.T) {
	ctx := context.Background()
	repo := account.NewMemoryRepository()
	user := account.User{ID: "u1", Handle: "worker1", Role: account.RoleWorker, TokenVersion: 0}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := NewService(testConfig(), repo)
	pair, err := svc.Login(user)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("refresh before logout: %v", err)
	}

	if err := svc.Logout(ctx, "u1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); err == nil {
		t.Fatal("expected refresh rejection after logout")
	}
}
