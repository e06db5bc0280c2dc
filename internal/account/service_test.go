package account

import (
	"context"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, Credentials{Handle: "sidework_sam", PIN: "1234", DeviceID: "device-1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Role != RoleWorker {
		t.Fatalf("expected default worker role, got %s", user.Role)
	}

	authed, err := svc.Authenticate(ctx, Credentials{Handle: user.Handle, PIN: "1234", DeviceID: "device-1"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected same account, got %s", authed.ID)
	}
}

func TestRegisterRejectsBadRole(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Register(context.Background(), Credentials{Handle: "poster_pat", PIN: "1234", Role: "admin"}); err == nil {
		t.Fatalf("expected role validation error")
	}
}

func TestAuthenticateDeviceMismatch(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, Credentials{Handle: "gig_gwen", PIN: "1234", DeviceID: "device-1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Handle: "gig_gwen", PIN: "1234", DeviceID: "device-2"}); err == nil {
		t.Fatalf("expected device mismatch error")
	}
}

func TestAuthenticateWrongPIN(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Handle: "gig_gwen", PIN: "1234", DeviceID: "device-1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Handle: "gig_gwen", PIN: "9999", DeviceID: "device-1"}); err == nil {
		t.Fatalf("expected PIN rejection")
	}
}
