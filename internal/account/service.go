package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service manages account lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new account service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a hashed PIN. Role defaults to
// worker when omitted.
func (s *Service) Register(ctx context.Context, creds Credentials) (User, error) {
	if len(creds.Handle) < 3 {
		return User{}, errors.New("handle must be at least 3 characters")
	}
	if len(creds.PIN) < 4 {
		return User{}, errors.New("PIN must be at least 4 digits")
	}
	role := creds.Role
	switch role {
	case "":
		role = RoleWorker
	case RoleWorker, RolePoster:
	default:
		return User{}, errors.New("role must be worker or poster")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.PIN), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:        uuid.New().String(),
		Handle:    creds.Handle,
		Role:      role,
		PINHash:   hash,
		DeviceID:  creds.DeviceID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies credentials and device binding.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	user, err := s.repo.FindByHandle(ctx, creds.Handle)
	if err != nil {
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PINHash, []byte(creds.PIN)); err != nil {
		return User{}, errors.New("invalid PIN")
	}

	if user.DeviceID == "" {
		if creds.DeviceID == "" {
			return User{}, errors.New("device binding required")
		}
		if err := s.repo.UpdateDevice(ctx, user.ID, creds.DeviceID); err != nil {
			return User{}, err
		}
		user.DeviceID = creds.DeviceID
	} else if creds.DeviceID != "" && user.DeviceID != creds.DeviceID {
		return User{}, errors.New("device mismatch")
	}

	return user, nil
}
