package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/account"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/config"
)

// Service issues and verifies access/refresh token pairs for accounts.
type Service struct {
	cfg      config.Config
	accounts account.Repository
}

// NewService builds the token service.
func NewService(cfg config.Config, accounts account.Repository) *Service {
	return &Service{cfg: cfg, accounts: accounts}
}

// TokenPair bundles the tokens returned on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login issues a token pair for an already-authenticated account.
func (s *Service) Login(user account.User) (TokenPair, error) {
	access, accessExp, err := s.sign(user, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, _, err := s.sign(user, s.cfg.RefreshSecret, s.cfg.RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(accessExp).Seconds()),
	}, nil
}

func (s *Service) sign(user account.User, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := map[string]any{
		"sub":    user.ID,
		"handle": user.Handle,
		"role":   user.Role,
		"ver":    user.TokenVersion,
		"iat":    now.Unix(),
		"exp":    exp.Unix(),
	}
	signed, err := SignHS256(claims, []byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Refresh verifies the refresh token and returns a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, int64, error) {
	claims, err := ParseAndVerifyHS256(refreshToken, []byte(s.cfg.RefreshSecret))
	if err != nil {
		return "", 0, errors.New("invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	verFloat, _ := claims["ver"].(float64)
	ver := int(verFloat)

	user, err := s.accounts.FindByID(ctx, sub)
	if err != nil {
		return "", 0, errors.New("account not found")
	}
	if user.TokenVersion != ver {
		return "", 0, errors.New("token version invalidated")
	}

	accessClaims := map[string]any{
		"sub": sub,
		"ver": ver,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.AccessTokenTTL).Unix(),
	}
	signed, err := SignHS256(accessClaims, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.cfg.AccessTokenTTL.Seconds()), nil
}

// Logout bumps the token version so previously issued tokens stop
// verifying.
func (s *Service) Logout(ctx context.Context, userID string) error {
	user, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.accounts.UpdateTokenVersion(ctx, user.ID, user.TokenVersion+1)
}
