package auth

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	autherrors "go-saree-api/internal/auth/errors"
	"go-saree-api/internal/commerce"
)

// CartSyncer is the one-shot reconciliation run after a session turns
// authenticated; the cart module provides it.
type CartSyncer interface {
	SyncOnLogin(ctx context.Context, userID string) error
}

type Service struct {
	identity IdentityClient
	cartSync CartSyncer
	logger   *zap.Logger
}

func NewService(identity IdentityClient, cartSync CartSyncer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		identity: identity,
		cartSync: cartSync,
		logger:   logger.Named("auth.service"),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	identity, err := s.identity.Verify(ctx, email, password)
	if err != nil {
		if apiErr, ok := err.(*commerce.APIError); ok && apiErr.Status == http.StatusUnauthorized {
			return "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", AuthResponse{}, autherrors.ErrIdentityUnavailable
	}

	token, err := s.generateToken(identity.ID, 24*time.Hour)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	// The anonymous-to-authenticated transition happens here, so this is
	// where the server cart replaces the local one. A failed sync does not
	// block the login; the local cart simply stays until the next one.
	if err := s.cartSync.SyncOnLogin(ctx, identity.ID); err != nil {
		s.logger.Warn("cart sync on login failed", zap.String("user_id", identity.ID), zap.Error(err))
	}

	return token, AuthResponse{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
	}, nil
}

func (s *Service) generateToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
