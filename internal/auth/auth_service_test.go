package auth_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-saree-api/internal/auth"
	autherrors "go-saree-api/internal/auth/errors"
	"go-saree-api/internal/commerce"
	mock "go-saree-api/internal/mock/auth"
)

type fakeCartSyncer struct {
	syncedUserIDs []string
	err           error
}

func (f *fakeCartSyncer) SyncOnLogin(ctx context.Context, userID string) error {
	f.syncedUserIDs = append(f.syncedUserIDs, userID)
	return f.err
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success_issues_token_and_syncs_cart", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock.NewMockIdentityClient(ctrl)
		syncer := &fakeCartSyncer{}
		svc := auth.NewService(identity, syncer, nil)

		identity.EXPECT().
			Verify(ctx, "meera@example.com", "secret").
			Return(auth.Identity{ID: "u-1", Email: "meera@example.com", Name: "Meera"}, nil)

		token, res, err := svc.Login(ctx, "meera@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "u-1", res.ID)
		assert.Equal(t, "Meera", res.Name)
		assert.Equal(t, []string{"u-1"}, syncer.syncedUserIDs)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		require.NoError(t, err)
		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "u-1", claims["user_id"])
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock.NewMockIdentityClient(ctrl)
		syncer := &fakeCartSyncer{}
		svc := auth.NewService(identity, syncer, nil)

		identity.EXPECT().
			Verify(ctx, "meera@example.com", "wrong").
			Return(auth.Identity{}, &commerce.APIError{Status: http.StatusUnauthorized})

		_, _, err := svc.Login(ctx, "meera@example.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		assert.Empty(t, syncer.syncedUserIDs)
	})

	t.Run("identity_service_down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock.NewMockIdentityClient(ctrl)
		svc := auth.NewService(identity, &fakeCartSyncer{}, nil)

		identity.EXPECT().
			Verify(ctx, "meera@example.com", "secret").
			Return(auth.Identity{}, &commerce.APIError{Status: http.StatusBadGateway})

		_, _, err := svc.Login(ctx, "meera@example.com", "secret")
		assert.ErrorIs(t, err, autherrors.ErrIdentityUnavailable)
	})

	t.Run("failed_cart_sync_does_not_block_login", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock.NewMockIdentityClient(ctrl)
		syncer := &fakeCartSyncer{err: assert.AnError}
		svc := auth.NewService(identity, syncer, nil)

		identity.EXPECT().
			Verify(ctx, "meera@example.com", "secret").
			Return(auth.Identity{ID: "u-1", Email: "meera@example.com"}, nil)

		token, _, err := svc.Login(ctx, "meera@example.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, []string{"u-1"}, syncer.syncedUserIDs)
	})
}
