package cart

import (
	"context"

	"go.uber.org/zap"

	carterrors "go-saree-api/internal/cart/errors"
)

// SyncAdapter reconciles the local cart with the server cart once per login.
// Server wins entirely: local-only guest additions not echoed back by the
// server are discarded, and the applied coupon is left alone.
type SyncAdapter struct {
	remote RemoteCartClient
	store  *Store
	logger *zap.Logger
}

func NewSyncAdapter(remote RemoteCartClient, store *Store, logger *zap.Logger) *SyncAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncAdapter{
		remote: remote,
		store:  store,
		logger: logger.Named("cart.sync"),
	}
}

func (a *SyncAdapter) SyncOnLogin(ctx context.Context, userID string) error {
	items, err := a.remote.FetchItems(ctx, userID)
	if err != nil {
		a.logger.Warn("server cart fetch failed", zap.String("user_id", userID), zap.Error(err))
		return carterrors.ErrCartSyncFailed
	}

	a.store.SyncWithServer(ctx, UserKey(userID), items)
	a.logger.Info("cart synced from server", zap.String("user_id", userID), zap.Int("items", len(items)))
	return nil
}
