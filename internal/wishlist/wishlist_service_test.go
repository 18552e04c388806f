package wishlist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock "go-saree-api/internal/mock/wishlist"
	"go-saree-api/internal/wishlist"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cold_cache_fetches_then_serves_from_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockClient(ctrl)
		svc := wishlist.NewService(client, nil)

		items := []wishlist.Item{{ID: "w1", ProductID: "p1", Name: "Silk Saree"}}
		client.EXPECT().List(ctx, "u1").Return(items, nil)

		got, err := svc.List(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, items, got)

		// second read is cache-only; no further List expected
		again, err := svc.List(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, items, again)
	})

	t.Run("fetch_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockClient(ctrl)
		svc := wishlist.NewService(client, nil)

		client.EXPECT().List(ctx, "u1").Return(nil, errors.New("upstream down"))

		_, err := svc.List(ctx, "u1")
		assert.ErrorIs(t, err, wishlist.ErrWishlistUnavailable)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success_drops_item_and_settles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockClient(ctrl)
		svc := wishlist.NewService(client, nil)

		initial := []wishlist.Item{
			{ID: "w1", ProductID: "p1"},
			{ID: "w2", ProductID: "p2"},
		}
		settled := []wishlist.Item{{ID: "w2", ProductID: "p2"}}
		refetched := make(chan struct{})

		client.EXPECT().List(ctx, "u1").Return(initial, nil)
		client.EXPECT().Remove(gomock.Any(), "u1", "p1").Return(nil)
		client.EXPECT().List(gomock.Any(), "u1").DoAndReturn(func(context.Context, string) ([]wishlist.Item, error) {
			defer close(refetched)
			return settled, nil
		})

		_, err := svc.List(ctx, "u1")
		require.NoError(t, err)

		require.NoError(t, svc.Remove(ctx, "u1", "p1"))
		waitFor(t, refetched, "settle refetch")

		got, err := svc.List(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, settled, got)
	})

	t.Run("rejected_write_rolls_back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mock.NewMockClient(ctrl)
		svc := wishlist.NewService(client, nil)

		initial := []wishlist.Item{
			{ID: "w1", ProductID: "p1"},
			{ID: "w2", ProductID: "p2"},
		}
		refetched := make(chan struct{})

		client.EXPECT().List(ctx, "u1").Return(initial, nil)
		client.EXPECT().Remove(gomock.Any(), "u1", "p1").Return(errors.New("server said no"))
		client.EXPECT().List(gomock.Any(), "u1").DoAndReturn(func(context.Context, string) ([]wishlist.Item, error) {
			defer close(refetched)
			return initial, nil
		})

		_, err := svc.List(ctx, "u1")
		require.NoError(t, err)

		err = svc.Remove(ctx, "u1", "p1")
		assert.ErrorIs(t, err, wishlist.ErrWishlistFailed)
		waitFor(t, refetched, "settle refetch")

		got, err := svc.List(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, initial, got)
	})
}

func TestWishlistService_Clear(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	svc := wishlist.NewService(client, nil)

	initial := []wishlist.Item{{ID: "w1", ProductID: "p1"}}
	refetched := make(chan struct{})

	client.EXPECT().List(ctx, "u1").Return(initial, nil)
	client.EXPECT().Clear(gomock.Any(), "u1").Return(nil)
	client.EXPECT().List(gomock.Any(), "u1").DoAndReturn(func(context.Context, string) ([]wishlist.Item, error) {
		defer close(refetched)
		return []wishlist.Item{}, nil
	})

	_, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))
	waitFor(t, refetched, "settle refetch")

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
