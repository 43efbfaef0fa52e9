package minting

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/mocks"
)

func newTestTracker(t *testing.T) (*Tracker, *mocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	return NewTracker(st), st
}

func TestMarkPending(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().MarkListingMintPending(ctx, uint64(1), "0xabc").Return(nil)

	require.NoError(t, tracker.MarkPending(ctx, 1, "0xabc"))
}

func TestMarkPendingAlreadyInFlight(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().MarkListingMintPending(ctx, uint64(1), "0xabc").
		Return(fmt.Errorf("%w: listing 1 mint is PENDING", domain.ErrInvalidState))

	err := tracker.MarkPending(ctx, 1, "0xabc")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestMarkPendingNotFound(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().MarkListingMintPending(ctx, uint64(1), "0xabc").
		Return(domain.ErrListingNotFound)

	err := tracker.MarkPending(ctx, 1, "0xabc")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestMarkCompleted(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().
		SetListingMintStatus(ctx, uint64(1), domain.MintStatusCompletedToken, nil, nil).
		Return(nil)
	require.NoError(t, tracker.MarkCompleted(ctx, 1, false))

	st.EXPECT().
		SetListingMintStatus(ctx, uint64(2), domain.MintStatusCompletedCollection, nil, nil).
		Return(nil)
	require.NoError(t, tracker.MarkCompleted(ctx, 2, true))
}

func TestMarkFailed(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	reason := "gas estimation failed"
	st.EXPECT().
		SetListingMintStatus(ctx, uint64(1), domain.MintStatusFailed, &reason, nil).
		Return(nil)

	require.NoError(t, tracker.MarkFailed(ctx, 1, reason))
}

func TestReset(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().ResetListingMintStatus(ctx, uint64(1)).Return(true, nil)
	require.NoError(t, tracker.Reset(ctx, 1))
}

func TestResetNotResettable(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().ResetListingMintStatus(ctx, uint64(1)).Return(false, nil)

	err := tracker.Reset(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestResetNotFound(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().ResetListingMintStatus(ctx, uint64(1)).Return(false, domain.ErrListingNotFound)

	err := tracker.Reset(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBulkReset(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().BulkResetMintStatus(ctx, []uint64{1, 2, 3}).Return(int64(2), nil)

	affected, err := tracker.BulkReset(ctx, []uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestBulkResetNoIDs(t *testing.T) {
	tracker, st := newTestTracker(t)
	ctx := context.Background()

	st.EXPECT().BulkResetMintStatus(ctx, nil).Return(int64(5), nil)

	affected, err := tracker.BulkReset(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), affected)
}
