package bids

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/messaging"
	"github.com/deedlane/marketplace/internal/store"
	"github.com/deedlane/marketplace/internal/store/schema"
)

func TestAccept(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)

	accepted := activeBid(1)
	accepted.Status = domain.BidStatusAccepted
	m.store.EXPECT().
		AcceptBid(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.AcceptBidParams) (*schema.Bid, error) {
			assert.Equal(t, uint64(1), params.BidID)
			assert.Equal(t, bidderWallet, params.NewOwner)
			assert.NotEmpty(t, params.PriceEntryID)
			return accepted, nil
		})
	m.publisher.EXPECT().
		PublishPriceEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event messaging.PriceEvent) error {
			assert.Equal(t, domain.PriceEventBidAccepted, event.Type)
			assert.Equal(t, "125000", event.Price)
			return nil
		})

	bid, err := svc.Accept(ctx, 1, ownerWallet, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BidStatusAccepted, bid.Status)
}

func TestAcceptPublishFailureDoesNotFail(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)

	accepted := activeBid(1)
	accepted.Status = domain.BidStatusAccepted
	m.store.EXPECT().AcceptBid(ctx, gomock.Any()).Return(accepted, nil)
	m.publisher.EXPECT().
		PublishPriceEvent(ctx, gomock.Any()).
		Return(assert.AnError)

	_, err := svc.Accept(ctx, 1, ownerWallet, nil)
	assert.NoError(t, err)
}

func TestAcceptLosesRace(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)
	m.store.EXPECT().AcceptBid(ctx, gomock.Any()).Return(nil, domain.ErrInvalidState)

	_, err := svc.Accept(ctx, 1, ownerWallet, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReject(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)

	rejected := activeBid(1)
	rejected.Status = domain.BidStatusRejected
	m.store.EXPECT().
		RejectBid(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.RejectBidParams) (*schema.Bid, error) {
			assert.Equal(t, uint64(1), params.BidID)
			assert.NotEmpty(t, params.PriceEntryID)
			return rejected, nil
		})
	m.publisher.EXPECT().
		PublishPriceEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event messaging.PriceEvent) error {
			assert.Equal(t, domain.PriceEventBidRejected, event.Type)
			return nil
		})

	bid, err := svc.Reject(ctx, 1, ownerWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.BidStatusRejected, bid.Status)
}

func TestRejectHistoryWriteFailure(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)
	m.store.EXPECT().
		RejectBid(ctx, gomock.Any()).
		Return(nil, errors.New("db connection lost"))

	// No event is published and the error surfaces to the caller: the
	// transition and its audit row commit together or not at all.
	_, err := svc.Reject(ctx, 1, ownerWallet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db connection lost")
}

func TestRejectRequiresOwnership(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").
		Return("0x0000000000000000000000000000000000000001", nil)

	_, err := svc.Reject(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestWithdraw(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.store.EXPECT().
		UpdateBidStatus(ctx, uint64(1), domain.BidStatusActive, domain.BidStatusWithdrawn).
		Return(true, nil)

	withdrawn := activeBid(1)
	withdrawn.Status = domain.BidStatusWithdrawn
	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(withdrawn, nil)

	bid, err := svc.Withdraw(ctx, 1, bidderWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.BidStatusWithdrawn, bid.Status)
}

func TestWithdrawOnlyBidder(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)

	_, err := svc.Withdraw(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestWithdrawTerminalBid(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	bid := activeBid(1)
	bid.Status = domain.BidStatusOutbid
	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(bid, nil)

	_, err := svc.Withdraw(ctx, 1, bidderWallet)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestWithdrawNotFound(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(42)).Return(nil, nil)

	_, err := svc.Withdraw(ctx, 42, bidderWallet)
	assert.ErrorIs(t, err, domain.ErrBidNotFound)
}
