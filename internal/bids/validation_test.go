package bids

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/mocks"
	"github.com/deedlane/marketplace/internal/store/schema"
)

const (
	ownerWallet  = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	bidderWallet = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	contractAddr = "0x06012c8cf97BEaD5deAe237070F9587f8E7A266d"
)

type serviceMocks struct {
	store     *mocks.MockStore
	resolver  *mocks.MockOwnerResolver
	publisher *mocks.MockPublisher
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		store:     mocks.NewMockStore(ctrl),
		resolver:  mocks.NewMockOwnerResolver(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	svc := NewService(m.store, m.resolver, m.publisher, adapter.NewClock(), 4)
	t.Cleanup(svc.Stop)
	return svc, m
}

func activeBid(id uint64) *schema.Bid {
	contract := contractAddr
	return &schema.Bid{
		ID:           id,
		ListingID:    1,
		TokenID:      10,
		BidderWallet: bidderWallet,
		Amount:       "125000",
		Currency:     domain.CurrencyUSDC,
		Status:       domain.BidStatusActive,
		Token: &schema.Token{
			ID:          10,
			ListingID:   1,
			TokenNumber: "7",
			MintStatus:  domain.MintStatusCompletedToken,
		},
		Listing: &schema.Listing{
			ID:              1,
			ContractAddress: &contract,
		},
	}
}

func TestValidateAcceptance(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").Return(ownerWallet, nil)

	bid, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bid.ID)
}

func TestValidateAcceptanceNotFound(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(nil, nil)

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrBidNotFound)
}

func TestValidateAcceptanceTerminalBid(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	bid := activeBid(1)
	bid.Status = domain.BidStatusWithdrawn
	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(bid, nil)

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestValidateAcceptanceSelfBid(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)

	_, err := svc.ValidateAcceptance(ctx, 1, bidderWallet)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateAcceptanceNotOwner(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").
		Return("0x0000000000000000000000000000000000000001", nil)

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateAcceptanceCaseInsensitiveOwner(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").
		Return("0x8BA1F109551BD432803012645AC136DDD64DBA72", nil)

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.NoError(t, err)
}

func TestValidateAcceptanceChainDown(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(activeBid(1), nil)
	m.resolver.EXPECT().OwnerOf(ctx, contractAddr, "7").
		Return("", domain.ErrUpstreamUnavailable)

	// an unreachable node must block acceptance, never authorize from the
	// cached projection
	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestValidateAcceptanceUnmintedToken(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	bid := activeBid(1)
	bid.Token.MintStatus = domain.MintStatusPending
	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(bid, nil)

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestValidateAcceptanceBadAmount(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	for _, amount := range []string{"0", "-5", "abc"} {
		bid := activeBid(1)
		bid.Amount = amount
		m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(bid, nil)

		_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
		assert.ErrorIs(t, err, domain.ErrValidation, "amount %q", amount)
	}
}

func TestValidateAcceptanceInvalidCaller(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateAcceptance(context.Background(), 1, "not-a-wallet")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateAcceptanceStoreError(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	m.store.EXPECT().GetBidByID(ctx, uint64(1)).Return(nil, errors.New("connection reset"))

	_, err := svc.ValidateAcceptance(ctx, 1, ownerWallet)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBidNotFound)
}
