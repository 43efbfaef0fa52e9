package bids

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/messaging"
	"github.com/deedlane/marketplace/internal/store"
	"github.com/deedlane/marketplace/internal/store/schema"
)

// Accept transitions an ACTIVE bid to ACCEPTED on behalf of the token owner.
// All sibling ACTIVE bids on the token become OUTBID in the same database
// transaction, the token's owner projection moves to the bidder, and a price
// history row is appended. The sale event is then published best effort.
func (s *Service) Accept(ctx context.Context, bidID uint64, caller string, txHash *string) (*schema.Bid, error) {
	bid, err := s.ValidateAcceptance(ctx, bidID, caller)
	if err != nil {
		return nil, err
	}

	entryID := ulid.Make().String()
	accepted, err := s.store.AcceptBid(ctx, store.AcceptBidParams{
		BidID:        bid.ID,
		NewOwner:     domain.NormalizeAddress(bid.BidderWallet),
		TxHash:       txHash,
		PriceEntryID: entryID,
		AcceptedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, messaging.PriceEvent{
		ID:         entryID,
		Type:       domain.PriceEventBidAccepted,
		ListingID:  accepted.ListingID,
		TokenID:    accepted.TokenID,
		BidID:      accepted.ID,
		Price:      accepted.Amount,
		Currency:   accepted.Currency,
		Actor:      accepted.BidderWallet,
		OccurredAt: accepted.UpdatedAt,
	})

	logger.InfoCtx(ctx, "bid accepted",
		zap.Uint64("bid_id", accepted.ID),
		zap.Uint64("token_id", accepted.TokenID),
		zap.String("amount", accepted.Amount))
	return accepted, nil
}

// Reject transitions an ACTIVE bid to REJECTED on behalf of the token owner.
// Ownership is verified against the chain the same way acceptance is. The
// transition and its BID_REJECTED price history row commit in one database
// transaction; neither lands without the other.
func (s *Service) Reject(ctx context.Context, bidID uint64, caller string) (*schema.Bid, error) {
	bid, err := s.ValidateAcceptance(ctx, bidID, caller)
	if err != nil {
		return nil, err
	}

	entryID := ulid.Make().String()
	rejected, err := s.store.RejectBid(ctx, store.RejectBidParams{
		BidID:        bid.ID,
		PriceEntryID: entryID,
		RejectedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, messaging.PriceEvent{
		ID:         entryID,
		Type:       domain.PriceEventBidRejected,
		ListingID:  rejected.ListingID,
		TokenID:    rejected.TokenID,
		BidID:      rejected.ID,
		Price:      rejected.Amount,
		Currency:   rejected.Currency,
		Actor:      rejected.BidderWallet,
		OccurredAt: rejected.UpdatedAt,
	})

	logger.InfoCtx(ctx, "bid rejected", zap.Uint64("bid_id", rejected.ID))
	return rejected, nil
}

// Withdraw transitions an ACTIVE bid to WITHDRAWN on behalf of the bidder.
// No chain call is made: the bidder's identity comes from authentication,
// not token ownership.
func (s *Service) Withdraw(ctx context.Context, bidID uint64, caller string) (*schema.Bid, error) {
	if !domain.IsWalletAddress(caller) {
		return nil, fmt.Errorf("%w: invalid caller address %q", domain.ErrValidation, caller)
	}

	bid, err := s.store.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, domain.ErrBidNotFound
	}

	if !domain.SameAddress(caller, bid.BidderWallet) {
		return nil, fmt.Errorf("%w: only the bidder may withdraw", domain.ErrUnauthorized)
	}
	if bid.Status != domain.BidStatusActive {
		return nil, fmt.Errorf("%w: bid %d is %s", domain.ErrInvalidState, bid.ID, bid.Status)
	}

	ok, err := s.store.UpdateBidStatus(ctx, bid.ID, domain.BidStatusActive, domain.BidStatusWithdrawn)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: bid %d is no longer ACTIVE", domain.ErrInvalidState, bid.ID)
	}

	logger.InfoCtx(ctx, "bid withdrawn", zap.Uint64("bid_id", bid.ID))
	return s.store.GetBidByID(ctx, bid.ID)
}

// publishEvent emits a price event without letting a bus outage fail the
// caller's request
func (s *Service) publishEvent(ctx context.Context, event messaging.PriceEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPriceEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish price event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
