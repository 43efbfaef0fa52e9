package bids

import (
	"context"
	"fmt"
	"math/big"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/store/schema"
)

// ValidateAcceptance checks that caller may accept the given bid and returns
// the bid on success. The ownership check goes to the chain, never the cached
// projection: a failure to reach the node blocks acceptance rather than
// authorizing against stale data.
func (s *Service) ValidateAcceptance(ctx context.Context, bidID uint64, caller string) (*schema.Bid, error) {
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

	if bid.Status != domain.BidStatusActive {
		return nil, fmt.Errorf("%w: bid %d is %s", domain.ErrInvalidState, bid.ID, bid.Status)
	}

	if err := validateBidFields(bid); err != nil {
		return nil, err
	}

	if domain.SameAddress(caller, bid.BidderWallet) {
		return nil, fmt.Errorf("%w: cannot accept own bid", domain.ErrUnauthorized)
	}

	if bid.Token == nil || bid.Listing == nil {
		return nil, fmt.Errorf("%w: bid %d has no token or listing", domain.ErrInvalidState, bid.ID)
	}
	if !bid.Token.MintStatus.Completed() {
		return nil, fmt.Errorf("%w: token %d is not minted", domain.ErrInvalidState, bid.TokenID)
	}
	if bid.Listing.ContractAddress == nil {
		return nil, fmt.Errorf("%w: listing %d has no contract", domain.ErrInvalidState, bid.ListingID)
	}

	owner, err := s.resolver.OwnerOf(ctx, *bid.Listing.ContractAddress, bid.Token.TokenNumber)
	if err != nil {
		return nil, err
	}
	if !domain.SameAddress(owner, caller) {
		return nil, fmt.Errorf("%w: caller does not own token %d", domain.ErrUnauthorized, bid.TokenID)
	}

	return bid, nil
}

// validateBidFields rejects malformed bids regardless of who is acting on them
func validateBidFields(bid *schema.Bid) error {
	if !domain.IsWalletAddress(bid.BidderWallet) {
		return fmt.Errorf("%w: invalid bidder wallet %q", domain.ErrValidation, bid.BidderWallet)
	}
	if !domain.IsValidCurrency(bid.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, bid.Currency)
	}
	amount, ok := new(big.Rat).SetString(bid.Amount)
	if !ok {
		return fmt.Errorf("%w: amount %q is not numeric", domain.ErrValidation, bid.Amount)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return nil
}
