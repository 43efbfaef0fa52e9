package bids

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/store/schema"
)

// AggregatedBid is a bid enriched with the token's live on-chain owner.
// CurrentOwner is nil when the chain lookup failed; the bid is still returned
// so a node outage degrades the view instead of emptying it.
type AggregatedBid struct {
	Bid          schema.Bid
	CurrentOwner *string
}

// BidsSent returns all bids placed by the wallet, newest first, each
// annotated with the live owner of its target token.
func (s *Service) BidsSent(ctx context.Context, wallet string) ([]AggregatedBid, error) {
	if !domain.IsWalletAddress(wallet) {
		return nil, fmt.Errorf("%w: invalid wallet address %q", domain.ErrValidation, wallet)
	}

	bids, err := s.store.GetBidsByBidderWallet(ctx, domain.NormalizeAddress(wallet))
	if err != nil {
		return nil, err
	}

	return s.annotateOwners(ctx, bids), nil
}

// BidsReceived returns bids on tokens the wallet owns, newest first. The
// ownership set starts from the cached projection and is reconciled against
// the chain: bids on tokens the chain says have moved away are dropped.
// activeOnly restricts the result to ACTIVE bids.
func (s *Service) BidsReceived(ctx context.Context, wallet string, activeOnly bool) ([]AggregatedBid, error) {
	if !domain.IsWalletAddress(wallet) {
		return nil, fmt.Errorf("%w: invalid wallet address %q", domain.ErrValidation, wallet)
	}
	normalized := domain.NormalizeAddress(wallet)

	tokens, err := s.store.GetTokensByOwnerAddress(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	tokenIDs := make([]uint64, 0, len(tokens))
	for _, token := range tokens {
		tokenIDs = append(tokenIDs, token.ID)
	}

	var statuses []domain.BidStatus
	if activeOnly {
		statuses = []domain.BidStatus{domain.BidStatusActive}
	}

	bids, err := s.store.GetBidsForTokens(ctx, tokenIDs, statuses)
	if err != nil {
		return nil, err
	}

	annotated := s.annotateOwners(ctx, bids)

	// The projection can lag a transfer that happened outside the
	// marketplace. Trust the chain where it answered.
	result := annotated[:0]
	for _, ab := range annotated {
		if ab.CurrentOwner != nil && !domain.SameAddress(*ab.CurrentOwner, normalized) {
			logger.DebugCtx(ctx, "dropping bid on transferred token",
				zap.Uint64("bid_id", ab.Bid.ID),
				zap.Uint64("token_id", ab.Bid.TokenID),
				zap.String("chain_owner", *ab.CurrentOwner))
			continue
		}
		result = append(result, ab)
	}
	return result, nil
}

// annotateOwners resolves the live owner of every distinct token once,
// fanning the lookups out over the worker pool
func (s *Service) annotateOwners(ctx context.Context, bids []schema.Bid) []AggregatedBid {
	if len(bids) == 0 {
		return nil
	}

	type lookup struct {
		contract    string
		tokenNumber string
	}
	lookups := make(map[uint64]lookup)
	for _, bid := range bids {
		if _, seen := lookups[bid.TokenID]; seen {
			continue
		}
		if bid.Token == nil || bid.Listing == nil || bid.Listing.ContractAddress == nil {
			continue
		}
		lookups[bid.TokenID] = lookup{
			contract:    *bid.Listing.ContractAddress,
			tokenNumber: bid.Token.TokenNumber,
		}
	}

	var mu sync.Mutex
	owners := make(map[uint64]string, len(lookups))

	group := s.pool.NewGroup()
	for tokenID, l := range lookups {
		tokenID, l := tokenID, l
		group.Submit(func() {
			owner, err := s.resolver.OwnerOf(ctx, l.contract, l.tokenNumber)
			if err != nil {
				logger.WarnCtx(ctx, "owner lookup failed, degrading aggregation",
					zap.Uint64("token_id", tokenID),
					zap.Error(err))
				return
			}
			mu.Lock()
			owners[tokenID] = owner
			mu.Unlock()
		})
	}
	group.Wait()

	result := make([]AggregatedBid, 0, len(bids))
	for _, bid := range bids {
		ab := AggregatedBid{Bid: bid}
		if owner, ok := owners[bid.TokenID]; ok {
			ab.CurrentOwner = &owner
		}
		result = append(result, ab)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Bid.CreatedAt.After(result[j].Bid.CreatedAt)
	})
	return result
}
