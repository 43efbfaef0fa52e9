package minting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/store"
)

// Tracker manages the mint status of listings
type Tracker struct {
	store store.Store
}

func NewTracker(st store.Store) *Tracker {
	return &Tracker{store: st}
}

// MarkPending moves a listing into PENDING when a mint transaction is
// submitted. The state guard runs inside the UPDATE so a concurrent
// submission or reset cannot slip between check and write.
func (t *Tracker) MarkPending(ctx context.Context, listingID uint64, txHash string) error {
	if err := t.store.MarkListingMintPending(ctx, listingID, txHash); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "mint submitted",
		zap.Uint64("listing_id", listingID),
		zap.String("tx_hash", txHash))
	return nil
}

// MarkCompleted finalizes a successful mint. collection selects between the
// single-token and whole-collection completion states.
func (t *Tracker) MarkCompleted(ctx context.Context, listingID uint64, collection bool) error {
	status := domain.MintStatusCompletedToken
	if collection {
		status = domain.MintStatusCompletedCollection
	}
	if err := t.store.SetListingMintStatus(ctx, listingID, status, nil, nil); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "mint completed",
		zap.Uint64("listing_id", listingID),
		zap.String("status", string(status)))
	return nil
}

// MarkFailed records a failed mint with its reason, making the listing
// eligible for reset
func (t *Tracker) MarkFailed(ctx context.Context, listingID uint64, reason string) error {
	return t.store.SetListingMintStatus(ctx, listingID, domain.MintStatusFailed, &reason, nil)
}

// Reset returns a FAILED or NOT_STARTED listing to NOT_STARTED so the mint
// can be retried. PENDING and completed mints are refused: an in-flight
// transaction may still land, and a completed mint is immutable history.
func (t *Tracker) Reset(ctx context.Context, listingID uint64) error {
	ok, err := t.store.ResetListingMintStatus(ctx, listingID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: listing %d mint status is not resettable", domain.ErrInvalidState, listingID)
	}
	logger.InfoCtx(ctx, "mint status reset", zap.Uint64("listing_id", listingID))
	return nil
}

// BulkReset resets the given listings to NOT_STARTED, skipping any that are
// not resettable, and returns the number touched. With no IDs it instead
// fails out every PENDING listing: the no-target form exists to clear mints
// stuck in flight after a worker outage, which is a different operation from
// retrying known failures.
func (t *Tracker) BulkReset(ctx context.Context, listingIDs []uint64) (int64, error) {
	affected, err := t.store.BulkResetMintStatus(ctx, listingIDs)
	if err != nil {
		return 0, err
	}
	logger.InfoCtx(ctx, "bulk mint status reset",
		zap.Int("requested", len(listingIDs)),
		zap.Int64("affected", affected))
	return affected, nil
}
