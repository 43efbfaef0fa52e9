package store

import (
	"context"
	"time"

	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// ListingFilter narrows ListListings results
type ListingFilter struct {
	Status  *domain.ListingStatus
	OwnerID *uint64
	Limit   int
	Offset  int
}

// AcceptBidParams carries everything AcceptBid mutates in one transaction
type AcceptBidParams struct {
	BidID uint64
	// NewOwner is the bidder wallet the token projection is updated to
	NewOwner string
	// TxHash links an on-chain settlement record, when already known
	TxHash *string
	// PriceEntryID is the ULID for the appended price history row
	PriceEntryID string
	// AcceptedAt is the transition timestamp
	AcceptedAt time.Time
}

// RejectBidParams carries the reject transition and its audit entry
type RejectBidParams struct {
	BidID uint64
	// PriceEntryID is the ULID for the appended price history row
	PriceEntryID string
	// RejectedAt is the transition timestamp
	RejectedAt time.Time
}

// Store is the persistence interface for the marketplace
type Store interface {
	// Users
	GetUserByID(ctx context.Context, id uint64) (*schema.User, error)
	GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error)

	// Listings
	GetListingByID(ctx context.Context, id uint64) (*schema.Listing, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error)
	GetPriceHistory(ctx context.Context, listingID uint64) ([]schema.PriceHistoryEntry, error)
	AppendPriceHistory(ctx context.Context, entry *schema.PriceHistoryEntry) error

	// Tokens
	GetTokenByID(ctx context.Context, id uint64) (*schema.Token, error)
	GetTokensByOwnerAddress(ctx context.Context, owner string) ([]schema.Token, error)
	GetTokensForOwnerSync(ctx context.Context, limit int) ([]schema.Token, error)
	UpdateTokenOwner(ctx context.Context, tokenID uint64, owner string, syncedAt time.Time) error

	// Bids
	CreateBid(ctx context.Context, bid *schema.Bid) error
	GetBidByID(ctx context.Context, id uint64) (*schema.Bid, error)
	GetBidsByBidderWallet(ctx context.Context, wallet string) ([]schema.Bid, error)
	GetBidsForTokens(ctx context.Context, tokenIDs []uint64, statuses []domain.BidStatus) ([]schema.Bid, error)
	// AcceptBid atomically transitions an ACTIVE bid to ACCEPTED, marks all
	// sibling ACTIVE bids on the same token OUTBID, updates the token owner
	// projection, appends the price history row and, when TxHash is set,
	// records the settlement transaction. Returns domain.ErrInvalidState when
	// the bid is no longer ACTIVE.
	AcceptBid(ctx context.Context, params AcceptBidParams) (*schema.Bid, error)
	// RejectBid atomically transitions an ACTIVE bid to REJECTED and appends
	// the BID_REJECTED price history row in the same transaction. Returns
	// domain.ErrInvalidState when the bid is no longer ACTIVE.
	RejectBid(ctx context.Context, params RejectBidParams) (*schema.Bid, error)
	// UpdateBidStatus transitions a bid from one status to another. Returns
	// false without error when the bid was not in the expected status.
	UpdateBidStatus(ctx context.Context, bidID uint64, from, to domain.BidStatus) (bool, error)

	// Mint status
	SetListingMintStatus(ctx context.Context, listingID uint64, status domain.MintStatus, errorReason, txHash *string) error
	// MarkListingMintPending moves a listing into PENDING. The precondition
	// (no mint in flight or completed) lives in the UPDATE's WHERE clause, so
	// concurrent submissions cannot both pass. Returns
	// domain.ErrInvalidState when the listing is not in a startable state.
	MarkListingMintPending(ctx context.Context, listingID uint64, txHash string) error
	// ResetListingMintStatus moves a FAILED or NOT_STARTED listing back to
	// NOT_STARTED and clears the error fields. Returns false when the listing
	// is in a non-resettable state.
	ResetListingMintStatus(ctx context.Context, listingID uint64) (bool, error)
	// BulkResetMintStatus resets the given listings. With no IDs it instead
	// fails out every PENDING listing, clearing stuck mints after an outage.
	BulkResetMintStatus(ctx context.Context, listingIDs []uint64) (int64, error)
}
