package schema

import (
	"time"

	"github.com/deedlane/marketplace/internal/domain"
)

// Token represents the tokens table - one NFT unit within a listing's collection.
// OwnerAddress is a cached projection of blockchain truth, refreshed by
// reconciliation; it is authoritative only after a sync.
type Token struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ListingID references the owning listing
	ListingID uint64 `gorm:"column:listing_id;not null;uniqueIndex:idx_tokens_listing_number,priority:1"`
	// TokenNumber is the token ID within the collection contract (string to
	// support very large numbers), unique per listing
	TokenNumber string `gorm:"column:token_number;not null;type:text;uniqueIndex:idx_tokens_listing_number,priority:2"`
	// OwnerAddress mirrors the current on-chain owner, eventually consistent
	OwnerAddress *string `gorm:"column:owner_address;type:text;index"`
	// OwnerSyncedAt records when OwnerAddress was last reconciled with the chain
	OwnerSyncedAt *time.Time `gorm:"column:owner_synced_at"`
	// Listed indicates whether the token is individually offered for sale
	Listed bool `gorm:"column:listed;not null;default:false"`
	// ListPrice is the per-token asking price as a numeric string
	ListPrice *string `gorm:"column:list_price;type:numeric"`
	// MintStatus tracks the token-level mint progress
	MintStatus domain.MintStatus `gorm:"column:mint_status;not null;type:text;default:'NOT_STARTED'"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Listing *Listing `gorm:"foreignKey:ListingID"`
	Bids    []Bid    `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
