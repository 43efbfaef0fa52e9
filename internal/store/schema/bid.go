package schema

import (
	"time"

	"github.com/deedlane/marketplace/internal/domain"
)

// Bid represents the bids table - an offer by a wallet to purchase a token
// at a given price
type Bid struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ListingID references the listing the target token belongs to
	ListingID uint64 `gorm:"column:listing_id;not null;index"`
	// TokenID references the target token
	TokenID uint64 `gorm:"column:token_id;not null;index:idx_bids_token_status,priority:1"`
	// BidderID references the bidding user
	BidderID uint64 `gorm:"column:bidder_id;not null;index"`
	// BidderWallet is the bidder's wallet address, normalized
	BidderWallet string `gorm:"column:bidder_wallet;not null;type:text;index"`
	// Amount is the bid amount as a numeric string
	Amount string `gorm:"column:amount;not null;type:numeric"`
	// Currency is the denomination of Amount
	Currency domain.Currency `gorm:"column:currency;not null;type:text"`
	// Status is the lifecycle state (ACTIVE/ACCEPTED/REJECTED/WITHDRAWN/OUTBID)
	Status domain.BidStatus `gorm:"column:status;not null;type:text;index:idx_bids_token_status,priority:2"`
	// TxHash is the settlement transaction hash, when known
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// CreatedAt is the timestamp when the bid was placed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the last status-change timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Bidder  *User    `gorm:"foreignKey:BidderID"`
	Token   *Token   `gorm:"foreignKey:TokenID"`
	Listing *Listing `gorm:"foreignKey:ListingID"`
}

// TableName specifies the table name for the Bid model
func (Bid) TableName() string {
	return "bids"
}
