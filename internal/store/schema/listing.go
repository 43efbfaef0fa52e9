package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/deedlane/marketplace/internal/domain"
)

// Listing represents the listings table - a tokenized real-estate offering
// minted as one or more tokens under a single collection contract
type Listing struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerID references the user that created the listing
	OwnerID uint64 `gorm:"column:owner_id;not null;index"`
	// ContractAddress is the collection contract on chain (set once minted)
	ContractAddress *string `gorm:"column:contract_address;type:text;index"`
	// MainTokenNumber is the token number of the listing's primary token
	MainTokenNumber *string `gorm:"column:main_token_number;type:text"`
	// Title is the human-readable listing title
	Title string `gorm:"column:title;not null;type:text"`
	// Price is the asking price as a numeric string (no float arithmetic)
	Price string `gorm:"column:price;not null;type:numeric"`
	// Currency is the denomination of Price
	Currency domain.Currency `gorm:"column:currency;not null;type:text"`
	// Status is the publication state (DRAFT/PENDING/ACTIVE/REJECTED/DELISTED)
	Status domain.ListingStatus `gorm:"column:status;not null;type:text;index"`
	// RejectionReason explains a REJECTED status
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`
	// MintStatus tracks the on-chain creation progress
	MintStatus domain.MintStatus `gorm:"column:mint_status;not null;type:text;index;default:'NOT_STARTED'"`
	// MintErrorReason explains a FAILED mint status
	MintErrorReason *string `gorm:"column:mint_error_reason;type:text"`
	// MintTxHash is the transaction hash of the mint attempt
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// MintedAt is the timestamp of the last mint attempt
	MintedAt *time.Time `gorm:"column:minted_at"`
	// Metadata holds listing attributes (location, surface, documents) as JSONB
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Owner        *User               `gorm:"foreignKey:OwnerID"`
	Tokens       []Token             `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Bids         []Bid               `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	PriceHistory []PriceHistoryEntry `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
