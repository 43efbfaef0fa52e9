package schema

import (
	"time"

	"github.com/deedlane/marketplace/internal/domain"
)

// TxStatus represents the settlement state of an on-chain transaction record
type TxStatus string

const (
	TxStatusPending   TxStatus = "PENDING"
	TxStatusConfirmed TxStatus = "CONFIRMED"
	TxStatusFailed    TxStatus = "FAILED"
)

// Transaction represents the transactions table - on-chain settlement records
// linked to listings and, for bid sales, to the accepted bid
type Transaction struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the on-chain transaction hash
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// ListingID references the listing being settled
	ListingID uint64 `gorm:"column:listing_id;not null;index"`
	// BidID references the accepted bid, when the sale came from a bid
	BidID *uint64 `gorm:"column:bid_id;index"`
	// FromAddress is the wallet paying for the sale (the buyer); From/To
	// describe the payment flow, not the token transfer
	FromAddress string `gorm:"column:from_address;not null;type:text"`
	// ToAddress is the wallet receiving payment (the seller at settlement time)
	ToAddress string `gorm:"column:to_address;not null;type:text"`
	// Amount is the settled amount as a numeric string
	Amount string `gorm:"column:amount;not null;type:numeric"`
	// Currency is the denomination of Amount
	Currency domain.Currency `gorm:"column:currency;not null;type:text"`
	// Status is the settlement state
	Status TxStatus `gorm:"column:status;not null;type:text;default:'PENDING'"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
