package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/deedlane/marketplace/internal/domain"
)

// PriceHistoryEntry represents the price_history table - an append-only audit
// trail of pricing events for a listing. Rows are never mutated after creation.
type PriceHistoryEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EntryID is the public ULID identifier, sortable by creation time
	EntryID string `gorm:"column:entry_id;not null;uniqueIndex;type:text"`
	// ListingID references the listing the event belongs to
	ListingID uint64 `gorm:"column:listing_id;not null;index"`
	// BidID references the bid that caused the event, when applicable
	BidID *uint64 `gorm:"column:bid_id;index"`
	// EventType is the kind of pricing event (SALE, BID_ACCEPTED, ...)
	EventType domain.PriceEventType `gorm:"column:event_type;not null;type:text;index"`
	// Price is the event price as a numeric string
	Price string `gorm:"column:price;not null;type:numeric"`
	// Currency is the denomination of Price
	Currency domain.Currency `gorm:"column:currency;not null;type:text"`
	// ActorAddress is the wallet that triggered the event, when known
	ActorAddress *string `gorm:"column:actor_address;type:text"`
	// Meta holds event-specific payload as JSONB
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
	// CreatedAt is the timestamp when the event was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PriceHistoryEntry model
func (PriceHistoryEntry) TableName() string {
	return "price_history"
}
