package messaging

import (
	"context"
	"time"

	"github.com/deedlane/marketplace/internal/domain"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher

// PriceEvent is the wire payload for marketplace pricing events
type PriceEvent struct {
	// ID is the ULID of the price history entry the event mirrors
	ID string `json:"id"`
	// Type is the kind of pricing event
	Type domain.PriceEventType `json:"type"`
	// ListingID identifies the listing
	ListingID uint64 `json:"listing_id"`
	// TokenID identifies the token, when the event is token-scoped
	TokenID uint64 `json:"token_id,omitempty"`
	// BidID identifies the bid, when the event came from a bid
	BidID uint64 `json:"bid_id,omitempty"`
	// Price is the event price as a numeric string
	Price string `json:"price"`
	// Currency is the denomination of Price
	Currency domain.Currency `json:"currency"`
	// Actor is the wallet that triggered the event, when known
	Actor string `json:"actor,omitempty"`
	// OccurredAt is the event timestamp
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits marketplace events to downstream consumers
type Publisher interface {
	// PublishPriceEvent emits a pricing event. Delivery is best effort from
	// the caller's perspective; persistence never waits on it.
	PublishPriceEvent(ctx context.Context, event PriceEvent) error
	Close() error
}

// NopPublisher discards all events. Used when no message bus is configured.
type NopPublisher struct{}

func (NopPublisher) PublishPriceEvent(_ context.Context, _ PriceEvent) error { return nil }
func (NopPublisher) Close() error                                            { return nil }
