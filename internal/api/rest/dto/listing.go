package dto

import (
	"encoding/json"
	"time"

	"github.com/deedlane/marketplace/internal/store/schema"
)

// ListingResponse is the public shape of a listing
type ListingResponse struct {
	ID              uint64          `json:"id"`
	OwnerID         uint64          `json:"owner_id"`
	ContractAddress *string         `json:"contract_address,omitempty"`
	Title           string          `json:"title"`
	Price           string          `json:"price"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	MintStatus      string          `json:"mint_status"`
	MintErrorReason *string         `json:"mint_error_reason,omitempty"`
	MintTxHash      *string         `json:"mint_tx_hash,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	Tokens          []TokenResponse `json:"tokens,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TokenResponse is the public shape of a token
type TokenResponse struct {
	ID            uint64     `json:"id"`
	TokenNumber   string     `json:"token_number"`
	OwnerAddress  *string    `json:"owner_address"`
	OwnerSyncedAt *time.Time `json:"owner_synced_at,omitempty"`
	Listed        bool       `json:"listed"`
	ListPrice     *string    `json:"list_price,omitempty"`
	MintStatus    string     `json:"mint_status"`
}

// PriceHistoryResponse is the public shape of a price history entry
type PriceHistoryResponse struct {
	ID           string    `json:"id"`
	ListingID    uint64    `json:"listing_id"`
	BidID        *uint64   `json:"bid_id,omitempty"`
	EventType    string    `json:"event_type"`
	Price        string    `json:"price"`
	Currency     string    `json:"currency"`
	ActorAddress *string   `json:"actor_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewListingResponse converts a stored listing
func NewListingResponse(listing *schema.Listing) ListingResponse {
	resp := ListingResponse{
		ID:              listing.ID,
		OwnerID:         listing.OwnerID,
		ContractAddress: listing.ContractAddress,
		Title:           listing.Title,
		Price:           listing.Price,
		Currency:        string(listing.Currency),
		Status:          string(listing.Status),
		MintStatus:      string(listing.MintStatus),
		MintErrorReason: listing.MintErrorReason,
		MintTxHash:      listing.MintTxHash,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
	}
	if len(listing.Metadata) > 0 {
		resp.Metadata = json.RawMessage(listing.Metadata)
	}
	for i := range listing.Tokens {
		token := &listing.Tokens[i]
		resp.Tokens = append(resp.Tokens, TokenResponse{
			ID:            token.ID,
			TokenNumber:   token.TokenNumber,
			OwnerAddress:  token.OwnerAddress,
			OwnerSyncedAt: token.OwnerSyncedAt,
			Listed:        token.Listed,
			ListPrice:     token.ListPrice,
			MintStatus:    string(token.MintStatus),
		})
	}
	return resp
}

// NewPriceHistoryResponses converts stored price history entries
func NewPriceHistoryResponses(entries []schema.PriceHistoryEntry) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, PriceHistoryResponse{
			ID:           e.EntryID,
			ListingID:    e.ListingID,
			BidID:        e.BidID,
			EventType:    string(e.EventType),
			Price:        e.Price,
			Currency:     string(e.Currency),
			ActorAddress: e.ActorAddress,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
