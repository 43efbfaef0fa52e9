package dto

import (
	"time"

	"github.com/deedlane/marketplace/internal/bids"
	"github.com/deedlane/marketplace/internal/store/schema"
)

// BidResponse is the public shape of a bid
type BidResponse struct {
	ID           uint64    `json:"id"`
	ListingID    uint64    `json:"listing_id"`
	TokenID      uint64    `json:"token_id"`
	TokenNumber  string    `json:"token_number,omitempty"`
	BidderWallet string    `json:"bidder_wallet"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	TxHash       *string   `json:"tx_hash,omitempty"`
	// CurrentOwner is the live on-chain owner of the target token, null when
	// the lookup was unavailable
	CurrentOwner *string   `json:"current_owner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewBidResponse converts a stored bid
func NewBidResponse(bid *schema.Bid) BidResponse {
	resp := BidResponse{
		ID:           bid.ID,
		ListingID:    bid.ListingID,
		TokenID:      bid.TokenID,
		BidderWallet: bid.BidderWallet,
		Amount:       bid.Amount,
		Currency:     string(bid.Currency),
		Status:       string(bid.Status),
		TxHash:       bid.TxHash,
		CreatedAt:    bid.CreatedAt,
		UpdatedAt:    bid.UpdatedAt,
	}
	if bid.Token != nil {
		resp.TokenNumber = bid.Token.TokenNumber
	}
	return resp
}

// NewAggregatedBidResponses converts an aggregation result
func NewAggregatedBidResponses(aggregated []bids.AggregatedBid) []BidResponse {
	out := make([]BidResponse, 0, len(aggregated))
	for i := range aggregated {
		resp := NewBidResponse(&aggregated[i].Bid)
		resp.CurrentOwner = aggregated[i].CurrentOwner
		out = append(out, resp)
	}
	return out
}
