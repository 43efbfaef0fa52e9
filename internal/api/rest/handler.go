package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deedlane/marketplace/internal/api/middleware"
	"github.com/deedlane/marketplace/internal/api/rest/dto"
	"github.com/deedlane/marketplace/internal/bids"
	"github.com/deedlane/marketplace/internal/domain"
	"github.com/deedlane/marketplace/internal/minting"
	"github.com/deedlane/marketplace/internal/store"
)

// Handler serves the marketplace HTTP API
type Handler struct {
	store   store.Store
	bids    *bids.Service
	tracker *minting.Tracker
}

func NewHandler(st store.Store, bidService *bids.Service, tracker *minting.Tracker) *Handler {
	return &Handler{
		store:   st,
		bids:    bidService,
		tracker: tracker,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// callerWallet resolves which wallet a bid query is about. Non-admin callers
// may only query their own wallet.
func callerWallet(c *gin.Context) (string, bool) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		return "", false
	}

	address := c.Query("address")
	if address == "" {
		return auth.Wallet, auth.Wallet != ""
	}
	if !auth.Admin && !domain.SameAddress(address, auth.Wallet) {
		return "", false
	}
	return domain.NormalizeAddress(address), true
}

func (h *Handler) listBids(c *gin.Context) {
	role, err := parseBidRole(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	wallet, ok := callerWallet(c)
	if !ok {
		respondForbidden(c, "cannot query bids for another wallet")
		return
	}

	var aggregated []bids.AggregatedBid
	switch role {
	case roleSent:
		aggregated, err = h.bids.BidsSent(c.Request.Context(), wallet)
	case roleReceived:
		aggregated, err = h.bids.BidsReceived(c.Request.Context(), wallet, false)
	case roleReceivedActive:
		aggregated, err = h.bids.BidsReceived(c.Request.Context(), wallet, true)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": dto.NewAggregatedBidResponses(aggregated)})
}

type acceptBidRequest struct {
	TxHash *string `json:"tx_hash"`
}

func (h *Handler) acceptBid(c *gin.Context) {
	bidID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req acceptBidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	auth, ok := middleware.GetAuthContext(c)
	if !ok || auth.Wallet == "" {
		respondForbidden(c, "wallet authentication required")
		return
	}

	bid, err := h.bids.Accept(c.Request.Context(), bidID, auth.Wallet, req.TxHash)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bid": dto.NewBidResponse(bid)})
}

func (h *Handler) rejectBid(c *gin.Context) {
	bidID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	auth, ok := middleware.GetAuthContext(c)
	if !ok || auth.Wallet == "" {
		respondForbidden(c, "wallet authentication required")
		return
	}

	bid, err := h.bids.Reject(c.Request.Context(), bidID, auth.Wallet)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bid": dto.NewBidResponse(bid)})
}

func (h *Handler) withdrawBid(c *gin.Context) {
	bidID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	auth, ok := middleware.GetAuthContext(c)
	if !ok || auth.Wallet == "" {
		respondForbidden(c, "wallet authentication required")
		return
	}

	bid, err := h.bids.Withdraw(c.Request.Context(), bidID, auth.Wallet)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bid": dto.NewBidResponse(bid)})
}

func (h *Handler) getListing(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	listing, err := h.store.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if listing == nil {
		respondNotFound(c, "listing not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": dto.NewListingResponse(listing)})
}

func (h *Handler) listListings(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	status, err := parseListingStatus(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	ownerID, err := parseOwnerID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	listings, err := h.store.ListListings(c.Request.Context(), store.ListingFilter{
		Status:  status,
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, dto.NewListingResponse(&listings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"listings": out})
}

func (h *Handler) getPriceHistory(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	listing, err := h.store.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if listing == nil {
		respondNotFound(c, "listing not found")
		return
	}

	entries, err := h.store.GetPriceHistory(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"price_history": dto.NewPriceHistoryResponses(entries)})
}

type resetMintStatusRequest struct {
	ListingID uint64 `json:"listing_id" binding:"required"`
}

func (h *Handler) resetMintStatus(c *gin.Context) {
	var req resetMintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "listing_id is required")
		return
	}

	if err := h.tracker.Reset(c.Request.Context(), req.ListingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing_id": req.ListingID, "mint_status": domain.MintStatusNotStarted})
}

type bulkResetMintStatusRequest struct {
	ListingIDs []uint64 `json:"listing_ids"`
}

func (h *Handler) bulkResetMintStatus(c *gin.Context) {
	var req bulkResetMintStatusRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	affected, err := h.tracker.BulkReset(c.Request.Context(), req.ListingIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"affected": affected})
}
