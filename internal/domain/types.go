package domain

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// BidStatus represents the lifecycle state of a bid
type BidStatus string

const (
	BidStatusActive    BidStatus = "ACTIVE"
	BidStatusAccepted  BidStatus = "ACCEPTED"
	BidStatusRejected  BidStatus = "REJECTED"
	BidStatusWithdrawn BidStatus = "WITHDRAWN"
	BidStatusOutbid    BidStatus = "OUTBID"
)

// Terminal reports whether the status admits no further transitions
func (s BidStatus) Terminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected ||
		s == BidStatusWithdrawn || s == BidStatusOutbid
}

// CanTransitionTo reports whether the edge s -> next is part of the bid state machine.
// The only legal edges are ACTIVE -> {ACCEPTED, REJECTED, WITHDRAWN, OUTBID}.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	if s != BidStatusActive {
		return false
	}
	return next.Terminal()
}

// IsValidBidStatus checks if a bid status is valid
func IsValidBidStatus(s BidStatus) bool {
	return s == BidStatusActive || s.Terminal()
}

// ListingStatus represents the publication state of a listing
type ListingStatus string

const (
	ListingStatusDraft    ListingStatus = "DRAFT"
	ListingStatusPending  ListingStatus = "PENDING"
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusRejected ListingStatus = "REJECTED"
	ListingStatusDelisted ListingStatus = "DELISTED"
)

// IsValidListingStatus checks if a listing status is valid
func IsValidListingStatus(s ListingStatus) bool {
	return s == ListingStatusDraft || s == ListingStatusPending ||
		s == ListingStatusActive || s == ListingStatusRejected ||
		s == ListingStatusDelisted
}

// MintStatus represents the progress of a listing's on-chain creation
type MintStatus string

const (
	MintStatusNotStarted          MintStatus = "NOT_STARTED"
	MintStatusPending             MintStatus = "PENDING"
	MintStatusCompletedToken      MintStatus = "COMPLETED_TOKEN"
	MintStatusCompletedCollection MintStatus = "COMPLETED_COLLECTION"
	MintStatusFailed              MintStatus = "FAILED"
)

// Completed reports whether the mint finished successfully
func (s MintStatus) Completed() bool {
	return s == MintStatusCompletedToken || s == MintStatusCompletedCollection
}

// Resettable reports whether a single-listing reset to NOT_STARTED is permitted.
// An in-flight (PENDING) or completed mint must never be clobbered by a reset.
func (s MintStatus) Resettable() bool {
	return s == MintStatusFailed || s == MintStatusNotStarted
}

// PriceEventType represents the type of a price-history entry
type PriceEventType string

const (
	PriceEventSale           PriceEventType = "SALE"
	PriceEventBidAccepted    PriceEventType = "BID_ACCEPTED"
	PriceEventBidRejected    PriceEventType = "BID_REJECTED"
	PriceEventFloorUpdate    PriceEventType = "FLOOR_UPDATE"
	PriceEventListingCreated PriceEventType = "LISTING_CREATED"
	PriceEventMintCompleted  PriceEventType = "MINT_COMPLETED"
)

// BidRole tags which side of a bid a wallet is on in an aggregation result
type BidRole string

const (
	BidRoleBidder BidRole = "bidder"
	BidRoleOwner  BidRole = "owner"
)

// Currency is the denomination of a price or bid amount
type Currency string

const (
	CurrencyETH  Currency = "ETH"
	CurrencyUSDC Currency = "USDC"
)

// IsValidCurrency checks if a currency is supported
func IsValidCurrency(c Currency) bool {
	return c == CurrencyETH || c == CurrencyUSDC
}

// solanaAddressPattern matches base58-encoded Solana public keys
var solanaAddressPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsEVMAddress reports whether the address is a hex-encoded EVM address
func IsEVMAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsWalletAddress reports whether the address is a supported wallet address
// (EVM hex or Solana base58)
func IsWalletAddress(address string) bool {
	return IsEVMAddress(address) || solanaAddressPattern.MatchString(address)
}

// NormalizeAddress normalizes an address to its canonical form.
// EVM addresses get EIP-55 checksum casing; other addresses pass through unchanged.
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).String()
	}
	return address
}

// SameAddress compares two wallet addresses case-insensitively.
// On-chain owner reads and persisted bidder wallets may differ only in hex casing.
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
