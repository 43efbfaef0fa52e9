package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidStatusTransitions(t *testing.T) {
	terminal := []BidStatus{BidStatusAccepted, BidStatusRejected, BidStatusWithdrawn, BidStatusOutbid}

	for _, next := range terminal {
		assert.True(t, BidStatusActive.CanTransitionTo(next), "ACTIVE -> %s", next)
	}
	// terminal states admit no edges, including back to ACTIVE
	for _, from := range terminal {
		assert.True(t, from.Terminal())
		assert.False(t, from.CanTransitionTo(BidStatusActive), "%s -> ACTIVE", from)
		for _, next := range terminal {
			assert.False(t, from.CanTransitionTo(next), "%s -> %s", from, next)
		}
	}
	assert.False(t, BidStatusActive.CanTransitionTo(BidStatusActive))
}

func TestMintStatusResettable(t *testing.T) {
	assert.True(t, MintStatusFailed.Resettable())
	assert.True(t, MintStatusNotStarted.Resettable())
	assert.False(t, MintStatusPending.Resettable())
	assert.False(t, MintStatusCompletedToken.Resettable())
	assert.False(t, MintStatusCompletedCollection.Resettable())
}

func TestMintStatusCompleted(t *testing.T) {
	assert.True(t, MintStatusCompletedToken.Completed())
	assert.True(t, MintStatusCompletedCollection.Completed())
	assert.False(t, MintStatusPending.Completed())
	assert.False(t, MintStatusFailed.Completed())
}

func TestIsWalletAddress(t *testing.T) {
	assert.True(t, IsWalletAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
	assert.True(t, IsWalletAddress("4Nd1mYvM8kqGEkTqLXoPXbAmQB1HY8YWXBKYdNDBvkt3"))
	assert.False(t, IsWalletAddress(""))
	assert.False(t, IsWalletAddress("0x123"))
	assert.False(t, IsWalletAddress("not a wallet"))
}

func TestNormalizeAddress(t *testing.T) {
	// EVM addresses get EIP-55 casing
	assert.Equal(t,
		"0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		NormalizeAddress("0x8ba1f109551bd432803012645ac136ddd64dba72"))
	// non-EVM addresses pass through
	solana := "4Nd1mYvM8kqGEkTqLXoPXbAmQB1HY8YWXBKYdNDBvkt3"
	assert.Equal(t, solana, NormalizeAddress(solana))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		"0x8BA1F109551BD432803012645AC136DDD64DBA72"))
	assert.False(t, SameAddress("", ""))
	assert.False(t, SameAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72", ""))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency(CurrencyETH))
	assert.True(t, IsValidCurrency(CurrencyUSDC))
	assert.False(t, IsValidCurrency(Currency("DOGE")))
}
