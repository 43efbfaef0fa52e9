package domain

import "errors"

var (
	// ErrBidNotFound is returned when a bid is not found
	ErrBidNotFound = errors.New("bid not found")

	// ErrListingNotFound is returned when a listing is not found
	ErrListingNotFound = errors.New("listing not found")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidState is returned when a state-machine precondition is violated,
	// e.g. accepting a bid that is no longer ACTIVE or resetting an in-flight mint
	ErrInvalidState = errors.New("invalid state transition")

	// ErrUnauthorized is returned when the acting wallet does not own the
	// resource it is operating on
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamUnavailable is returned when the blockchain RPC or the store
	// cannot be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
