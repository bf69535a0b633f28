package checkout

import (
	"errors"
	"fmt"
)

// ErrCheckoutInFlight is returned when a second checkout is attempted while
// one is still awaiting the payment-session response.
var ErrCheckoutInFlight = errors.New("a checkout is already in progress")

// ValidationError means the input was rejected before any network call; the
// shopper can correct it and retry immediately.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// TransportError means the payment-session endpoint could not be reached
// (or timed out). The cart is untouched, so a retry is safe.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach checkout service: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// CheckoutError means the endpoint responded but declined the request or
// returned no redirect URL. Message carries the server's wording when the
// server supplied one.
type CheckoutError struct {
	Message string
}

func (e *CheckoutError) Error() string { return e.Message }
