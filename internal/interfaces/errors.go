package interfaces

import "errors"

// Sentinel errors implementations wrap with %w so callers can classify
// gateway failures with errors.Is. They live here, next to the Gateway
// contract, so implementations can reference them without importing
// internal/exchange (whose factory imports the implementations).
// internal/exchange re-exports them under the same names.
var (
	ErrInsufficientFunds = errors.New("exchange: insufficient funds")
	ErrNetwork           = errors.New("exchange: network failure")
	ErrExchange          = errors.New("exchange: order rejected")
)
