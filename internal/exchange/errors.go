package exchange

import "crossover-bot/internal/interfaces"

// Sentinel errors implementations wrap with %w so callers can classify
// gateway failures with errors.Is. Anything that matches none of these
// is treated as unknown. The values are defined in internal/interfaces
// (so implementations can use them without importing this package) and
// re-exported here under their original names.
var (
	ErrInsufficientFunds = interfaces.ErrInsufficientFunds
	ErrNetwork           = interfaces.ErrNetwork
	ErrExchange          = interfaces.ErrExchange
)
