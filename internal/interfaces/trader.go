package interfaces

import (
	"context"

	"crossover-bot/internal/types"
)

// Trader dispatches a verdict to the exchange. ExecuteTrade is total:
// every failure path is absorbed into the returned TradeResult.
type Trader interface {
	ExecuteTrade(ctx context.Context, symbol string, signal types.Signal, qty float64) types.TradeResult
}
