package interfaces

import (
	"context"

	"crossover-bot/internal/types"
)

// Gateway is the exchange boundary: market data retrieval and order
// placement. Implementations translate their native errors into the
// sentinel taxonomy in internal/exchange.
type Gateway interface {
	// Name returns the exchange identifier, used in export filenames.
	Name() string

	// Candles fetches up to limit candles for a symbol, oldest first.
	Candles(ctx context.Context, symbol, timeframe string, limit int) ([]types.Candle, error)

	// PlaceMarketOrder submits a market order and returns the result.
	PlaceMarketOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error)

	// Balance returns per-currency account totals.
	Balance(ctx context.Context) (types.Balance, error)

	// Instruments returns the tradable instruments on the exchange.
	Instruments(ctx context.Context) ([]types.Instrument, error)
}
