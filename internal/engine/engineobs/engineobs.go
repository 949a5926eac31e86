package engineobs

import (
	"context"
	"time"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/logger"
	"crossover-bot/internal/trace"
	"crossover-bot/internal/types"
)

// observableTrader wraps a Trader with logging and tracing so the
// engine core stays free of log side effects.
type observableTrader struct {
	trader interfaces.Trader
}

var _ interfaces.Trader = (*observableTrader)(nil)

func Wrap(t interfaces.Trader) interfaces.Trader {
	return &observableTrader{trader: t}
}

func (ot *observableTrader) ExecuteTrade(ctx context.Context, symbol string, signal types.Signal, qty float64) types.TradeResult {
	ctx, span := trace.StartSpan(ctx, "engine.ExecuteTrade")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Executing trade",
		"symbol", symbol,
		"signal", string(signal),
		"qty", qty,
	)

	result := ot.trader.ExecuteTrade(ctx, symbol, signal, qty)
	elapsed := time.Since(start).Milliseconds()

	switch {
	case result.Executed():
		logger.InfoSkip(ctx, 1, "Order placed",
			"symbol", symbol,
			"side", result.Order.Side,
			"qty", result.Order.Qty,
			"order_id", result.Order.OrderID,
			"status", result.Order.Status,
			"duration_ms", elapsed,
		)
	case result.Failure == types.FailureNone:
		logger.InfoSkip(ctx, 1, "Signal is HOLD, no action taken",
			"symbol", symbol,
			"duration_ms", elapsed,
		)
	case result.Err != nil:
		logger.ErrorWithErrSkip(ctx, 1, "Trade not executed", result.Err,
			"symbol", symbol,
			"signal", string(signal),
			"qty", qty,
			"failure", string(result.Failure),
			"duration_ms", elapsed,
		)
	default:
		logger.WarnSkip(ctx, 1, "Trade rejected before dispatch",
			"symbol", symbol,
			"signal", string(signal),
			"failure", string(result.Failure),
			"duration_ms", elapsed,
		)
	}

	return result
}
