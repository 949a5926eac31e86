package engine

import (
	"context"
	"errors"

	"crossover-bot/internal/exchange"
	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/types"
)

// Engine turns a verdict into an order placement against the gateway.
// It holds no state between calls beyond the gateway reference and a
// read-only config map, and it never logs: wrap it with engineobs.Wrap
// for that.
type Engine struct {
	gw     interfaces.Gateway
	config map[string]string
}

var _ interfaces.Trader = (*Engine)(nil)

func New(gw interfaces.Gateway, config map[string]string) *Engine {
	if config == nil {
		config = map[string]string{}
	}
	return &Engine{gw: gw, config: config}
}

// ExecuteTrade dispatches one verdict. It is total: every failure path
// is absorbed into the returned TradeResult, and a single failed
// attempt is final. HOLD is the expected no-op and produces a nil
// order with no failure.
func (e *Engine) ExecuteTrade(ctx context.Context, symbol string, signal types.Signal, qty float64) types.TradeResult {
	if e.gw == nil {
		return types.TradeResult{Failure: types.FailureNoGateway}
	}

	switch signal {
	case types.SignalBuy, types.SignalSell:
	case types.SignalHold:
		return types.TradeResult{}
	default:
		return types.TradeResult{Failure: types.FailureInvalidSignal}
	}

	resp, err := e.gw.PlaceMarketOrder(ctx, types.OrderReq{
		Symbol: symbol,
		Side:   signal,
		Qty:    qty,
		Tag:    e.config["order_tag"],
	})
	if err != nil {
		return types.TradeResult{Failure: classify(err), Err: err}
	}

	// Success: the gateway's result passes through unmodified.
	return types.TradeResult{Order: &resp}
}

// classify maps a gateway error onto the failure taxonomy. Every
// category is handled identically by callers; the distinction exists
// for the log record.
func classify(err error) types.Failure {
	switch {
	case errors.Is(err, exchange.ErrInsufficientFunds):
		return types.FailureInsufficientFunds
	case errors.Is(err, exchange.ErrNetwork):
		return types.FailureNetwork
	case errors.Is(err, exchange.ErrExchange):
		return types.FailureExchange
	}
	return types.FailureUnknown
}
