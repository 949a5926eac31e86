package exchangeobs

import (
	"context"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/logger"
	"crossover-bot/internal/trace"
	"crossover-bot/internal/types"
)

// observableGateway wraps a Gateway with logging and tracing.
type observableGateway struct {
	gw interfaces.Gateway
}

var _ interfaces.Gateway = (*observableGateway)(nil)

// Wrap wraps a gateway with observability middleware.
func Wrap(gw interfaces.Gateway) interfaces.Gateway {
	return &observableGateway{gw: gw}
}

func (og *observableGateway) Name() string { return og.gw.Name() }

func (og *observableGateway) Candles(ctx context.Context, symbol, timeframe string, limit int) ([]types.Candle, error) {
	ctx, span := trace.StartSpan(ctx, "gateway.Candles")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching candles", "symbol", symbol, "timeframe", timeframe, "limit", limit)

	candles, err := og.gw.Candles(ctx, symbol, timeframe, limit)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch candles", err, "symbol", symbol, "timeframe", timeframe)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Candles fetched", "symbol", symbol, "count", len(candles))
	return candles, nil
}

func (og *observableGateway) PlaceMarketOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	ctx, span := trace.StartSpan(ctx, "gateway.PlaceMarketOrder")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Placing market order",
		"symbol", req.Symbol,
		"side", string(req.Side),
		"qty", req.Qty,
	)

	resp, err := og.gw.PlaceMarketOrder(ctx, req)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to place order", err,
			"symbol", req.Symbol,
			"side", string(req.Side),
			"qty", req.Qty,
		)
		return types.OrderResp{}, err
	}

	logger.InfoSkip(ctx, 1, "Order placed",
		"symbol", req.Symbol,
		"order_id", resp.OrderID,
		"status", resp.Status,
	)
	return resp, nil
}

func (og *observableGateway) Balance(ctx context.Context) (types.Balance, error) {
	ctx, span := trace.StartSpan(ctx, "gateway.Balance")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching balance")

	bal, err := og.gw.Balance(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch balance", err)
		return types.Balance{}, err
	}

	logger.DebugSkip(ctx, 1, "Balance fetched", "currencies", len(bal.Totals))
	return bal, nil
}

func (og *observableGateway) Instruments(ctx context.Context) ([]types.Instrument, error) {
	ctx, span := trace.StartSpan(ctx, "gateway.Instruments")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching instruments")

	instruments, err := og.gw.Instruments(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch instruments", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Instruments fetched", "count", len(instruments))
	return instruments, nil
}
