package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/types"
)

// Gateway is the dry-run exchange: random-walk candles, simulated order
// IDs, nothing leaves the process. FailMode forces one of the
// classified failures on order placement, for exercising the engine's
// failure paths by hand.
type Gateway struct {
	FailMode string // "", "funds", "network", "exchange"
}

var _ interfaces.Gateway = (*Gateway)(nil)

func New(failMode string) *Gateway { return &Gateway{FailMode: failMode} }

func (g *Gateway) Name() string { return "sim" }

func (g *Gateway) Candles(ctx context.Context, symbol, timeframe string, limit int) ([]types.Candle, error) {
	step := int64(60)
	if timeframe == "1h" {
		step = 3600
	} else if timeframe == "1d" {
		step = 86400
	}

	cs := make([]types.Candle, 0, limit)
	base := 1000.0
	now := time.Now().Unix()
	for i := limit; i > 0; i-- {
		c := base + float64(i) + (rand.Float64()-0.5)*5
		h := c + rand.Float64()*3
		l := c - rand.Float64()*3
		cs = append(cs, types.Candle{
			Ts:    now - int64(i)*step,
			Open:  c - 0.5,
			High:  h,
			Low:   l,
			Close: c,
			Vol:   rand.Float64() * 1000,
		})
	}
	return cs, nil
}

func (g *Gateway) PlaceMarketOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	switch g.FailMode {
	case "funds":
		return types.OrderResp{}, fmt.Errorf("simulated: %w", interfaces.ErrInsufficientFunds)
	case "network":
		return types.OrderResp{}, fmt.Errorf("simulated: %w", interfaces.ErrNetwork)
	case "exchange":
		return types.OrderResp{}, fmt.Errorf("simulated: %w", interfaces.ErrExchange)
	}

	return types.OrderResp{
		OrderID: fmt.Sprintf("SIM-%d", time.Now().UnixNano()),
		Status:  "SIMULATED",
		Symbol:  req.Symbol,
		Side:    string(req.Side),
		Qty:     req.Qty,
		Message: "dry-run",
	}, nil
}

func (g *Gateway) Balance(ctx context.Context) (types.Balance, error) {
	return types.Balance{Totals: map[string]float64{"equity": 100000}}, nil
}

func (g *Gateway) Instruments(ctx context.Context) ([]types.Instrument, error) {
	return []types.Instrument{
		{Token: 1, Symbol: "RELIANCE", Name: "Reliance Industries", Exchange: "SIM", Segment: "SIM", Active: true},
		{Token: 2, Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: "SIM", Segment: "SIM", Active: true},
	}, nil
}
