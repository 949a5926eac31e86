package kite

import (
	"context"
	"fmt"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/types"
)

// Params configures the live gateway.
type Params struct {
	APIKey      string
	AccessToken string
	Exchange    string // e.g. "NSE"
}

// Gateway talks to the Kite Connect REST API.
type Gateway struct {
	kc       *kiteconnect.Client
	exchange string
	mapper   *instrumentMapper
}

var _ interfaces.Gateway = (*Gateway)(nil)

func New(p Params) *Gateway {
	kc := kiteconnect.New(p.APIKey)
	kc.SetAccessToken(p.AccessToken)

	exch := p.Exchange
	if exch == "" {
		exch = kiteconnect.ExchangeNSE
	}

	return &Gateway{
		kc:       kc,
		exchange: exch,
		mapper:   newInstrumentMapper(),
	}
}

func (g *Gateway) Name() string { return "kite" }

// Candles fetches the last limit candles for a symbol. The historical
// API is date-range based, so the range is oversized to cover market
// closures and the tail is sliced off.
func (g *Gateway) Candles(ctx context.Context, symbol, timeframe string, limit int) ([]types.Candle, error) {
	spec, err := lookupInterval(timeframe)
	if err != nil {
		return nil, err
	}

	token, err := g.resolveToken(ctx, symbol)
	if err != nil {
		return nil, err
	}

	to := time.Now()
	// 4x the nominal span absorbs weekends and trading holidays.
	from := to.Add(-time.Duration(limit) * spec.step * 4)

	data, err := g.kc.GetHistoricalData(int(token), spec.name, from, to, false, false)
	if err != nil {
		return nil, translateErr("fetch candles", err)
	}

	candles := make([]types.Candle, 0, len(data))
	for _, d := range data {
		candles = append(candles, types.Candle{
			Ts:    d.Date.Unix(),
			Open:  d.Open,
			High:  d.High,
			Low:   d.Low,
			Close: d.Close,
			Vol:   float64(d.Volume),
		})
	}
	if len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

func (g *Gateway) PlaceMarketOrder(ctx context.Context, req types.OrderReq) (types.OrderResp, error) {
	var txnType string
	switch req.Side {
	case types.SignalBuy:
		txnType = kiteconnect.TransactionTypeBuy
	case types.SignalSell:
		txnType = kiteconnect.TransactionTypeSell
	default:
		return types.OrderResp{}, fmt.Errorf("unsupported order side %q", req.Side)
	}

	resp, err := g.kc.PlaceOrder(kiteconnect.VarietyRegular, kiteconnect.OrderParams{
		Exchange:        g.exchange,
		Tradingsymbol:   req.Symbol,
		TransactionType: txnType,
		OrderType:       kiteconnect.OrderTypeMarket,
		Product:         kiteconnect.ProductCNC,
		Validity:        kiteconnect.ValidityDay,
		Quantity:        int(req.Qty),
		Tag:             req.Tag,
	})
	if err != nil {
		return types.OrderResp{}, translateErr("place order", err)
	}

	return types.OrderResp{
		OrderID: resp.OrderID,
		Status:  "PLACED",
		Symbol:  req.Symbol,
		Side:    string(req.Side),
		Qty:     req.Qty,
		Message: "ok",
	}, nil
}

func (g *Gateway) Balance(ctx context.Context) (types.Balance, error) {
	margins, err := g.kc.GetUserMargins()
	if err != nil {
		return types.Balance{}, translateErr("fetch balance", err)
	}

	totals := map[string]float64{}
	if margins.Equity.Enabled {
		totals["equity"] = margins.Equity.Net
	}
	if margins.Commodity.Enabled {
		totals["commodity"] = margins.Commodity.Net
	}
	return types.Balance{Totals: totals}, nil
}

func (g *Gateway) Instruments(ctx context.Context) ([]types.Instrument, error) {
	dump, err := g.kc.GetInstrumentsByExchange(g.exchange)
	if err != nil {
		return nil, translateErr("fetch instruments", err)
	}

	out := make([]types.Instrument, 0, len(dump))
	for _, in := range dump {
		out = append(out, types.Instrument{
			Token:    uint32(in.InstrumentToken),
			Symbol:   in.Tradingsymbol,
			Name:     in.Name,
			Exchange: in.Exchange,
			Segment:  in.Segment,
			Active:   true,
		})
	}
	return out, nil
}

// resolveToken maps a trading symbol to its instrument token, loading
// the instrument dump on first use.
func (g *Gateway) resolveToken(ctx context.Context, symbol string) (uint32, error) {
	if token, ok := g.mapper.getToken(symbol); ok {
		return token, nil
	}

	if g.mapper.size() == 0 {
		instruments, err := g.Instruments(ctx)
		if err != nil {
			return 0, err
		}
		for _, in := range instruments {
			g.mapper.addMapping(in.Symbol, in.Token)
		}
	}

	token, ok := g.mapper.getToken(symbol)
	if !ok {
		return 0, fmt.Errorf("unknown symbol %q on %s", symbol, g.exchange)
	}
	return token, nil
}
