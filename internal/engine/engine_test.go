package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossover-bot/internal/exchange"
	"crossover-bot/internal/types"
)

// fakeGateway records order placements and returns a scripted outcome.
type fakeGateway struct {
	placed   []types.OrderReq
	orderErr error
}

func (f *fakeGateway) Name() string { return "fake" }

func (f *fakeGateway) Candles(_ context.Context, _, _ string, _ int) ([]types.Candle, error) {
	return nil, nil
}

func (f *fakeGateway) PlaceMarketOrder(_ context.Context, req types.OrderReq) (types.OrderResp, error) {
	f.placed = append(f.placed, req)
	if f.orderErr != nil {
		return types.OrderResp{}, f.orderErr
	}
	return types.OrderResp{
		OrderID: "ORD-1",
		Status:  "PLACED",
		Symbol:  req.Symbol,
		Side:    string(req.Side),
		Qty:     req.Qty,
	}, nil
}

func (f *fakeGateway) Balance(_ context.Context) (types.Balance, error) {
	return types.Balance{}, nil
}

func (f *fakeGateway) Instruments(_ context.Context) ([]types.Instrument, error) {
	return nil, nil
}

func TestExecuteTradeBuy(t *testing.T) {
	gw := &fakeGateway{}
	eng := New(gw, map[string]string{"order_tag": "bot"})

	res := eng.ExecuteTrade(context.Background(), "RELIANCE", types.SignalBuy, 2)

	require.True(t, res.Executed())
	assert.Equal(t, types.FailureNone, res.Failure)
	assert.NoError(t, res.Err)
	assert.Equal(t, "ORD-1", res.Order.OrderID)
	assert.Equal(t, "BUY", res.Order.Side)
	assert.Equal(t, 2.0, res.Order.Qty)

	require.Len(t, gw.placed, 1)
	assert.Equal(t, "RELIANCE", gw.placed[0].Symbol)
	assert.Equal(t, types.SignalBuy, gw.placed[0].Side)
	assert.Equal(t, "bot", gw.placed[0].Tag)
}

func TestExecuteTradeSell(t *testing.T) {
	gw := &fakeGateway{}
	eng := New(gw, nil)

	res := eng.ExecuteTrade(context.Background(), "TCS", types.SignalSell, 1)

	require.True(t, res.Executed())
	assert.Equal(t, "SELL", res.Order.Side)
	require.Len(t, gw.placed, 1)
	assert.Equal(t, types.SignalSell, gw.placed[0].Side)
}

func TestExecuteTradeHoldIsNoOp(t *testing.T) {
	gw := &fakeGateway{}
	eng := New(gw, nil)

	res := eng.ExecuteTrade(context.Background(), "RELIANCE", types.SignalHold, 1)

	assert.False(t, res.Executed())
	assert.Nil(t, res.Order)
	assert.Equal(t, types.FailureNone, res.Failure)
	assert.NoError(t, res.Err)
	assert.Empty(t, gw.placed, "HOLD must never reach the gateway")
}

func TestExecuteTradeInvalidSignal(t *testing.T) {
	gw := &fakeGateway{}
	eng := New(gw, nil)

	for _, sig := range []types.Signal{"WAIT", "buy", ""} {
		res := eng.ExecuteTrade(context.Background(), "RELIANCE", sig, 1)
		assert.False(t, res.Executed())
		assert.Equal(t, types.FailureInvalidSignal, res.Failure)
	}
	assert.Empty(t, gw.placed)
}

func TestExecuteTradeNilGateway(t *testing.T) {
	eng := New(nil, nil)

	res := eng.ExecuteTrade(context.Background(), "RELIANCE", types.SignalBuy, 1)

	assert.False(t, res.Executed())
	assert.Equal(t, types.FailureNoGateway, res.Failure)
}

func TestExecuteTradeFailureClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want types.Failure
	}{
		{"insufficient funds", fmt.Errorf("order: %w", exchange.ErrInsufficientFunds), types.FailureInsufficientFunds},
		{"network", fmt.Errorf("order: %w", exchange.ErrNetwork), types.FailureNetwork},
		{"exchange rejection", fmt.Errorf("order: %w", exchange.ErrExchange), types.FailureExchange},
		{"unclassified", errors.New("something odd"), types.FailureUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{orderErr: tc.err}
			eng := New(gw, nil)

			res := eng.ExecuteTrade(context.Background(), "RELIANCE", types.SignalBuy, 1)

			assert.False(t, res.Executed(), "failed attempt must not report an order")
			assert.Equal(t, tc.want, res.Failure)
			assert.ErrorIs(t, res.Err, tc.err)
			assert.Len(t, gw.placed, 1, "single attempt, no retry")
		})
	}
}
