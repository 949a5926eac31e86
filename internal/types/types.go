package types

// Candle is one OHLCV observation. A price series is []Candle ordered
// oldest to newest; the order defines "previous" vs "current".
type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// Signal is the discrete verdict produced per evaluation.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Valid reports whether s is one of the three known verdicts.
func (s Signal) Valid() bool {
	return s == SignalBuy || s == SignalSell || s == SignalHold
}

type OrderReq struct {
	Symbol string
	Side   Signal
	Qty    float64
	Tag    string
}

// OrderResp is the gateway's order result, passed through unmodified.
type OrderResp struct {
	OrderID string  `json:"order_id"`
	Status  string  `json:"status"`
	Symbol  string  `json:"symbol"`
	Side    string  `json:"side"`
	Qty     float64 `json:"qty"`
	Message string  `json:"message,omitempty"`
}

// Failure classifies why a trade call produced no order.
type Failure string

const (
	FailureNone              Failure = ""
	FailureNoGateway         Failure = "NO_GATEWAY"
	FailureInvalidSignal     Failure = "INVALID_SIGNAL"
	FailureInsufficientFunds Failure = "INSUFFICIENT_FUNDS"
	FailureNetwork           Failure = "NETWORK"
	FailureExchange          Failure = "EXCHANGE"
	FailureUnknown           Failure = "UNKNOWN"
)

// TradeResult is the outcome of a single ExecuteTrade call. Order is nil
// unless the gateway accepted an order; Failure says why it is nil, with
// FailureNone covering both success and the expected HOLD no-op. Err
// carries the underlying gateway error for the classified failures.
type TradeResult struct {
	Order   *OrderResp `json:"order,omitempty"`
	Failure Failure    `json:"failure,omitempty"`
	Err     error      `json:"-"`
}

// Executed reports whether an order was accepted by the gateway.
func (r TradeResult) Executed() bool { return r.Order != nil }

// Balance is a per-currency account total.
type Balance struct {
	Totals map[string]float64
}

// Instrument is market metadata for one tradable symbol.
type Instrument struct {
	Token    uint32
	Symbol   string
	Name     string
	Exchange string
	Segment  string
	Active   bool
}
