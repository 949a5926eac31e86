package strategy

import (
	"fmt"
	"math"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/ta"
	"crossover-bot/internal/types"
)

// Crossover detects fresh crossings of a short moving average over a
// long one. It trades only at the crossing candle: an ordering that was
// already established on the previous step yields HOLD.
type Crossover struct {
	short int
	long  int
}

var _ interfaces.Generator = (*Crossover)(nil)

// NewCrossover builds a crossover generator. The windows are fixed for
// the generator's lifetime; short must be a positive integer strictly
// below long.
func NewCrossover(short, long int) (*Crossover, error) {
	if short <= 0 || long <= 0 {
		return nil, fmt.Errorf("windows must be positive, got short=%d long=%d", short, long)
	}
	if short >= long {
		return nil, fmt.Errorf("short_window (%d) must be less than long_window (%d)", short, long)
	}
	return &Crossover{short: short, long: long}, nil
}

// Windows returns the configured short and long window sizes.
func (c *Crossover) Windows() (short, long int) { return c.short, c.long }

// GenerateSignal evaluates the series and returns BUY on a bullish
// crossing, SELL on a bearish one, HOLD otherwise. The series is never
// mutated. All degenerate inputs collapse to HOLD.
func (c *Crossover) GenerateSignal(series []types.Candle) types.Signal {
	if len(series) == 0 {
		return types.SignalHold
	}
	if len(series) < c.long {
		return types.SignalHold
	}

	closes := make([]float64, len(series))
	for i, cd := range series {
		closes[i] = cd.Close
	}

	smaShort := ta.RollingSMA(closes, c.short)
	smaLong := ta.RollingSMA(closes, c.long)

	// Need at least two defined trailing values in both series.
	if ta.CountNaN(smaShort) >= len(smaShort)-1 || ta.CountNaN(smaLong) >= len(smaLong)-1 {
		return types.SignalHold
	}

	cs, ps := smaShort[len(smaShort)-1], smaShort[len(smaShort)-2]
	cl, pl := smaLong[len(smaLong)-1], smaLong[len(smaLong)-2]
	if math.IsNaN(cs) || math.IsNaN(ps) || math.IsNaN(cl) || math.IsNaN(pl) {
		return types.SignalHold
	}

	switch {
	case cs > cl && ps <= pl:
		return types.SignalBuy
	case cs < cl && ps >= pl:
		return types.SignalSell
	}
	return types.SignalHold
}
