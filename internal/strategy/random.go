package strategy

import (
	"math/rand"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/types"
)

// Random picks a uniformly random verdict and ignores the series
// entirely. Baseline only; not for anything that needs determinism.
type Random struct{}

var _ interfaces.Generator = (*Random)(nil)

func NewRandom() *Random { return &Random{} }

var choices = []types.Signal{types.SignalBuy, types.SignalSell, types.SignalHold}

func (r *Random) GenerateSignal(_ []types.Candle) types.Signal {
	return choices[rand.Intn(len(choices))]
}
