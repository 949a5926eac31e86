package interfaces

import "crossover-bot/internal/types"

// Generator turns a price series into a verdict. Implementations are
// total: malformed or insufficient input yields HOLD, never an error.
type Generator interface {
	GenerateSignal(series []types.Candle) types.Signal
}
