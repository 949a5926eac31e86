package strategy

import (
	"fmt"

	"crossover-bot/internal/interfaces"
)

const (
	ModelRandom    = "random"
	ModelCrossover = "ma_crossover"
)

// New builds the generator named by model. The crossover windows are
// validated here, at construction; misconfiguration is the one hard
// failure in the system.
func New(model string, shortWindow, longWindow int) (interfaces.Generator, error) {
	switch model {
	case ModelRandom:
		return NewRandom(), nil
	case ModelCrossover, "":
		return NewCrossover(shortWindow, longWindow)
	default:
		return nil, fmt.Errorf("unknown signal model %q", model)
	}
}
