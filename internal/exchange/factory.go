package exchange

import (
	"os"

	"crossover-bot/internal/exchange/kite"
	"crossover-bot/internal/exchange/sim"
	"crossover-bot/internal/interfaces"
)

// NewGateway selects the gateway for the configured mode. DRY_RUN gets
// the simulated exchange; anything else gets the live Kite client with
// credentials from the environment.
func NewGateway(mode, exchangeName string) interfaces.Gateway {
	if mode == "DRY_RUN" {
		return sim.New(os.Getenv("SIM_FAIL_MODE"))
	}
	return kite.New(kite.Params{
		APIKey:      os.Getenv("KITE_API_KEY"),
		AccessToken: os.Getenv("KITE_ACCESS_TOKEN"),
		Exchange:    exchangeName,
	})
}
