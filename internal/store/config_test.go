package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "DRY_RUN", cfg.Mode)
	assert.Equal(t, "NSE", cfg.Exchange)
	assert.Equal(t, "1h", cfg.Timeframe)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "ma_crossover", cfg.Strategy.Model)
	assert.Equal(t, 5, cfg.Strategy.ShortWindow)
	assert.Equal(t, 10, cfg.Strategy.LongWindow)
	assert.Equal(t, 1.0, cfg.Trade.DefaultQty)
}

func TestLoadConfigOverrides(t *testing.T) {
	p := writeConfig(t, `
mode: LIVE
timeframe: 1d
strategy:
  model: ma_crossover
  short_window: 9
  long_window: 21
trade:
  default_qty: 3
  order_tag: nightly
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, "LIVE", cfg.Mode)
	assert.Equal(t, "1d", cfg.Timeframe)
	assert.Equal(t, 9, cfg.Strategy.ShortWindow)
	assert.Equal(t, 21, cfg.Strategy.LongWindow)
	assert.Equal(t, 3.0, cfg.Trade.DefaultQty)
	assert.Equal(t, "nightly", cfg.Trade.OrderTag)
	// Untouched keys still get defaults.
	assert.Equal(t, "NSE", cfg.Exchange)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	p := writeConfig(t, "mode: [broken")
	_, err := LoadConfig(p)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad mode", func(c *Config) { c.Mode = "PAPER" }, "invalid mode"},
		{"bad model", func(c *Config) { c.Strategy.Model = "sentiment" }, "invalid strategy model"},
		{"zero window", func(c *Config) { c.Strategy.ShortWindow = 0 }, "must be positive"},
		{"inverted windows", func(c *Config) { c.Strategy.ShortWindow = 21; c.Strategy.LongWindow = 9 }, "must be less than"},
		{"negative qty", func(c *Config) { c.Trade.DefaultQty = -1 }, "must not be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
			require.NoError(t, err)

			tc.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateRandomModelSkipsWindows(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.Strategy.Model = "random"
	cfg.Strategy.ShortWindow = 0
	cfg.Strategy.LongWindow = 0
	assert.NoError(t, cfg.Validate())
}
