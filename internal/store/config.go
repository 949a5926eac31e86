package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mode      string `yaml:"mode"`      // DRY_RUN or LIVE
	Exchange  string `yaml:"exchange"`  // exchange segment, e.g. NSE
	Timeframe string `yaml:"timeframe"` // candle timeframe, e.g. 1h
	DataDir   string `yaml:"data_dir"`  // CSV export directory

	Strategy struct {
		Model       string `yaml:"model"` // random or ma_crossover
		ShortWindow int    `yaml:"short_window"`
		LongWindow  int    `yaml:"long_window"`
	} `yaml:"strategy"`

	Trade struct {
		DefaultQty float64 `yaml:"default_qty"`
		OrderTag   string  `yaml:"order_tag"`
	} `yaml:"trade"`
}

func (c *Config) Validate() error {
	if c.Mode != "DRY_RUN" && c.Mode != "LIVE" {
		return fmt.Errorf("invalid mode '%s': must be 'DRY_RUN' or 'LIVE'", c.Mode)
	}
	if c.Strategy.Model != "random" && c.Strategy.Model != "ma_crossover" {
		return fmt.Errorf("invalid strategy model '%s': must be 'random' or 'ma_crossover'", c.Strategy.Model)
	}
	if c.Strategy.Model == "ma_crossover" {
		if c.Strategy.ShortWindow <= 0 || c.Strategy.LongWindow <= 0 {
			return fmt.Errorf("strategy windows must be positive, got short=%d long=%d",
				c.Strategy.ShortWindow, c.Strategy.LongWindow)
		}
		if c.Strategy.ShortWindow >= c.Strategy.LongWindow {
			return fmt.Errorf("strategy.short_window (%d) must be less than strategy.long_window (%d)",
				c.Strategy.ShortWindow, c.Strategy.LongWindow)
		}
	}
	if c.Trade.DefaultQty < 0 {
		return fmt.Errorf("trade.default_qty must not be negative, got %.2f", c.Trade.DefaultQty)
	}
	return nil
}

// LoadConfig reads the yaml config at path. A missing file is not an
// error, the defaults alone form a valid dry-run configuration.
func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	if c.Mode == "" {
		c.Mode = "DRY_RUN"
	}
	if c.Exchange == "" {
		c.Exchange = "NSE"
	}
	if c.Timeframe == "" {
		c.Timeframe = "1h"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Strategy.Model == "" {
		c.Strategy.Model = "ma_crossover"
	}
	if c.Strategy.ShortWindow == 0 {
		c.Strategy.ShortWindow = 5
	}
	if c.Strategy.LongWindow == 0 {
		c.Strategy.LongWindow = 10
	}
	if c.Trade.DefaultQty == 0 {
		c.Trade.DefaultQty = 1
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
