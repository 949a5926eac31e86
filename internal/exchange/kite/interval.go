package kite

import (
	"fmt"
	"time"
)

// intervalSpec maps the bot's timeframe notation to the Kite historical
// API interval name and the candle duration.
type intervalSpec struct {
	name string
	step time.Duration
}

var intervals = map[string]intervalSpec{
	"1m":  {"minute", time.Minute},
	"3m":  {"3minute", 3 * time.Minute},
	"5m":  {"5minute", 5 * time.Minute},
	"10m": {"10minute", 10 * time.Minute},
	"15m": {"15minute", 15 * time.Minute},
	"30m": {"30minute", 30 * time.Minute},
	"1h":  {"60minute", time.Hour},
	"1d":  {"day", 24 * time.Hour},
}

func lookupInterval(timeframe string) (intervalSpec, error) {
	spec, ok := intervals[timeframe]
	if !ok {
		return intervalSpec{}, fmt.Errorf("unsupported timeframe %q", timeframe)
	}
	return spec, nil
}
