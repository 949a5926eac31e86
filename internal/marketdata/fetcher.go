package marketdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"crossover-bot/internal/interfaces"
	"crossover-bot/internal/types"
)

// Fetcher retrieves historical candles through the gateway and can
// persist them as CSV for offline analysis.
type Fetcher struct {
	gw interfaces.Gateway
}

func NewFetcher(gw interfaces.Gateway) *Fetcher {
	return &Fetcher{gw: gw}
}

// Fetch returns up to limit candles for a symbol, oldest first. An
// empty result is not an error; callers fall back to HOLD.
func (f *Fetcher) Fetch(ctx context.Context, symbol, timeframe string, limit int) ([]types.Candle, error) {
	if f.gw == nil {
		return nil, fmt.Errorf("marketdata: gateway not initialized")
	}
	return f.gw.Candles(ctx, symbol, timeframe, limit)
}

// candleRow is the CSV schema for one candle.
type candleRow struct {
	Timestamp string  `csv:"timestamp"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    float64 `csv:"volume"`
}

// FetchAndExport fetches candles and writes them to
// <outDir>/<exchange>_<symbol>_<timeframe>.csv. An empty outDir skips
// the export. Returns the candles and the path written, if any.
func (f *Fetcher) FetchAndExport(ctx context.Context, symbol, timeframe string, limit int, outDir string) ([]types.Candle, string, error) {
	candles, err := f.Fetch(ctx, symbol, timeframe, limit)
	if err != nil {
		return nil, "", err
	}
	if outDir == "" || len(candles) == 0 {
		return candles, "", nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return candles, "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.csv", f.gw.Name(), safeFilename(symbol), timeframe)
	path := filepath.Join(outDir, name)

	rows := make([]candleRow, 0, len(candles))
	for _, c := range candles {
		rows = append(rows, candleRow{
			Timestamp: time.Unix(c.Ts, 0).UTC().Format(time.RFC3339),
			Open:      c.Open,
			High:      c.High,
			Low:       c.Low,
			Close:     c.Close,
			Volume:    c.Vol,
		})
	}

	out, err := os.Create(path)
	if err != nil {
		return candles, "", fmt.Errorf("create csv: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return candles, "", fmt.Errorf("write csv: %w", err)
	}
	return candles, path, nil
}

// safeFilename replaces any character that is not alphanumeric with an
// underscore, so symbols like BTC/USDT produce valid filenames.
func safeFilename(symbol string) string {
	var b strings.Builder
	for _, r := range symbol {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
