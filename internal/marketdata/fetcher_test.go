package marketdata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossover-bot/internal/types"
)

type stubGateway struct {
	candles []types.Candle
	err     error
}

func (s *stubGateway) Name() string { return "stub" }

func (s *stubGateway) Candles(_ context.Context, _, _ string, _ int) ([]types.Candle, error) {
	return s.candles, s.err
}

func (s *stubGateway) PlaceMarketOrder(_ context.Context, _ types.OrderReq) (types.OrderResp, error) {
	return types.OrderResp{}, nil
}

func (s *stubGateway) Balance(_ context.Context) (types.Balance, error) {
	return types.Balance{}, nil
}

func (s *stubGateway) Instruments(_ context.Context) ([]types.Instrument, error) {
	return nil, nil
}

func sampleCandles() []types.Candle {
	return []types.Candle{
		{Ts: 1700000000, Open: 99.5, High: 101, Low: 98, Close: 100, Vol: 1200},
		{Ts: 1700003600, Open: 100, High: 103, Low: 99, Close: 102, Vol: 900},
	}
}

func TestFetch(t *testing.T) {
	f := NewFetcher(&stubGateway{candles: sampleCandles()})

	got, err := f.Fetch(context.Background(), "RELIANCE", "1h", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 100.0, got[0].Close)
}

func TestFetchNilGateway(t *testing.T) {
	f := NewFetcher(nil)
	_, err := f.Fetch(context.Background(), "RELIANCE", "1h", 2)
	assert.Error(t, err)
}

func TestFetchAndExportWritesCSV(t *testing.T) {
	dir := t.TempDir()
	f := NewFetcher(&stubGateway{candles: sampleCandles()})

	candles, path, err := f.FetchAndExport(context.Background(), "BTC/USDT", "1h", 2, dir)
	require.NoError(t, err)
	assert.Len(t, candles, 2)
	assert.Equal(t, filepath.Join(dir, "stub_BTC_USDT_1h.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3, "header plus one row per candle")
	assert.Equal(t, "timestamp,open,high,low,close,volume", lines[0])
	assert.Contains(t, lines[1], "2023-11-14T22:13:20Z")
	assert.Contains(t, lines[1], "100")
}

func TestFetchAndExportEmptyOutDirSkips(t *testing.T) {
	f := NewFetcher(&stubGateway{candles: sampleCandles()})

	candles, path, err := f.FetchAndExport(context.Background(), "RELIANCE", "1h", 2, "")
	require.NoError(t, err)
	assert.Len(t, candles, 2)
	assert.Empty(t, path)
}

func TestFetchAndExportEmptySeriesSkips(t *testing.T) {
	dir := t.TempDir()
	f := NewFetcher(&stubGateway{})

	candles, path, err := f.FetchAndExport(context.Background(), "RELIANCE", "1h", 2, dir)
	require.NoError(t, err)
	assert.Empty(t, candles)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file for an empty series")
}

func TestFetchAndExportGatewayError(t *testing.T) {
	f := NewFetcher(&stubGateway{err: errors.New("feed down")})

	_, _, err := f.FetchAndExport(context.Background(), "RELIANCE", "1h", 2, t.TempDir())
	assert.Error(t, err)
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "BTC_USDT", safeFilename("BTC/USDT"))
	assert.Equal(t, "RELIANCE", safeFilename("RELIANCE"))
	assert.Equal(t, "NIFTY_50", safeFilename("NIFTY 50"))
}
