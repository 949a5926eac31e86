package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"crossover-bot/internal/logger"
	"crossover-bot/internal/marketdata"
	"crossover-bot/internal/store"
	"crossover-bot/internal/strategy"
	"crossover-bot/internal/trace"
	"crossover-bot/internal/tradelog"
	"crossover-bot/internal/types"
)

const usage = `Usage: bot <command> [arguments]

Commands:
  get-balance                         fetch and display account balance
  fetch-ohlcv <symbol> [flags]        fetch historical candles and save to CSV
  get-signal <symbol> [flags]         generate a trading signal for a symbol
  execute-trade <symbol> <signal> [qty]
                                      execute a trade (signal: BUY, SELL or HOLD)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	defer func() { _ = trace.Shutdown(ctx) }()

	compressOldLogs(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	var runErr error
	switch os.Args[1] {
	case "get-balance":
		runErr = runGetBalance(ctx, cfg)
	case "fetch-ohlcv":
		runErr = runFetchOHLCV(ctx, cfg, os.Args[2:])
	case "get-signal":
		runErr = runGetSignal(ctx, cfg, os.Args[2:])
	case "execute-trade":
		runErr = runExecuteTrade(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func runGetBalance(ctx context.Context, cfg *store.Config) error {
	gw := initializeGateway(ctx, cfg)

	bal, err := gw.Balance(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Could not retrieve balance", err)
		return err
	}

	for currency, amount := range bal.Totals {
		if amount > 0 {
			logger.Info(ctx, "Account balance", "currency", currency, "amount", amount)
		}
	}
	return nil
}

func runFetchOHLCV(ctx context.Context, cfg *store.Config, args []string) error {
	fs := flag.NewFlagSet("fetch-ohlcv", flag.ExitOnError)
	timeframe := fs.String("timeframe", cfg.Timeframe, "candle timeframe (e.g. 1m, 1h, 1d)")
	limit := fs.Int("limit", 100, "number of candles to fetch")
	out := fs.String("out", cfg.DataDir, "output directory for the CSV file (empty to skip)")
	symbol, err := parseSymbol(fs, args)
	if err != nil {
		return err
	}

	gw := initializeGateway(ctx, cfg)
	fetcher := marketdata.NewFetcher(gw)

	candles, path, err := fetcher.FetchAndExport(ctx, symbol, *timeframe, *limit, *out)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch OHLCV data", err, "symbol", symbol)
		return err
	}
	if len(candles) == 0 {
		logger.Warn(ctx, "No data returned by exchange", "symbol", symbol, "timeframe", *timeframe)
		return nil
	}

	logger.Info(ctx, "Fetched OHLCV data",
		"symbol", symbol,
		"timeframe", *timeframe,
		"count", len(candles),
		"csv", path,
	)
	return nil
}

func runGetSignal(ctx context.Context, cfg *store.Config, args []string) error {
	fs := flag.NewFlagSet("get-signal", flag.ExitOnError)
	model := fs.String("model", cfg.Strategy.Model, "signal model: random or ma_crossover")
	short := fs.Int("short", cfg.Strategy.ShortWindow, "short window for ma_crossover")
	long := fs.Int("long", cfg.Strategy.LongWindow, "long window for ma_crossover")
	symbol, err := parseSymbol(fs, args)
	if err != nil {
		return err
	}

	cfg.Strategy.Model = *model
	cfg.Strategy.ShortWindow = *short
	cfg.Strategy.LongWindow = *long

	gen, err := initializeGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	limit := 50
	if *model == strategy.ModelCrossover {
		limit = *long * 2
		if limit < *long+1 {
			limit = *long + 10
		}
	}

	gw := initializeGateway(ctx, cfg)
	fetcher := marketdata.NewFetcher(gw)

	candles, err := fetcher.Fetch(ctx, symbol, cfg.Timeframe, limit)
	if err != nil {
		// Market-data failures degrade to HOLD rather than aborting.
		logger.ErrorWithErr(ctx, "Could not fetch history, falling back to HOLD", err, "symbol", symbol)
		candles = nil
	}

	sig := gen.GenerateSignal(candles)
	logger.Decision(ctx, symbol, string(sig), *model,
		"candles", len(candles),
		"short_window", *short,
		"long_window", *long,
	)
	fmt.Println(string(sig))
	return nil
}

func runExecuteTrade(ctx context.Context, cfg *store.Config, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bot execute-trade <symbol> <signal> [qty]")
		return fmt.Errorf("missing arguments")
	}
	symbol := args[0]
	sig := types.Signal(strings.ToUpper(args[1]))

	qty := cfg.Trade.DefaultQty
	if len(args) >= 3 {
		var err error
		qty, err = strconv.ParseFloat(args[2], 64)
		if err != nil || qty <= 0 {
			fmt.Fprintln(os.Stderr, "qty must be a positive number")
			return fmt.Errorf("invalid qty %q", args[2])
		}
	}

	gw := initializeGateway(ctx, cfg)
	trader := initializeEngine(cfg, gw)

	result := trader.ExecuteTrade(ctx, symbol, sig, qty)
	if !result.Executed() {
		logger.Warn(ctx, "Trade execution did not return an order, check previous logs",
			"symbol", symbol,
			"signal", string(sig),
			"failure", string(result.Failure),
		)
		return nil
	}

	logger.Trade(ctx, symbol, result.Order.Side, result.Order.Qty, result.Order.OrderID,
		"status", result.Order.Status,
	)
	_ = tradelog.Append(tradelog.Entry{
		Symbol:  symbol,
		Side:    result.Order.Side,
		Qty:     result.Order.Qty,
		OrderID: result.Order.OrderID,
		Status:  result.Order.Status,
	})

	b, _ := json.Marshal(result.Order)
	fmt.Println(string(b))
	return nil
}

func parseSymbol(fs *flag.FlagSet, args []string) (string, error) {
	// Symbol comes first, flags after, matching the original CLI shape.
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(os.Stderr, "usage: bot %s <symbol> [flags]\n", fs.Name())
		return "", fmt.Errorf("missing symbol")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return "", err
	}
	return args[0], nil
}
