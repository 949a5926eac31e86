package kite

import (
	"errors"
	"fmt"
	"strings"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"crossover-bot/internal/interfaces"
)

// translateErr maps a Kite Connect API error onto the gateway sentinel
// taxonomy. Unclassifiable errors pass through unwrapped and end up as
// unknown failures.
func translateErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var kerr kiteconnect.Error
	if !errors.As(err, &kerr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if strings.Contains(strings.ToLower(kerr.Message), "insufficient") {
		return fmt.Errorf("%s: %s: %w", op, kerr.Message, interfaces.ErrInsufficientFunds)
	}

	switch kerr.ErrorType {
	case kiteconnect.NetworkError:
		return fmt.Errorf("%s: %s: %w", op, kerr.Message, interfaces.ErrNetwork)
	case kiteconnect.OrderError, kiteconnect.InputError, kiteconnect.DataError,
		kiteconnect.TokenError, kiteconnect.PermissionError, kiteconnect.GeneralError:
		return fmt.Errorf("%s: %s: %w", op, kerr.Message, interfaces.ErrExchange)
	}
	return fmt.Errorf("%s: %w", op, err)
}
