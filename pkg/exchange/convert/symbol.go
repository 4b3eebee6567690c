package convert

import (
	"strings"

	"github.com/pkg/errors"
)

// JoinSymbol builds the unified "BASE/QUOTE" symbol from canonicalized
// currency codes.
func JoinSymbol(base, quote string) string {
	return CanonicalCurrency(base) + "/" + CanonicalCurrency(quote)
}

// SplitSymbol splits a unified symbol back into base and quote.
func SplitSymbol(symbol string) (base, quote string, err error) {
	parts := strings.Split(symbol, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("invalid symbol %q, expecting BASE/QUOTE", symbol)
	}

	return parts[0], parts[1], nil
}

// SplitConcatenatedSymbol splits an exchange-native concatenated pair like
// "BTCUSDT" against a known quote-currency list, longest quote first.
func SplitConcatenatedSymbol(localSymbol string, quoteCurrencies []string) (base, quote string, err error) {
	s := strings.ToUpper(localSymbol)
	for _, q := range quoteCurrencies {
		if strings.HasSuffix(s, q) && len(s) > len(q) {
			return s[:len(s)-len(q)], q, nil
		}
	}

	return "", "", errors.Errorf("can not decode base/quote from local symbol %q", localSymbol)
}
