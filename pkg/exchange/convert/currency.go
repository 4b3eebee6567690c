package convert

import "strings"

// commonCurrencies remaps exchange-specific ticker spellings onto the
// globally unique codes, so the same asset gets the same code on every
// adapter and colliding tickers of unrelated assets stay apart.
var commonCurrencies = map[string]string{
	"XBT":    "BTC",
	"BCC":    "BCH",
	"BCHABC": "BCH",
	"BCHSV":  "BSV",
	"DRK":    "DASH",
	"BCHN":   "BCH",
	"XDG":    "DOGE",
	"STR":    "XLM",
}

// CanonicalCurrency upper-cases a native currency id and applies the
// common-currency remap.
func CanonicalCurrency(localCode string) string {
	code := strings.ToUpper(strings.TrimSpace(localCode))
	if mapped, ok := commonCurrencies[code]; ok {
		return mapped
	}
	return code
}
