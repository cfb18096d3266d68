package domain

import "strings"

// Currency is a vs_currency code understood by the upstream API.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyPHP Currency = "php"
	CurrencyEUR Currency = "eur"
	CurrencyJPY Currency = "jpy"
	CurrencyGBP Currency = "gbp"
)

var currencies = []Currency{CurrencyUSD, CurrencyPHP, CurrencyEUR, CurrencyJPY, CurrencyGBP}

// PriceCoinIDs are the coins shown on the prices tab.
var PriceCoinIDs = []string{"bitcoin", "ethereum", "dogecoin"}

func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Next returns the currency after c in the selector, wrapping around.
// Unknown currencies go back to the first entry.
func (c Currency) Next() Currency {
	for i, cur := range currencies {
		if cur == c {
			return currencies[(i+1)%len(currencies)]
		}
	}
	return currencies[0]
}

func (c Currency) Upper() string { return strings.ToUpper(string(c)) }
