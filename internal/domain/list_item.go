package domain

import "github.com/shopspring/decimal"

// MarketSite is the public site item links point at when upstream gives no url.
const MarketSite = "https://www.coingecko.com"

// ListItem is the normalized display record every tab reshapes into.
// All fields are optional.
type ListItem struct {
	ID        string              `json:"id,omitempty"`
	Name      string              `json:"name,omitempty"`
	Symbol    string              `json:"symbol,omitempty"`
	Price     decimal.NullDecimal `json:"price"`
	MarketCap decimal.NullDecimal `json:"market_cap"`
	URL       string              `json:"url,omitempty"`
}

// Key identifies the item within one rendered page.
func (i ListItem) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Name
}

// Label is the text shown for the item: name, else id, else symbol.
func (i ListItem) Label() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.ID != "":
		return i.ID
	default:
		return i.Symbol
	}
}

func (i ListItem) Link() string {
	if i.URL != "" {
		return i.URL
	}
	return MarketSite + "/coins/" + i.Key()
}
