package domain

// Tab is one of the dashboard views. The set is closed: every Tab value
// below has a fixed upstream endpoint and a reshape rule.
type Tab int

const (
	TabPrices Tab = iota
	TabCoins
	TabChains
	TabExchanges
	TabNFTs
	TabTrending
	TabSearch
)

type tabInfo struct {
	key      string
	label    string
	endpoint string
}

var tabTable = [...]tabInfo{
	TabPrices:    {key: "prices", label: "Prices", endpoint: "/simple/price"},
	TabCoins:     {key: "coins", label: "Coins & Tokens", endpoint: "/coins/list"},
	TabChains:    {key: "chains", label: "Blockchains", endpoint: "/asset_platforms"},
	TabExchanges: {key: "exchanges", label: "Exchanges", endpoint: "/exchanges/list"},
	TabNFTs:      {key: "nfts", label: "NFTs", endpoint: "/nfts/list"},
	TabTrending:  {key: "trending", label: "Trending", endpoint: "/search/trending"},
	TabSearch:    {key: "search", label: "Search", endpoint: "/search"},
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabTable))
	for i := range tabTable {
		out[i] = Tab(i)
	}
	return out
}

// ParseTab looks a tab up by its key.
func ParseTab(key string) (Tab, bool) {
	for i, info := range tabTable {
		if info.key == key {
			return Tab(i), true
		}
	}
	return 0, false
}

func (t Tab) Valid() bool { return t >= 0 && int(t) < len(tabTable) }

func (t Tab) Key() string {
	if !t.Valid() {
		return ""
	}
	return tabTable[t].key
}

func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}
	return tabTable[t].label
}

// Endpoint is the upstream path, relative to the API base URL.
func (t Tab) Endpoint() string {
	if !t.Valid() {
		return ""
	}
	return tabTable[t].endpoint
}

func (t Tab) String() string { return t.Key() }

// Next and Prev cycle through the tabs, wrapping at the ends.
func (t Tab) Next() Tab { return Tab((int(t) + 1) % len(tabTable)) }

func (t Tab) Prev() Tab { return Tab((int(t) + len(tabTable) - 1) % len(tabTable)) }
