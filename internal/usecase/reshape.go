package usecase

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vitos/cryptopeek/internal/domain"
)

type trendingPayload struct {
	Coins []struct {
		Item domain.ListItem `json:"item"`
	} `json:"coins"`
}

type searchPayload struct {
	Coins []domain.ListItem `json:"coins"`
}

// Reshape turns a tab's raw payload into the flat list the view renders.
func Reshape(tab domain.Tab, currency domain.Currency, body []byte) ([]domain.ListItem, error) {
	switch tab {
	case domain.TabPrices:
		return reshapePrices(currency, body)

	case domain.TabCoins, domain.TabChains, domain.TabExchanges, domain.TabNFTs:
		var items []domain.ListItem
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", tab, err)
		}
		return items, nil

	case domain.TabTrending:
		var p trendingPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("decode trending: %w", err)
		}
		items := make([]domain.ListItem, 0, len(p.Coins))
		for _, c := range p.Coins {
			items = append(items, c.Item)
		}
		return items, nil

	case domain.TabSearch:
		var p searchPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("decode search: %w", err)
		}
		return p.Coins, nil
	}

	return nil, fmt.Errorf("unknown tab %d", tab)
}

// reshapePrices expects {coin-id: {currency: price}}. Items come out ordered
// by coin id.
func reshapePrices(currency domain.Currency, body []byte) ([]domain.ListItem, error) {
	var raw map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]domain.ListItem, 0, len(ids))
	for _, id := range ids {
		price, ok := raw[id][string(currency)]
		items = append(items, domain.ListItem{
			ID:    id,
			Name:  id,
			Price: decimal.NullDecimal{Decimal: price, Valid: ok},
		})
	}
	return items, nil
}
