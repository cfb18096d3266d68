package usecase

import (
	"net/url"
	"strings"

	"github.com/vitos/cryptopeek/internal/domain"
)

// DefaultSearchQuery is searched for when the query box is empty.
const DefaultSearchQuery = "bitcoin"

// Request is one upstream fetch issued by the controller. Seq ties the
// eventual result back to the state that asked for it.
type Request struct {
	Seq      uint64
	Tab      domain.Tab
	Currency domain.Currency
	Path     string
	RawQuery string
}

// BuildRequest maps the active tab, currency and query to an upstream call.
func BuildRequest(tab domain.Tab, currency domain.Currency, query string) Request {
	req := Request{
		Tab:      tab,
		Currency: currency,
		Path:     tab.Endpoint(),
	}

	switch tab {
	case domain.TabPrices:
		req.RawQuery = "ids=" + strings.Join(domain.PriceCoinIDs, ",") +
			"&vs_currencies=" + url.QueryEscape(string(currency))
	case domain.TabSearch:
		if query == "" {
			query = DefaultSearchQuery
		}
		req.RawQuery = "query=" + url.QueryEscape(query)
	}

	return req
}
