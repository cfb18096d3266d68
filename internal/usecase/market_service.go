package usecase

import (
	"context"
	"fmt"

	"github.com/vitos/cryptopeek/internal/domain"
)

// MarketService runs controller requests against the upstream API.
type MarketService struct {
	market domain.MarketData
}

func NewMarketService(market domain.MarketData) *MarketService {
	return &MarketService{market: market}
}

// Fetch executes req and reshapes the payload for req.Tab.
// A non-2xx answer is an error, same as a network or decode failure.
func (s *MarketService) Fetch(ctx context.Context, req Request) ([]domain.ListItem, error) {
	resp, err := s.market.Get(ctx, req.Path, req.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.Tab, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("fetch %s: request failed with status %d", req.Tab, resp.StatusCode)
	}
	return Reshape(req.Tab, req.Currency, resp.Body)
}

// Resolve runs req and wraps the outcome in the event Reduce expects.
func (s *MarketService) Resolve(ctx context.Context, req Request) Event {
	items, err := s.Fetch(ctx, req)
	if err != nil {
		return FetchFailed{Seq: req.Seq, Err: err}
	}
	return FetchSucceeded{Seq: req.Seq, Items: items}
}
