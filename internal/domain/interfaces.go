package domain

import "context"

// Response is a raw upstream answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// MarketData is the read-only upstream market-data API.
type MarketData interface {
	// Get issues one GET for path (relative to the API base) with rawQuery
	// appended untouched. A non-2xx status is not an error here.
	Get(ctx context.Context, path, rawQuery string) (*Response, error)
}
