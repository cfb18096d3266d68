package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/cryptopeek/internal/domain"
	"github.com/vitos/cryptopeek/internal/infrastructure/coingecko"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type upstreamCall struct {
	Path     string
	RawQuery string
}

type upstreamRecorder struct {
	mu    sync.Mutex
	calls []upstreamCall
}

func (u *upstreamRecorder) All() []upstreamCall {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]upstreamCall(nil), u.calls...)
}

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *upstreamRecorder) {
	t.Helper()
	rec := &upstreamRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.calls = append(rec.calls, upstreamCall{Path: r.URL.Path, RawQuery: r.URL.RawQuery})
		rec.mu.Unlock()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestServer(upstreamURL string) *Server {
	client := coingecko.NewClient(upstreamURL+"/api/v3", "", time.Second)
	return NewServer(":0", client, zap.NewNop())
}

func TestProxy_ForwardsQueryVerbatim(t *testing.T) {
	up, calls := newUpstream(t, http.StatusOK, `[{"id":"bitcoin","current_price":50000}]`)
	s := newTestServer(up.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/coins/markets?vs_currency=usd", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"bitcoin","current_price":50000}]`, rec.Body.String())

	got := calls.All()
	require.Len(t, got, 1)
	assert.Equal(t, "/api/v3/coins/markets", got[0].Path)
	assert.Equal(t, "vs_currency=usd", got[0].RawQuery)
}

func TestProxy_AllRoutes(t *testing.T) {
	up, calls := newUpstream(t, http.StatusOK, `[]`)
	s := newTestServer(up.URL)

	for _, path := range []string{"/api/exchanges?per_page=5&page=2", "/api/asset_platforms"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	got := calls.All()
	require.Len(t, got, 2)
	assert.Equal(t, upstreamCall{Path: "/api/v3/exchanges", RawQuery: "per_page=5&page=2"}, got[0])
	assert.Equal(t, upstreamCall{Path: "/api/v3/asset_platforms"}, got[1])
}

func TestProxy_RelaysUpstreamErrorBodyAs200(t *testing.T) {
	up, _ := newUpstream(t, http.StatusTooManyRequests, `{"status":{"error_code":429}}`)
	s := newTestServer(up.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exchanges", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":{"error_code":429}}`, rec.Body.String())
}

func TestProxy_NonJSONIs500(t *testing.T) {
	up, _ := newUpstream(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	s := newTestServer(up.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exchanges", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestProxy_UpstreamDownIs500(t *testing.T) {
	up := httptest.NewServer(http.NotFoundHandler())
	url := up.URL
	up.Close()
	s := newTestServer(url)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/coins/markets?vs_currency=usd", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestProxy_UnknownRouteAndMethod(t *testing.T) {
	up, calls := newUpstream(t, http.StatusOK, `[]`)
	s := newTestServer(up.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/coins/list", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/exchanges", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	assert.Empty(t, calls.All())
}

func TestMiddleware_CORSAndPreflight(t *testing.T) {
	up, calls := newUpstream(t, http.StatusOK, `[]`)
	s := newTestServer(up.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/exchanges", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, calls.All())

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exchanges", nil))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddleware_RequestIDAndAccessLog(t *testing.T) {
	up, _ := newUpstream(t, http.StatusOK, `[]`)
	core, logs := observer.New(zapcore.InfoLevel)
	client := coingecko.NewClient(up.URL, "", time.Second)
	s := NewServer(":0", client, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/api/exchanges", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/exchanges", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "abc-123", fields["request_id"])
}

type panicMarket struct{}

func (panicMarket) Get(ctx context.Context, path, rawQuery string) (*domain.Response, error) {
	panic("upstream exploded")
}

func TestMiddleware_Recover(t *testing.T) {
	s := NewServer(":0", panicMarket{}, zap.NewNop())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exchanges", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"upstream exploded"}`, rec.Body.String())
}
