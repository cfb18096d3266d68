package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get_ForwardsPathAndRawQuery(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("x-cg-demo-api-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":50000}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v3/", "demo-key", time.Second)
	resp, err := c.Get(context.Background(), "/simple/price", "ids=bitcoin,ethereum&vs_currencies=usd")
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, `{"bitcoin":{"usd":50000}}`, string(resp.Body))
	assert.Equal(t, "/api/v3/simple/price", gotPath)
	assert.Equal(t, "ids=bitcoin,ethereum&vs_currencies=usd", gotQuery)
	assert.Equal(t, "demo-key", gotKey)
}

func TestClient_Get_NonOKIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":{"error_code":429}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	resp, err := c.Get(context.Background(), "/coins/list", "")
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestClient_Get_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", time.Second)
	_, err := c.Get(context.Background(), "/coins/list", "")
	assert.Error(t, err)
}

func TestClient_URL(t *testing.T) {
	c := NewClient("", "", 0)
	assert.Equal(t, DefaultBaseURL+"/search/trending", c.URL("/search/trending", ""))
	assert.Equal(t, DefaultBaseURL+"/search?query=bitcoin", c.URL("/search", "query=bitcoin"))
}
