package prices

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFallbackWhenNoEndpointConfigured(t *testing.T) {
	p := NewProvider("", "", time.Minute, dec("75"), dec("0.95"))

	quote := p.Current(context.Background())
	assert.Equal(t, SourceFallback, quote.Source)
	assert.True(t, quote.GoldPerGram.Equal(dec("75")))
	assert.True(t, quote.SilverPerGram.Equal(dec("0.95")))
}

func TestLiveFetchAndCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"gold_per_gram":"62.10","silver_per_gram":"0.81"}`))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "", time.Minute, dec("75"), dec("0.95"))

	first := p.Current(context.Background())
	assert.Equal(t, SourceLive, first.Source)
	assert.True(t, first.GoldPerGram.Equal(dec("62.10")))

	second := p.Current(context.Background())
	assert.Equal(t, SourceLive, second.Source)
	assert.Equal(t, 1, hits, "second call within TTL must hit the cache")
}

func TestAPIKeyHeaderSent(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		_, _ = w.Write([]byte(`{"gold_per_gram":"62.10","silver_per_gram":"0.81"}`))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "secret", time.Minute, dec("75"), dec("0.95"))
	p.Current(context.Background())
	assert.Equal(t, "secret", gotKey)
}

func TestFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "", time.Minute, dec("75"), dec("0.95"))

	quote := p.Current(context.Background())
	assert.Equal(t, SourceFallback, quote.Source)
	assert.True(t, quote.GoldPerGram.Equal(dec("75")))
}

func TestFallbackOnNonPositivePrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gold_per_gram":"0","silver_per_gram":"0.81"}`))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "", time.Minute, dec("75"), dec("0.95"))

	quote := p.Current(context.Background())
	assert.Equal(t, SourceFallback, quote.Source)
}
