// Package prices supplies current gold and silver prices per gram. The
// calculation engine never calls this package; callers fetch a quote here and
// pass plain decimals into the engine.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteSource records where a quote came from.
type QuoteSource string

const (
	SourceLive     QuoteSource = "live"
	SourceFallback QuoteSource = "fallback"
)

// Quote is a point-in-time pair of metal prices in the configured currency.
type Quote struct {
	GoldPerGram   decimal.Decimal `json:"gold_per_gram"`
	SilverPerGram decimal.Decimal `json:"silver_per_gram"`
	FetchedAt     time.Time       `json:"fetched_at"`
	Source        QuoteSource     `json:"source"`
}

// feedResponse is the JSON shape of the configured price endpoint. Prices
// arrive as strings to avoid float precision loss in transit.
type feedResponse struct {
	GoldPerGram   string `json:"gold_per_gram"`
	SilverPerGram string `json:"silver_per_gram"`
}

// Provider caches metal prices with a TTL. When no endpoint is configured or
// a fetch fails, it serves the configured fallback prices and flags the quote
// accordingly so a consumer can surface the staleness.
type Provider struct {
	url        string
	apiKey     string
	ttl        time.Duration
	fallback   Quote
	httpClient *http.Client

	mu     sync.RWMutex
	cached *Quote
}

// NewProvider creates a price provider. url may be empty, in which case every
// quote is the fallback.
func NewProvider(url, apiKey string, ttl time.Duration, fallbackGold, fallbackSilver decimal.Decimal) *Provider {
	return &Provider{
		url:    url,
		apiKey: apiKey,
		ttl:    ttl,
		fallback: Quote{
			GoldPerGram:   fallbackGold,
			SilverPerGram: fallbackSilver,
			Source:        SourceFallback,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Current returns the cached quote, refreshing it when stale. It never
// returns an error: on fetch failure the fallback quote is served.
func (p *Provider) Current(ctx context.Context) Quote {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()

	if cached != nil && time.Since(cached.FetchedAt) < p.ttl {
		return *cached
	}

	quote, err := p.fetch(ctx)
	if err != nil {
		fb := p.fallback
		fb.FetchedAt = time.Now()
		return fb
	}

	p.mu.Lock()
	p.cached = &quote
	p.mu.Unlock()

	return quote
}

func (p *Provider) fetch(ctx context.Context) (Quote, error) {
	if p.url == "" {
		return Quote{}, fmt.Errorf("no price endpoint configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build price request: %w", err)
	}
	if p.apiKey != "" {
		req.Header.Set("x-api-key", p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("price endpoint returned status %d", resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("decode price response: %w", err)
	}

	gold, err := decimal.NewFromString(body.GoldPerGram)
	if err != nil {
		return Quote{}, fmt.Errorf("parse gold price: %w", err)
	}
	silver, err := decimal.NewFromString(body.SilverPerGram)
	if err != nil {
		return Quote{}, fmt.Errorf("parse silver price: %w", err)
	}
	if !gold.IsPositive() || !silver.IsPositive() {
		return Quote{}, fmt.Errorf("price endpoint returned non-positive prices")
	}

	return Quote{
		GoldPerGram:   gold,
		SilverPerGram: silver,
		FetchedAt:     time.Now(),
		Source:        SourceLive,
	}, nil
}
