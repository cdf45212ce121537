package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

const validPayload = `{
	"btc":  {"usd_buy": "0.000016", "usd_sell": "0.0000155", "clp_buy": "0.00000002", "clp_sell": "0.000000015"},
	"usdc": {"usd_buy": "1.0", "usd_sell": "1.0", "clp_buy": "0.0013", "clp_sell": "0.00095"},
	"usdt": {"usd_buy": "1.003", "usd_sell": "0.997", "clp_buy": "0.00116", "clp_sell": "0.00084"}
}`

func newTestOracle(url string, maxRetries int) *DefaultRateOracle {
	client := NewClient(url, time.Second)
	cache := NewQuoteCache(5 * time.Minute)
	oracle := NewDefaultRateOracle(client, cache, maxRetries, time.Millisecond, nil)
	oracle.retrier.Sleep = func(ctx context.Context, delay time.Duration) error { return nil }
	return oracle
}

func samePrices(a, b domain.PriceQuote) bool {
	if len(a.Rates) != len(b.Rates) {
		return false
	}
	for currency, rates := range a.Rates {
		other, ok := b.Rates[currency]
		if !ok {
			return false
		}
		if !rates.USDBuy.Equal(other.USDBuy) || !rates.USDSell.Equal(other.USDSell) ||
			!rates.CLPBuy.Equal(other.CLPBuy) || !rates.CLPSell.Equal(other.CLPSell) {
			return false
		}
	}
	return true
}

func TestGetPricesSuccessIsCached(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(validPayload))
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	btc, ok := quote.RatesFor(domain.BTC)
	if !ok {
		t.Fatal("quote must contain BTC rates")
	}
	if !btc.USDBuy.Equal(decimal.RequireFromString("0.000016")) {
		t.Errorf("usd_buy = %s, want 0.000016", btc.USDBuy)
	}
	if quote.FetchedAt.IsZero() {
		t.Error("fetched quote must carry a timestamp")
	}

	// second call must come from the cache
	oracle.GetPrices(context.Background())
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}

func TestGetPricesRetriesServerErrorsThenFallsBack(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	if requests != 4 {
		t.Errorf("requests = %d, want 4 (initial attempt plus 3 retries)", requests)
	}
	if !samePrices(quote, DefaultPrices()) {
		t.Error("exhausted retries must fall back to default prices")
	}

	// the fallback must not be cached, the next call retries the source
	oracle.GetPrices(context.Background())
	if requests != 8 {
		t.Errorf("requests = %d, want 8", requests)
	}
}

func TestGetPricesClientErrorDoesNotRetry(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if !samePrices(quote, DefaultPrices()) {
		t.Error("client error must fall back to default prices")
	}
}

func TestGetPricesMalformedBodyDoesNotRetry(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if !samePrices(quote, DefaultPrices()) {
		t.Error("malformed response must fall back to default prices")
	}
}

func TestGetPricesRecoversAfterTransientFailures(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(validPayload))
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
	if samePrices(quote, DefaultPrices()) {
		t.Error("a recovered fetch must return the live quote, not the defaults")
	}
}

func TestGetPricesIncompletePayloadFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"btc": {"usd_buy": "0.000016", "usd_sell": "0.0000155", "clp_buy": "0.00000002", "clp_sell": "0.000000015"}}`))
	}))
	defer server.Close()

	oracle := newTestOracle(server.URL, 3)

	quote := oracle.GetPrices(context.Background())
	if !samePrices(quote, DefaultPrices()) {
		t.Error("payload missing a crypto must fall back to default prices")
	}
}
