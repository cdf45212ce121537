package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/retry"
)

// DefaultRateOracle serves quote snapshots from a TTL cache, refreshing
// from the remote source with bounded retries and falling back to the
// static default table. GetPrices never fails.
type DefaultRateOracle struct {
	client  *Client
	cache   *QuoteCache
	retrier *retry.Retrier
	metrics *metrics.ExchangeMetrics
}

func NewDefaultRateOracle(
	client *Client,
	cache *QuoteCache,
	maxRetries int,
	retryDelay time.Duration,
	exchangeMetrics *metrics.ExchangeMetrics) *DefaultRateOracle {

	// one initial attempt plus maxRetries retries
	retrier := retry.New(maxRetries+1, retryDelay, IsTransient)

	oracle := &DefaultRateOracle{
		client:  client,
		cache:   cache,
		retrier: retrier,
		metrics: exchangeMetrics,
	}
	retrier.OnRetry = func(attempt int, err error) {
		slog.Warn("price fetch failed, retrying",
			"attempt", attempt,
			"error", err.Error())
		if oracle.metrics != nil {
			oracle.metrics.PriceFetchRetriesTotal.Inc()
		}
	}
	return oracle
}

func (o *DefaultRateOracle) GetPrices(ctx context.Context) domain.PriceQuote {
	if quote, ok := o.cache.Get(); ok {
		if o.metrics != nil {
			o.metrics.PriceCacheHitsTotal.Inc()
		}
		return quote
	}
	if o.metrics != nil {
		o.metrics.PriceCacheMissesTotal.Inc()
	}

	var quote domain.PriceQuote
	err := o.retrier.Do(ctx, func(ctx context.Context) error {
		fetched, fetchErr := o.client.FetchPrices(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		quote = fetched
		return nil
	})
	if err != nil {
		slog.Error("price fetch failed, using default prices", "error", err.Error())
		return o.fallback()
	}

	if err := quote.Validate(); err != nil {
		slog.Error("invalid prices received from price API", "error", err.Error())
		return o.fallback()
	}

	quote.FetchedAt = time.Now()
	o.cache.Set(quote)
	if o.metrics != nil {
		o.metrics.PriceFetchTotal.WithLabelValues("success").Inc()
	}
	slog.Info("prices fetched and cached")
	return quote
}

func (o *DefaultRateOracle) fallback() domain.PriceQuote {
	if o.metrics != nil {
		o.metrics.PriceFetchTotal.WithLabelValues("fallback").Inc()
	}
	return DefaultPrices()
}
