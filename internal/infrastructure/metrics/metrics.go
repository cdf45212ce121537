package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics covers the exchange flow and the price pipeline.
type ExchangeMetrics struct {
	ExchangesCompletedTotal prometheus.CounterVec
	ExchangesRejectedTotal  prometheus.CounterVec
	ExchangeAmountTotal     prometheus.CounterVec
	ExchangeDuration        prometheus.HistogramVec

	PriceFetchTotal        prometheus.CounterVec
	PriceFetchRetriesTotal prometheus.Counter
	PriceCacheHitsTotal    prometheus.Counter
	PriceCacheMissesTotal  prometheus.Counter
}

func NewExchangeMetrics() *ExchangeMetrics {
	return &ExchangeMetrics{
		ExchangesCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_completed_total",
				Help: "Exchanges that reached the completed status",
			},
			[]string{"from_currency", "to_currency"},
		),

		ExchangesRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_rejected_total",
				Help: "Exchanges rejected during the atomic ledger phase",
			},
			[]string{"from_currency", "to_currency"},
		),

		ExchangeAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_amount_total",
				Help: "Total exchanged amount in source-currency units",
			},
			[]string{"from_currency"},
		),

		ExchangeDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_duration_seconds",
				Help:    "Execute latency including the ledger round trip",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),

		PriceFetchTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_fetch_total",
				Help: "Price source fetch outcomes (success/fallback)",
			},
			[]string{"outcome"},
		),

		PriceFetchRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "price_fetch_retries_total",
				Help: "Retries against the price source after transient failures",
			},
		),

		PriceCacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "price_cache_hits_total",
				Help: "Quote requests served from the cache",
			},
		),

		PriceCacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "price_cache_misses_total",
				Help: "Quote requests that had to hit the price source",
			},
		),
	}
}
