package domain

import "context"

// RateOracle always returns a usable snapshot, degrading to a static
// default table instead of propagating upstream failures.
type RateOracle interface {
	GetPrices(ctx context.Context) PriceQuote
}
