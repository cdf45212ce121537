package usecase

import (
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.New(1, 0)

// ConversionRate derives the exchange rate between any ordered pair of
// supported currencies from a quote snapshot. The result is units of `to`
// received per unit of `from`. Pairs without a direct quote bridge through
// USD (crypto to crypto) or USDC (fiat to fiat); a missing or non-positive
// hop ratio fails instead of silently defaulting to 1:1.
func ConversionRate(from, to domain.Currency, quote domain.PriceQuote) (decimal.Decimal, error) {
	if from == to {
		return one, nil
	}

	switch {
	case from.IsCrypto() && to.IsFiat():
		// selling crypto for fiat
		rates, _ := quote.RatesFor(from)
		ratio := rates.Sell(to)
		if !ratio.IsPositive() {
			return decimal.Zero, quoteUnavailable(from, to)
		}
		return one.Div(ratio), nil

	case from.IsFiat() && to.IsCrypto():
		// buying crypto with fiat
		rates, _ := quote.RatesFor(to)
		ratio := rates.Buy(from)
		if !ratio.IsPositive() {
			return decimal.Zero, quoteUnavailable(from, to)
		}
		return ratio, nil

	case from.IsCrypto() && to.IsCrypto():
		// sell source crypto for USD, buy destination crypto with the USD
		fromRates, _ := quote.RatesFor(from)
		toRates, _ := quote.RatesFor(to)
		if !fromRates.USDSell.IsPositive() || !toRates.USDBuy.IsPositive() {
			return decimal.Zero, quoteUnavailable(from, to)
		}
		return toRates.USDBuy.Div(fromRates.USDSell), nil

	default:
		// fiat to fiat, bridged through USDC
		usdcRates, _ := quote.RatesFor(domain.USDC)
		buy := usdcRates.Buy(from)
		sell := usdcRates.Sell(to)
		if !buy.IsPositive() || !sell.IsPositive() {
			return decimal.Zero, quoteUnavailable(from, to)
		}
		return buy.Div(sell), nil
	}
}

// DisplayRate is the reciprocal rate shown in previews, units of `from`
// per unit of `to`. Not persisted.
func DisplayRate(rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return one.Div(rate)
}

func quoteUnavailable(from, to domain.Currency) error {
	return fmt.Errorf("%w for %s to %s", domain.ErrQuoteUnavailable, from, to)
}
