package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CryptoRates holds the four directional rates of one crypto currency
// against the supported fiat currencies. Buy rates are expressed as units
// of crypto per unit of fiat, sell rates follow the reciprocal convention.
type CryptoRates struct {
	USDBuy  decimal.Decimal
	USDSell decimal.Decimal
	CLPBuy  decimal.Decimal
	CLPSell decimal.Decimal
}

func (r CryptoRates) Buy(fiat Currency) decimal.Decimal {
	switch fiat {
	case USD:
		return r.USDBuy
	case CLP:
		return r.CLPBuy
	}
	return decimal.Zero
}

func (r CryptoRates) Sell(fiat Currency) decimal.Decimal {
	switch fiat {
	case USD:
		return r.USDSell
	case CLP:
		return r.CLPSell
	}
	return decimal.Zero
}

// PriceQuote is an immutable snapshot of rates per crypto currency,
// superseded wholesale by the next successful fetch.
type PriceQuote struct {
	Rates     map[Currency]CryptoRates
	FetchedAt time.Time
}

func (q PriceQuote) RatesFor(c Currency) (CryptoRates, bool) {
	rates, ok := q.Rates[c]
	return rates, ok
}

// Validate checks that the snapshot carries exactly the three supported
// crypto currencies with positive rates in all four directions.
func (q PriceQuote) Validate() error {
	if len(q.Rates) != len(CryptoCurrencies()) {
		return fmt.Errorf("quote must contain exactly %d currencies, got %d", len(CryptoCurrencies()), len(q.Rates))
	}
	for _, crypto := range CryptoCurrencies() {
		rates, ok := q.Rates[crypto]
		if !ok {
			return fmt.Errorf("quote is missing %s", crypto)
		}
		for _, rate := range []decimal.Decimal{rates.USDBuy, rates.USDSell, rates.CLPBuy, rates.CLPSell} {
			if !rate.IsPositive() {
				return fmt.Errorf("quote has non-positive rate for %s", crypto)
			}
		}
	}
	return nil
}
