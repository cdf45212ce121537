package pricing

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultPrices is the hard-coded snapshot used whenever the remote source
// cannot produce a trustworthy one. Never written to the cache, so the
// next call hits the source again.
func DefaultPrices() domain.PriceQuote {
	return domain.PriceQuote{
		Rates: map[domain.Currency]domain.CryptoRates{
			domain.BTC: {
				USDBuy:  decimal.RequireFromString("0.000015507"),
				USDSell: decimal.RequireFromString("0.000015352"),
				CLPBuy:  decimal.RequireFromString("0.00000002035"),
				CLPSell: decimal.RequireFromString("0.00000001465"),
			},
			domain.USDC: {
				USDBuy:  decimal.RequireFromString("1.0"),
				USDSell: decimal.RequireFromString("1.0"),
				CLPBuy:  decimal.RequireFromString("0.001312"),
				CLPSell: decimal.RequireFromString("0.000945"),
			},
			domain.USDT: {
				USDBuy:  decimal.RequireFromString("1.0035"),
				USDSell: decimal.RequireFromString("0.9965"),
				CLPBuy:  decimal.RequireFromString("0.001166"),
				CLPSell: decimal.RequireFromString("0.00084"),
			},
		},
	}
}
