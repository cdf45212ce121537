package usecase

import (
	"errors"
	"testing"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

func testQuote() domain.PriceQuote {
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

func TestConversionRateRouting(t *testing.T) {
	quote := testQuote()
	btc := quote.Rates[domain.BTC]
	usdc := quote.Rates[domain.USDC]
	usdt := quote.Rates[domain.USDT]
	one := decimal.New(1, 0)

	testCases := []struct {
		name string
		from domain.Currency
		to   domain.Currency
		want decimal.Decimal
	}{
		{name: "identity", from: domain.USD, to: domain.USD, want: one},
		{name: "fiat to crypto uses buy", from: domain.USD, to: domain.BTC, want: btc.USDBuy},
		{name: "clp to crypto uses clp buy", from: domain.CLP, to: domain.BTC, want: btc.CLPBuy},
		{name: "crypto to fiat inverts sell", from: domain.BTC, to: domain.USD, want: one.Div(btc.USDSell)},
		{name: "crypto to clp inverts clp sell", from: domain.BTC, to: domain.CLP, want: one.Div(btc.CLPSell)},
		{name: "crypto to crypto bridges usd", from: domain.USDT, to: domain.BTC, want: btc.USDBuy.Div(usdt.USDSell)},
		{name: "fiat to fiat bridges usdc", from: domain.USD, to: domain.CLP, want: usdc.USDBuy.Div(usdc.CLPSell)},
		{name: "clp to usd bridges usdc", from: domain.CLP, to: domain.USD, want: usdc.CLPBuy.Div(usdc.USDSell)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConversionRate(tc.from, tc.to, quote)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("rate(%s, %s) = %s, want %s", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConversionRateUnavailable(t *testing.T) {
	empty := domain.PriceQuote{Rates: map[domain.Currency]domain.CryptoRates{}}

	pairs := []struct {
		from domain.Currency
		to   domain.Currency
	}{
		{domain.USD, domain.BTC},
		{domain.BTC, domain.USD},
		{domain.BTC, domain.USDT},
		{domain.USD, domain.CLP},
	}

	for _, pair := range pairs {
		if _, err := ConversionRate(pair.from, pair.to, empty); !errors.Is(err, domain.ErrQuoteUnavailable) {
			t.Errorf("rate(%s, %s): expected ErrQuoteUnavailable, got %v", pair.from, pair.to, err)
		}
	}

	// a zero rate in an otherwise valid quote must not route
	quote := testQuote()
	rates := quote.Rates[domain.BTC]
	rates.CLPSell = decimal.Zero
	quote.Rates[domain.BTC] = rates
	if _, err := ConversionRate(domain.BTC, domain.CLP, quote); !errors.Is(err, domain.ErrQuoteUnavailable) {
		t.Errorf("expected ErrQuoteUnavailable for zero sell rate, got %v", err)
	}
}

func TestConversionRateSpread(t *testing.T) {
	// buying and selling back must not be symmetric: the buy and sell sides
	// of the quote differ, so the round trip ratio is buy/sell, not 1
	quote := testQuote()
	btc := quote.Rates[domain.BTC]

	forward, err := ConversionRate(domain.USD, domain.BTC, quote)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := ConversionRate(domain.BTC, domain.USD, quote)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roundTrip := forward.Mul(back)
	want := btc.USDBuy.Div(btc.USDSell)
	if !roundTrip.Equal(want) {
		t.Errorf("round trip ratio = %s, want %s", roundTrip, want)
	}
	if roundTrip.Equal(decimal.New(1, 0)) {
		t.Error("round trip must reflect the buy/sell spread")
	}
}

func TestDisplayRate(t *testing.T) {
	rate := decimal.RequireFromString("0.000015507")
	want := decimal.New(1, 0).Div(rate)
	if got := DisplayRate(rate); !got.Equal(want) {
		t.Errorf("DisplayRate(%s) = %s, want %s", rate, got, want)
	}
	if got := DisplayRate(decimal.Zero); !got.IsZero() {
		t.Errorf("DisplayRate(0) = %s, want 0", got)
	}
}
