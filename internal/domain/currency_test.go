package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Currency
		wantErr bool
	}{
		{name: "uppercase", input: "BTC", want: BTC},
		{name: "lowercase", input: "usd", want: USD},
		{name: "mixed case", input: "UsDc", want: USDC},
		{name: "surrounding spaces", input: "  CLP  ", want: CLP},
		{name: "unknown", input: "EUR", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCurrency(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Fatalf("expected ErrInvalidCurrency, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCurrencyClassification(t *testing.T) {
	for _, crypto := range []Currency{BTC, USDC, USDT} {
		if !crypto.IsCrypto() || crypto.IsFiat() {
			t.Errorf("%s must be classified as crypto", crypto)
		}
	}
	for _, fiat := range []Currency{USD, CLP} {
		if !fiat.IsFiat() || fiat.IsCrypto() {
			t.Errorf("%s must be classified as fiat", fiat)
		}
	}
}

func TestCurrencyRules(t *testing.T) {
	testCases := []struct {
		currency    Currency
		places      int32
		wantMinimum string
	}{
		{BTC, 8, "0.00000001"},
		{CLP, 0, "1"},
		{USD, 2, "0.01"},
		{USDC, 2, "0.01"},
		{USDT, 2, "0.01"},
	}

	for _, tc := range testCases {
		if got := tc.currency.DecimalPlaces(); got != tc.places {
			t.Errorf("%s: decimal places = %d, want %d", tc.currency, got, tc.places)
		}
		want := decimal.RequireFromString(tc.wantMinimum)
		if got := tc.currency.MinimumAmount(); !got.Equal(want) {
			t.Errorf("%s: minimum = %s, want %s", tc.currency, got, want)
		}
	}
}

func TestStartingBalancesCoverAllCurrencies(t *testing.T) {
	for _, currency := range SupportedCurrencies() {
		amount, ok := StartingBalances[currency]
		if !ok {
			t.Errorf("no starting balance for %s", currency)
			continue
		}
		if !amount.IsPositive() {
			t.Errorf("starting balance for %s must be positive, got %s", currency, amount)
		}
	}
}
