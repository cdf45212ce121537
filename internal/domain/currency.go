package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD  Currency = "USD"
	CLP  Currency = "CLP"
	BTC  Currency = "BTC"
	USDC Currency = "USDC"
	USDT Currency = "USDT"
)

// static fiat/crypto classification, drives conversion routing
var cryptoCurrencies = map[Currency]bool{
	BTC:  true,
	USDC: true,
	USDT: true,
}

var supportedCurrencies = []Currency{USD, CLP, BTC, USDC, USDT}

// decimal places allowed per currency
var currencyPrecision = map[Currency]int32{
	BTC:  8,
	CLP:  0,
	USD:  2,
	USDC: 2,
	USDT: 2,
}

var minimumAmounts = map[Currency]decimal.Decimal{
	BTC:  decimal.New(1, -8), // one satoshi
	CLP:  decimal.New(1, 0),
	USD:  decimal.New(1, -2),
	USDC: decimal.New(1, -2),
	USDT: decimal.New(1, -2),
}

// balances seeded when an account is provisioned
var StartingBalances = map[Currency]decimal.Decimal{
	USD:  decimal.New(1000, 0),
	CLP:  decimal.New(500000, 0),
	BTC:  decimal.New(5, -2),
	USDC: decimal.New(100, 0),
	USDT: decimal.New(100, 0),
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, supported := range supportedCurrencies {
		if c == supported {
			return c, nil
		}
	}
	return "", ErrInvalidCurrency
}

func SupportedCurrencies() []Currency {
	result := make([]Currency, len(supportedCurrencies))
	copy(result, supportedCurrencies)
	return result
}

func CryptoCurrencies() []Currency {
	return []Currency{BTC, USDC, USDT}
}

func (c Currency) IsCrypto() bool {
	return cryptoCurrencies[c]
}

func (c Currency) IsFiat() bool {
	return !cryptoCurrencies[c]
}

func (c Currency) DecimalPlaces() int32 {
	return currencyPrecision[c]
}

func (c Currency) MinimumAmount() decimal.Decimal {
	return minimumAmounts[c]
}

func (c Currency) String() string {
	return string(c)
}
