package usecase

import (
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount turns the wire representation of an amount into a decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmountFormat
	}
	return amount, nil
}

// AmountPolicy validates a requested amount against the currency's sign,
// minimum and precision rules. Pure, no side effects.
type AmountPolicy struct{}

func (AmountPolicy) Validate(currency domain.Currency, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if minimum := currency.MinimumAmount(); amount.LessThan(minimum) {
		return fmt.Errorf("%w (%s)", domain.ErrBelowMinimum, minimum)
	}
	// trailing zeros carry no significant fractional digits, so truncation
	// at the allowed precision must not change the value
	if !amount.Equal(amount.Truncate(currency.DecimalPlaces())) {
		return domain.ErrPrecisionExceeded
	}
	return nil
}
