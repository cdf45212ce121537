package domain

import "errors"

var (
	ErrInvalidCurrency            = errors.New("invalid currencies")
	ErrSameCurrency               = errors.New("cannot exchange same currency")
	ErrNonPositiveAmount          = errors.New("amount must be positive")
	ErrInvalidAmountFormat        = errors.New("invalid amount format")
	ErrBelowMinimum               = errors.New("amount below minimum")
	ErrPrecisionExceeded          = errors.New("amount precision too high")
	ErrQuoteUnavailable           = errors.New("price not available")
	ErrBalanceNotFound            = errors.New("balance not found")
	ErrSourceBalanceNotFound      = errors.New("source balance not found")
	ErrDestinationBalanceNotFound = errors.New("destination balance not found")
	ErrInsufficientBalance        = errors.New("insufficient balance")
	ErrTransactionNotFound        = errors.New("transaction not found")
)
