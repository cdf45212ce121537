package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	exchangedto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/exchange"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExchangeUsecase interface {
	Preview(ctx context.Context, input *exchangedto.ExchangeInput) (*exchangedto.PreviewOutput, error)
	Execute(ctx context.Context, input *exchangedto.ExchangeInput) (*exchangedto.ExchangeOutput, error)
}

type DefaultExchangeUsecase struct {
	BalanceRepo     domain.BalanceRepository
	TransactionRepo domain.TransactionRepository
	Ledger          domain.Ledger
	Oracle          domain.RateOracle
	Publisher       domain.ExchangeEventPublisher
	Metrics         *metrics.ExchangeMetrics
	Policy          AmountPolicy
}

func NewDefaultExchangeUsecase(
	balanceRepo domain.BalanceRepository,
	transactionRepo domain.TransactionRepository,
	ledger domain.Ledger,
	oracle domain.RateOracle,
	publisher domain.ExchangeEventPublisher,
	exchangeMetrics *metrics.ExchangeMetrics) *DefaultExchangeUsecase {

	return &DefaultExchangeUsecase{
		BalanceRepo:     balanceRepo,
		TransactionRepo: transactionRepo,
		Ledger:          ledger,
		Oracle:          oracle,
		Publisher:       publisher,
		Metrics:         exchangeMetrics,
	}
}

type validatedRequest struct {
	userID string
	from   domain.Currency
	to     domain.Currency
	amount decimal.Decimal
}

func (uc *DefaultExchangeUsecase) validateInput(input *exchangedto.ExchangeInput) (*validatedRequest, error) {
	from, err := domain.ParseCurrency(input.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseCurrency(input.ToCurrency)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, domain.ErrSameCurrency
	}
	amount, err := ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if err := uc.Policy.Validate(from, amount); err != nil {
		return nil, err
	}
	return &validatedRequest{
		userID: input.UserID,
		from:   from,
		to:     to,
		amount: amount,
	}, nil
}

// Preview computes the rate and destination amount without touching any
// balance and without creating a transaction.
func (uc *DefaultExchangeUsecase) Preview(ctx context.Context, input *exchangedto.ExchangeInput) (*exchangedto.PreviewOutput, error) {
	request, err := uc.validateInput(input)
	if err != nil {
		return nil, err
	}

	quote := uc.Oracle.GetPrices(ctx)
	rate, err := ConversionRate(request.from, request.to, quote)
	if err != nil {
		return nil, err
	}
	amountTo := request.amount.Mul(rate)

	return &exchangedto.PreviewOutput{
		FromCurrency: request.from,
		ToCurrency:   request.to,
		Amount:       request.amount,
		AmountTo:     amountTo,
		Rate:         rate,
		RateDisplay:  DisplayRate(rate),
		Total:        amountTo,
	}, nil
}

// Execute runs the full exchange: validation, balance checks, a pending
// transaction record and the atomic ledger transfer that completes it.
func (uc *DefaultExchangeUsecase) Execute(ctx context.Context, input *exchangedto.ExchangeInput) (*exchangedto.ExchangeOutput, error) {
	startTime := time.Now()

	request, err := uc.validateInput(input)
	if err != nil {
		return nil, err
	}

	fromBalance, err := uc.BalanceRepo.GetBalance(ctx, request.userID, request.from)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			return nil, domain.ErrSourceBalanceNotFound
		}
		return nil, err
	}
	if _, err := uc.BalanceRepo.GetBalance(ctx, request.userID, request.to); err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			return nil, domain.ErrDestinationBalanceNotFound
		}
		return nil, err
	}
	if fromBalance.Amount.LessThan(request.amount) {
		return nil, domain.ErrInsufficientBalance
	}

	quote := uc.Oracle.GetPrices(ctx)
	rate, err := ConversionRate(request.from, request.to, quote)
	if err != nil {
		return nil, err
	}
	amountTo := request.amount.Mul(rate)

	transaction := &domain.Transaction{
		ID:           uuid.New().String(),
		UserID:       request.userID,
		FromCurrency: request.from,
		ToCurrency:   request.to,
		AmountFrom:   request.amount,
		AmountTo:     amountTo,
		Rate:         rate,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now(),
	}
	if err := uc.TransactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	err = uc.Ledger.Transfer(ctx, domain.TransferParams{
		UserID:        request.userID,
		FromCurrency:  request.from,
		AmountFrom:    request.amount,
		ToCurrency:    request.to,
		AmountTo:      amountTo,
		TransactionID: transaction.ID,
	})
	if err != nil {
		slog.Error("exchange transfer failed",
			"transaction_id", transaction.ID,
			"user_id", request.userID,
			"error", err.Error())
		if markErr := uc.TransactionRepo.MarkRejected(ctx, transaction.ID, err.Error()); markErr != nil {
			slog.Error("failed to mark transaction rejected",
				"transaction_id", transaction.ID,
				"error", markErr.Error())
		}
		transaction.Status = domain.StatusRejected
		transaction.ErrorMessage = err.Error()
		uc.observeOutcome(transaction, startTime)
		uc.publish(transaction)
		return nil, err
	}

	transaction.Status = domain.StatusCompleted
	uc.observeOutcome(transaction, startTime)
	uc.publish(transaction)

	return &exchangedto.ExchangeOutput{Transaction: transaction}, nil
}

func (uc *DefaultExchangeUsecase) observeOutcome(transaction *domain.Transaction, startTime time.Time) {
	if uc.Metrics == nil {
		return
	}
	from, to := transaction.FromCurrency.String(), transaction.ToCurrency.String()
	switch transaction.Status {
	case domain.StatusCompleted:
		uc.Metrics.ExchangesCompletedTotal.WithLabelValues(from, to).Inc()
		amount, _ := transaction.AmountFrom.Float64()
		uc.Metrics.ExchangeAmountTotal.WithLabelValues(from).Add(amount)
	case domain.StatusRejected:
		uc.Metrics.ExchangesRejectedTotal.WithLabelValues(from, to).Inc()
	}
	uc.Metrics.ExchangeDuration.WithLabelValues(string(transaction.Status)).Observe(time.Since(startTime).Seconds())
}

func (uc *DefaultExchangeUsecase) publish(transaction *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishExchange(transaction); err != nil {
		slog.Error("failed to publish exchange event",
			"transaction_id", transaction.ID,
			"error", err.Error())
	}
}
