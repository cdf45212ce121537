package handlers

import (
	"encoding/json"
	"net/http"

	httpdto "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/exchange"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	exchangedto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/exchange"
)

type ExchangeHandler struct {
	Usecase usecase.ExchangeUsecase
}

func NewExchangeHandler(exchangeUsecase usecase.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{Usecase: exchangeUsecase}
}

func (h *ExchangeHandler) decodeInput(w http.ResponseWriter, r *http.Request) *exchangedto.ExchangeInput {
	user := userID(r)
	if user == "" {
		respondError(w, http.StatusUnauthorized, "missing user")
		return nil
	}

	var request httpdto.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return nil
	}
	if request.FromCurrency == "" || request.ToCurrency == "" || request.Amount == "" {
		respondError(w, http.StatusUnprocessableEntity, "Missing required parameters")
		return nil
	}

	return &exchangedto.ExchangeInput{
		UserID:       user,
		FromCurrency: request.FromCurrency,
		ToCurrency:   request.ToCurrency,
		Amount:       request.Amount.String(),
	}
}

// Preview handles POST /api/exchange/preview
func (h *ExchangeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	input := h.decodeInput(w, r)
	if input == nil {
		return
	}

	output, err := h.Usecase.Preview(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, httpdto.PreviewResponse{
		Success:      true,
		FromCurrency: output.FromCurrency.String(),
		ToCurrency:   output.ToCurrency.String(),
		Amount:       output.Amount.String(),
		AmountTo:     output.AmountTo.String(),
		Rate:         output.Rate.String(),
		RateDisplay:  output.RateDisplay.String(),
		Total:        output.Total.String(),
	})
}

// Create handles POST /api/exchange
func (h *ExchangeHandler) Create(w http.ResponseWriter, r *http.Request) {
	input := h.decodeInput(w, r)
	if input == nil {
		return
	}

	output, err := h.Usecase.Execute(r.Context(), input)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	transaction := output.Transaction
	respondJSON(w, http.StatusOK, httpdto.ExchangeResponse{
		Success: true,
		Transaction: httpdto.TransactionResponse{
			ID:           transaction.ID,
			FromCurrency: transaction.FromCurrency.String(),
			ToCurrency:   transaction.ToCurrency.String(),
			AmountFrom:   transaction.AmountFrom.String(),
			AmountTo:     transaction.AmountTo.String(),
			Rate:         transaction.Rate.String(),
			Status:       string(transaction.Status),
			CreatedAt:    transaction.CreatedAt,
		},
	})
}
