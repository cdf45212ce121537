package handlers

import (
	"errors"
	"net/http"
	"strconv"

	httpdto "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/exchange"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler struct {
	TransactionRepo domain.TransactionRepository
}

func NewTransactionHandler(transactionRepo domain.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{TransactionRepo: transactionRepo}
}

type transactionListResponse struct {
	Transactions []httpdto.TransactionResponse `json:"transactions"`
	Total        int64                         `json:"total"`
	Page         int                           `json:"page"`
	Limit        int                           `json:"limit"`
}

func toTransactionResponse(transaction *domain.Transaction) httpdto.TransactionResponse {
	return httpdto.TransactionResponse{
		ID:           transaction.ID,
		FromCurrency: transaction.FromCurrency.String(),
		ToCurrency:   transaction.ToCurrency.String(),
		AmountFrom:   transaction.AmountFrom.String(),
		AmountTo:     transaction.AmountTo.String(),
		Rate:         transaction.Rate.String(),
		Status:       string(transaction.Status),
		ErrorMessage: transaction.ErrorMessage,
		CreatedAt:    transaction.CreatedAt,
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		respondError(w, http.StatusUnauthorized, "missing user")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	filter := domain.TransactionFilter{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}

	transactions, total, err := h.TransactionRepo.ListByUser(r.Context(), user, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	responses := make([]httpdto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, toTransactionResponse(transaction))
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	respondJSON(w, http.StatusOK, transactionListResponse{
		Transactions: responses,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	})
}

// Show handles GET /api/transactions/{id}
func (h *TransactionHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		respondError(w, http.StatusUnauthorized, "missing user")
		return
	}

	transaction, err := h.TransactionRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if transaction.UserID != user {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}

	respondJSON(w, http.StatusOK, toTransactionResponse(transaction))
}
