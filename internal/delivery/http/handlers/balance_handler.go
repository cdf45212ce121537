package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	"github.com/shopspring/decimal"
)

type BalanceHandler struct {
	BalanceRepo domain.BalanceRepository
	Oracle      domain.RateOracle
}

func NewBalanceHandler(balanceRepo domain.BalanceRepository, oracle domain.RateOracle) *BalanceHandler {
	return &BalanceHandler{
		BalanceRepo: balanceRepo,
		Oracle:      oracle,
	}
}

type balanceEntry struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	USDValue string `json:"usd_value"`
}

type balancesResponse struct {
	Balances []balanceEntry  `json:"balances"`
	TotalUSD string          `json:"total_usd"`
	Summary  balancesSummary `json:"summary"`
}

type balancesSummary struct {
	TotalUSD      string    `json:"total_usd"`
	CurrencyCount int       `json:"currency_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// List handles GET /api/balances
func (h *BalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		respondError(w, http.StatusUnauthorized, "missing user")
		return
	}

	balances, err := h.BalanceRepo.ListByUser(r.Context(), user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	// first request provisions the account with the starting balances
	if len(balances) == 0 {
		if err := h.BalanceRepo.SeedBalances(r.Context(), user); err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		balances, err = h.BalanceRepo.ListByUser(r.Context(), user)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	quote := h.Oracle.GetPrices(r.Context())
	totalUSD := decimal.Zero
	entries := make([]balanceEntry, 0, len(balances))
	for _, balance := range balances {
		usdValue := decimal.Zero
		if rate, err := usecase.ConversionRate(balance.Currency, domain.USD, quote); err == nil {
			usdValue = balance.Amount.Mul(rate)
		}
		totalUSD = totalUSD.Add(usdValue)
		entries = append(entries, balanceEntry{
			Currency: balance.Currency.String(),
			Amount:   balance.Amount.String(),
			USDValue: usdValue.String(),
		})
	}

	respondJSON(w, http.StatusOK, balancesResponse{
		Balances: entries,
		TotalUSD: totalUSD.String(),
		Summary: balancesSummary{
			TotalUSD:      totalUSD.String(),
			CurrencyCount: len(entries),
			UpdatedAt:     time.Now(),
		},
	})
}
