package handlers

import (
	"net/http"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type PricesHandler struct {
	Oracle domain.RateOracle
}

func NewPricesHandler(oracle domain.RateOracle) *PricesHandler {
	return &PricesHandler{Oracle: oracle}
}

type pricesEntry struct {
	USDBuy  string `json:"usd_buy"`
	USDSell string `json:"usd_sell"`
	CLPBuy  string `json:"clp_buy"`
	CLPSell string `json:"clp_sell"`
}

type pricesResponse struct {
	Prices map[string]pricesEntry `json:"prices"`
}

// Index handles GET /api/prices
func (h *PricesHandler) Index(w http.ResponseWriter, r *http.Request) {
	quote := h.Oracle.GetPrices(r.Context())

	prices := make(map[string]pricesEntry, len(quote.Rates))
	for currency, rates := range quote.Rates {
		prices[strings.ToLower(currency.String())] = pricesEntry{
			USDBuy:  rates.USDBuy.String(),
			USDSell: rates.USDSell.String(),
			CLPBuy:  rates.CLPBuy.String(),
			CLPSell: rates.CLPSell.String(),
		}
	}

	respondJSON(w, http.StatusOK, pricesResponse{Prices: prices})
}
