package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	httpdto "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/exchange"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, httpdto.ErrorResponse{Success: false, Error: message})
}

var requestErrors = []error{
	domain.ErrInvalidCurrency,
	domain.ErrSameCurrency,
	domain.ErrNonPositiveAmount,
	domain.ErrInvalidAmountFormat,
	domain.ErrBelowMinimum,
	domain.ErrPrecisionExceeded,
	domain.ErrQuoteUnavailable,
	domain.ErrSourceBalanceNotFound,
	domain.ErrDestinationBalanceNotFound,
	domain.ErrInsufficientBalance,
}

// respondUsecaseError hides internal failures behind a generic message and
// passes through the domain error taxonomy as unprocessable requests.
func respondUsecaseError(w http.ResponseWriter, err error) {
	for _, known := range requestErrors {
		if errors.Is(err, known) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	respondError(w, http.StatusInternalServerError, "internal error")
}

// userID comes from the authenticating gateway in front of this service.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}
