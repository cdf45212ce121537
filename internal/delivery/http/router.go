package http

import (
	"net/http"

	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Usecase         usecase.ExchangeUsecase
	BalanceRepo     domain.BalanceRepository
	TransactionRepo domain.TransactionRepository
	Oracle          domain.RateOracle
}

// NewRouter wires the API routes to their handlers.
func NewRouter(deps RouterDeps) *chi.Mux {
	exchangeHandler := handlers.NewExchangeHandler(deps.Usecase)
	balanceHandler := handlers.NewBalanceHandler(deps.BalanceRepo, deps.Oracle)
	transactionHandler := handlers.NewTransactionHandler(deps.TransactionRepo)
	pricesHandler := handlers.NewPricesHandler(deps.Oracle)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/balances", balanceHandler.List)
		r.Get("/prices", pricesHandler.Index)
		r.Post("/exchange", exchangeHandler.Create)
		r.Post("/exchange/preview", exchangeHandler.Preview)
		r.Get("/transactions", transactionHandler.List)
		r.Get("/transactions/{id}", transactionHandler.Show)
	})

	return r
}
