package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/config"
	httpapi "github.com/LavaJover/shvark-exchange-service/internal/delivery/http"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/pricing"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ExchangeDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ExchangeDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	balanceRepo := repository.NewDefaultBalanceRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	ledgerRepo := repository.NewDefaultLedgerRepository(db)

	// Init metrics
	exchangeMetrics := metrics.NewExchangeMetrics()

	// Init rate oracle
	priceClient := pricing.NewClient(cfg.PriceAPI.URL, cfg.PriceAPI.Timeout)
	quoteCache := pricing.NewQuoteCache(cfg.PriceAPI.CacheTTL)
	oracle := pricing.NewDefaultRateOracle(
		priceClient,
		quoteCache,
		cfg.PriceAPI.MaxRetries,
		cfg.PriceAPI.RetryDelay,
		exchangeMetrics,
	)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher, err := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	if err != nil {
		log.Fatalf("failed to init kafka publisher: %v", err)
	}
	defer publisher.Close()

	// Init exchange usecase
	uc := usecase.NewDefaultExchangeUsecase(
		balanceRepo,
		transactionRepo,
		ledgerRepo,
		oracle,
		publisher,
		exchangeMetrics,
	)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Usecase:         uc,
		BalanceRepo:     balanceRepo,
		TransactionRepo: transactionRepo,
		Oracle:          oracle,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("http server started", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
}
