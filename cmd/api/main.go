package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tripledger/docs"
	"tripledger/internal/config"
	"tripledger/internal/database"
	"tripledger/internal/expense"
	"tripledger/internal/ledger"
	"tripledger/internal/member"
	"tripledger/internal/rates"
	"tripledger/pkg/logging"
	"tripledger/pkg/metrics"
	mw "tripledger/pkg/middleware"
)

// @title        Trip Ledger API
// @version      1.0
// @description  Shared-expense ledger and settlement engine for group trips
// @BasePath     /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database", "reference_currency", cfg.ReferenceCurrency)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo)
	expenseHandler := expense.NewHandler(expenseService)

	// Member feature (expense repo injected for referential integrity checks)
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, expenseRepo)
	memberHandler := member.NewHandler(memberService)

	// Rate table
	ratesRepo := rates.NewRepository(db)
	ratesService := rates.NewService(ratesRepo, cfg.ReferenceCurrency)
	ratesHandler := rates.NewHandler(ratesService)

	// Ledger views (balances, settlement plan, summaries)
	ledgerService := ledger.NewService(expenseRepo, memberRepo, ratesService)
	ledgerHandler := ledger.NewHandler(ledgerService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(metrics.Middleware)
	r.Use(mw.MemberContext(cfg.JWTSecret))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/members", memberHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/rates", ratesHandler.Routes())
		r.Mount("/ledger", ledgerHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
