package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spendsense/internal/config"
	"spendsense/internal/database"
	"spendsense/internal/handlers"
	"spendsense/internal/middleware"
	"spendsense/internal/repositories"
	"spendsense/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		slog.Error("failed to access underlying database handle", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if err := db.CreateIndexes(); err != nil {
		slog.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	aggregator := services.NewSpendingAggregator(services.AggregatorOptions{})
	budgetService := services.NewBudgetService(budgetRepo, cfg.Budget, metrics)
	categoryService := services.NewCategoryService()
	ingestService := services.NewTransactionIngestService(
		transactionRepo, categoryService, metrics, cfg.Security.MaxIngestBatchSize)
	reportService := services.NewSpendingReportService(
		transactionRepo, budgetService, aggregator, metrics)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	transactionHandler := handlers.NewTransactionHandler(ingestService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	reportHandler := handlers.NewSpendingReportHandler(reportService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	rateLimiter := middleware.NewRateLimiter(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())
	e.Use(echomiddleware.CORS())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(cfg.Auth))
	api.POST("/transactions", transactionHandler.IngestTransactions)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/categories", transactionHandler.ListUsedCategories)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.PUT("/budgets/:category", budgetHandler.SetBudget)
	api.DELETE("/budgets/:category", budgetHandler.RemoveBudget)
	api.GET("/categories", budgetHandler.ListCategories)
	api.GET("/reports/monthly", reportHandler.GetMonthlyReport)
	api.GET("/reports/daily-comparison", reportHandler.GetDailyComparison)
	api.GET("/reports/category-summary", reportHandler.GetCategorySummary)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo, services.NewTransactionGenerator(0))
		api.POST("/dev/seed", devHandler.SeedDemoData)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server starting",
			"addr", server.Addr,
			"environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(e)
}

// waitForShutdown waits for SIGTERM or SIGINT and drains in-flight requests
func waitForShutdown(e *echo.Echo) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	slog.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
