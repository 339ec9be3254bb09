package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/config"
	"github.com/greenbasket/greenbasket/internal/pkg/database"
	"github.com/greenbasket/greenbasket/internal/pkg/health"
	"github.com/greenbasket/greenbasket/internal/pkg/impact"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/middleware"
	"github.com/greenbasket/greenbasket/internal/pkg/nats"
	nrpkg "github.com/greenbasket/greenbasket/internal/pkg/newrelic"
	purchasegw "github.com/greenbasket/greenbasket/services/purchases/gateway"
	purchasehandler "github.com/greenbasket/greenbasket/services/purchases/handler"
	purchasehttp "github.com/greenbasket/greenbasket/services/purchases/handler/http"
	purchasenats "github.com/greenbasket/greenbasket/services/purchases/handler/nats"
	purchaserepo "github.com/greenbasket/greenbasket/services/purchases/repository"
	purchaseuc "github.com/greenbasket/greenbasket/services/purchases/usecase"
	userhandler "github.com/greenbasket/greenbasket/services/users/handler"
	userhttp "github.com/greenbasket/greenbasket/services/users/handler/http"
	userrepo "github.com/greenbasket/greenbasket/services/users/repository"
	useruc "github.com/greenbasket/greenbasket/services/users/usecase"
)

func main() {
	appName := "greenbasket"
	configPath := "config/greenbasket.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Load and validate the impact lookup tables before touching any
	// external dependency; bad table data is a startup failure.
	tables, err := impact.LoadTables(configs.Impact.TablesPath)
	if err != nil {
		zapLogger.Fatal("Failed to load impact tables", logger.Err(err))
	}
	calculator := impact.NewCalculator(tables, impact.DefaultRewardPolicy(), configs.Impact.TransportModeling)

	logger.Info("Impact tables loaded",
		logger.Strings("categories", tables.Categories()),
		logger.Bool("transport_modeling", configs.Impact.TransportModeling))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	purchaseRepository := purchaserepo.NewPurchaseRepository(configs, postgresClient.GetDB(), redisClient)
	userRepository := userrepo.NewUserRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	purchaseGW := purchasegw.NewPurchaseGW(natsClient)

	// Initialize usecases
	purchaseUC := purchaseuc.NewPurchaseUC(configs, calculator, purchaseRepository, purchaseGW)
	userUC := useruc.NewUserUC(configs, userRepository)

	// Initialize handlers
	purchaseHandler := purchasehandler.NewHandler(
		purchasehttp.NewPurchaseHandler(purchaseUC),
		purchasehttp.NewDashboardHandler(purchaseUC),
		purchasenats.NewNatsHandler(purchaseUC, natsClient),
		configs,
	)
	userHandler := userhandler.NewHandler(userhttp.NewAuthHandler(userUC), configs)

	// Initialize NATS consumers
	if err := purchaseHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer purchaseHandler.Close()

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	userHandler.RegisterRoutes(e)
	purchaseHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
