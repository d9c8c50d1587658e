package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sakhipath/sakhipath/internal/pkg/config"
	"github.com/sakhipath/sakhipath/internal/pkg/database"
	"github.com/sakhipath/sakhipath/internal/pkg/health"
	"github.com/sakhipath/sakhipath/internal/pkg/logger"
	"github.com/sakhipath/sakhipath/internal/pkg/middleware"
	"github.com/sakhipath/sakhipath/internal/pkg/nats"
	"github.com/sakhipath/sakhipath/internal/pkg/server"
	"github.com/sakhipath/sakhipath/services/sos/gateway"
	"github.com/sakhipath/sakhipath/services/sos/handler"
	"github.com/sakhipath/sakhipath/services/sos/repository"
	"github.com/sakhipath/sakhipath/services/sos/usecase"
)

func main() {
	appName := "sos-service"
	configPath := "config/sos.env"
	configs := config.InitConfig(configPath)

	// Initialize structured logging
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	sosRepo := repository.NewSOSRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	sosGW := gateway.NewSOSGW(configs, natsClient)

	// Initialize usecase
	sosUC := usecase.NewSOSUC(configs, sosRepo, sosGW)

	// Initialize handlers
	h := handler.NewHandler(sosUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
