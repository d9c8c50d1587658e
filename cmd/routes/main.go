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
	"github.com/sakhipath/sakhipath/services/routes/gateway"
	"github.com/sakhipath/sakhipath/services/routes/handler"
	"github.com/sakhipath/sakhipath/services/routes/repository"
	"github.com/sakhipath/sakhipath/services/routes/usecase"
)

func main() {
	appName := "routes-service"
	configPath := "config/routes.env"
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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	routeRepo := repository.NewRouteRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	routeGW := gateway.NewRouteGW(configs, natsClient)

	// Initialize usecase
	routeUC := usecase.NewRouteUC(configs, routeRepo, routeGW)

	// Initialize handlers
	h := handler.NewHandler(routeUC, configs)

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
