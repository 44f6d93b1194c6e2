package main

import (
	"context"
	"log"
	"time"

	"github.com/kliklance/kliklance/internal/pkg/config"
	"github.com/kliklance/kliklance/internal/pkg/database"
	"github.com/kliklance/kliklance/internal/pkg/health"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/middleware"
	natspkg "github.com/kliklance/kliklance/internal/pkg/nats"
	"github.com/kliklance/kliklance/internal/pkg/server"
	wspkg "github.com/kliklance/kliklance/internal/pkg/websocket"
	"github.com/kliklance/kliklance/services/realtime/gateway"
	"github.com/kliklance/kliklance/services/realtime/handler"
	wsHandler "github.com/kliklance/kliklance/services/realtime/handler/websocket"
	"github.com/kliklance/kliklance/services/realtime/repository"
	"github.com/kliklance/kliklance/services/realtime/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "realtime-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/realtime.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Wire the realtime service
	realtimeRepo := repository.NewRealtimeRepo(configs, postgresClient.GetDB(), redisClient)
	realtimeGW := gateway.NewRealtimeGW(natsClient)
	realtimeUC := usecase.NewRealtimeUC(configs, realtimeRepo, realtimeGW)

	hub := wspkg.NewHub()
	wsH := wsHandler.NewHandler(realtimeUC, hub)
	serviceHandler := handler.NewHandler(wsH, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	serviceHandler.RegisterRoutes(e)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)
}
