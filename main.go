package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/api"
	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/status"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/operator"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("cashbook-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     envConfig.RedisAddress,
		Password: envConfig.RedisPassword,
		DB:       envConfig.RedisDB,
	})
	defer redisClient.Close()

	sessions := auth.NewSessionManager(
		envConfig.JWTSecret,
		envConfig.SessionTTL,
		envConfig.Production,
		auth.NewRevocationStore(redisClient),
	)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.BcryptCost)

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.HTTPPort,
		AllowedOrigins: envConfig.AllowedOrigins,
		Service:        svc,
		Sessions:       sessions,
		Checks: map[string]status.Check{
			"postgres": dbStorage.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
	}
	logger.Info("cashbook-server stopped")
}
