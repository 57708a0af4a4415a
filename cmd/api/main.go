package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/config"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/database"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/health"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/middleware"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	natspkg "github.com/ziswafid/ziswaf-manager/internal/pkg/nats"
	nrpkg "github.com/ziswafid/ziswaf-manager/internal/pkg/newrelic"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/server"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/session"
	authGateway "github.com/ziswafid/ziswaf-manager/services/auth/gateway"
	authHandler "github.com/ziswafid/ziswaf-manager/services/auth/handler"
	authHTTP "github.com/ziswafid/ziswaf-manager/services/auth/handler/http"
	authRepository "github.com/ziswafid/ziswaf-manager/services/auth/repository"
	authUsecase "github.com/ziswafid/ziswaf-manager/services/auth/usecase"
	ziswafGateway "github.com/ziswafid/ziswaf-manager/services/ziswaf/gateway"
	ziswafHandler "github.com/ziswafid/ziswaf-manager/services/ziswaf/handler"
	ziswafHTTP "github.com/ziswafid/ziswaf-manager/services/ziswaf/handler/http"
	ziswafRepository "github.com/ziswafid/ziswaf-manager/services/ziswaf/repository"
	ziswafUsecase "github.com/ziswafid/ziswaf-manager/services/ziswaf/usecase"
)

func main() {
	appName := "ziswaf-manager"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return postgresClient.Close()
	})

	// Redis holds live OTP records in every mode; AUTH_BACKEND only picks
	// where sessions live.
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return redisClient.Close()
	})

	var sessionStore session.Store
	if configs.Auth.Backend == models.AuthBackendMemory {
		sessionStore = session.NewMemoryStore()
	} else {
		sessionStore = session.NewRedisStore(redisClient)
	}
	sessions := session.NewManager(sessionStore)

	// NATS carries OTP delivery requests and domain events. The loopback
	// notify channel needs no broker, so a missing NATS URL only disables
	// event publishing in that mode.
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			natsClient.Close()
			return nil
		})
	} else if configs.Notify.Channel != models.NotifyChannelLoopback {
		zapLogger.Fatal("NATS URL is required unless the loopback notify channel is selected")
	}

	var notifier authGateway.NotificationChannel
	switch configs.Notify.Channel {
	case models.NotifyChannelLoopback:
		notifier = authGateway.NewLoopbackChannel()
	default:
		notifier = authGateway.NewNATSChannel(natsClient)
	}

	userRepo := authRepository.NewUserRepo(configs, postgresClient.GetDB(), redisClient)
	userGW := authGateway.NewUserGW(notifier, natsClient)
	authUC := authUsecase.NewAuthUC(userRepo, userGW, sessions, configs)

	ziswafRepo := ziswafRepository.NewZiswafRepo(configs, postgresClient.GetDB())
	ziswafGW := ziswafGateway.NewZiswafGW(natsClient)
	ziswafUC := ziswafUsecase.NewZiswafUC(ziswafRepo, ziswafGW, configs)

	authHandlers := authHandler.NewHandler(
		authHTTP.NewAuthHandler(authUC),
		authHTTP.NewSessionHandler(authUC),
		configs,
	)
	ziswafHandlers := ziswafHandler.NewHandler(
		ziswafHTTP.NewDonorHandler(ziswafUC),
		ziswafHTTP.NewDonationHandler(ziswafUC),
		ziswafHTTP.NewTeamHandler(ziswafUC),
		ziswafHTTP.NewTemplateHandler(ziswafUC),
		configs,
	)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	authHandlers.RegisterRoutes(e)
	ziswafHandlers.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
