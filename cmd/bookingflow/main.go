package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/config"
	"github.com/piresc/bookingflow/internal/pkg/database"
	"github.com/piresc/bookingflow/internal/pkg/events"
	"github.com/piresc/bookingflow/internal/pkg/health"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/middleware"
	nrpkg "github.com/piresc/bookingflow/internal/pkg/newrelic"
	"github.com/piresc/bookingflow/internal/pkg/server"
	pkgws "github.com/piresc/bookingflow/internal/pkg/websocket"
	bookingGateway "github.com/piresc/bookingflow/services/bookings/gateway"
	bookingHandler "github.com/piresc/bookingflow/services/bookings/handler"
	bookingRepository "github.com/piresc/bookingflow/services/bookings/repository"
	bookingUsecase "github.com/piresc/bookingflow/services/bookings/usecase"
	locationGateway "github.com/piresc/bookingflow/services/location/gateway"
	locationHandler "github.com/piresc/bookingflow/services/location/handler"
	locationRepository "github.com/piresc/bookingflow/services/location/repository"
	locationUsecase "github.com/piresc/bookingflow/services/location/usecase"
	safetyGateway "github.com/piresc/bookingflow/services/safety/gateway"
	safetyHandler "github.com/piresc/bookingflow/services/safety/handler"
	safetyRepository "github.com/piresc/bookingflow/services/safety/repository"
	safetyUsecase "github.com/piresc/bookingflow/services/safety/usecase"
)

func main() {
	configPath := "config/bookingflow.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	appMetrics := metrics.New()

	bus, err := events.Open(configs, appMetrics, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open event bus",
			logger.String("driver", configs.Events.Driver),
			logger.Err(err))
	}

	backend := httpclient.NewClient(configs.Backend, zapLogger,
		httpclient.WithObserver(appMetrics.ObserveBackend),
		httpclient.WithStateObserver(appMetrics.ObserveBreaker))
	wsManager := pkgws.NewManager()

	// Location
	locationRepo := locationRepository.NewLocationRepository(redisClient, configs.Location.TTL)
	locationGW := locationGateway.NewLocationGW(bus.Publisher)
	locationUC := locationUsecase.NewLocationUC(configs.Location, configs.Safety.TrackingInterval, locationRepo, locationGW)

	// Bookings
	bookingRepo := bookingRepository.NewBookingRepository(redisClient, configs.Booking.SnapshotTTL)
	bookingGW := bookingGateway.NewBookingGW(backend, bus.Publisher)
	bookingUC := bookingUsecase.NewBookingUC(configs.Booking, bookingRepo, bookingGW, appMetrics)

	// Safety
	safetyRepo := safetyRepository.NewSafetyRepository(redisClient)
	safetyGW := safetyGateway.NewSafetyGW(backend, bus.Publisher)
	safetyUC := safetyUsecase.NewSafetyUC(configs.Safety, safetyRepo, safetyGW, locationUC, wsManager, appMetrics)

	bookings := bookingHandler.NewHandler(bookingUC, wsManager, bus.Subscriber)
	locations := locationHandler.NewHandler(locationUC)
	safety := safetyHandler.NewHandler(safetyUC)

	if err := bookings.InitEventConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize event consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery sits right under the New Relic transaction so panics are reported on it
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(appMetrics.EchoMiddleware())

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("events", bus)
	healthService.AddChecker("backend", backend)
	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", appMetrics.Handler())

	authMiddleware := middleware.JWTAuthMiddleware(configs.JWT)
	requestContext := middleware.RequestContextMiddleware(appName)

	api := e.Group("/api/v1", authMiddleware, requestContext)
	limited := api.Group("", middleware.UserRateLimiter(configs.RateLimit.Limit, configs.RateLimit.Period, redisClient.GetClient()))
	bookings.RegisterRoutes(limited, e.Group("/ws", authMiddleware, requestContext))
	safety.RegisterRoutes(limited)
	locations.RegisterRoutes(limited)

	// SOS is never rate limited
	safety.RegisterSOSRoutes(api.Group("/safety"))

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("events", func(context.Context) error {
		bus.Close()
		return nil
	})
	shutdown.Register("event-consumers", func(context.Context) error {
		bookings.StopEventConsumers()
		return nil
	})
	shutdown.Register("location-trackers", func(context.Context) error {
		locationUC.StopAll()
		return nil
	})
	shutdown.Register("checkin-sessions", func(context.Context) error {
		safetyUC.Close()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
}
