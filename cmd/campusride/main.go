package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/campusride/internal/pkg/config"
	"github.com/piresc/campusride/internal/pkg/database"
	firebasepkg "github.com/piresc/campusride/internal/pkg/firebase"
	"github.com/piresc/campusride/internal/pkg/health"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/middleware"
	natspkg "github.com/piresc/campusride/internal/pkg/nats"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/pkg/requestcontext"
	"github.com/piresc/campusride/internal/pkg/server"
	"github.com/piresc/campusride/internal/utils"
	busHandler "github.com/piresc/campusride/services/bus/handler"
	busRepository "github.com/piresc/campusride/services/bus/repository"
	busUsecase "github.com/piresc/campusride/services/bus/usecase"
	routeHandler "github.com/piresc/campusride/services/route/handler"
	routeRepository "github.com/piresc/campusride/services/route/repository"
	routeUsecase "github.com/piresc/campusride/services/route/usecase"
	txnGateway "github.com/piresc/campusride/services/transaction/gateway"
	txnHandler "github.com/piresc/campusride/services/transaction/handler"
	txnRepository "github.com/piresc/campusride/services/transaction/repository"
	txnUsecase "github.com/piresc/campusride/services/transaction/usecase"
	tripGateway "github.com/piresc/campusride/services/trip/gateway"
	tripHandler "github.com/piresc/campusride/services/trip/handler"
	tripRepository "github.com/piresc/campusride/services/trip/repository"
	tripUsecase "github.com/piresc/campusride/services/trip/usecase"
	uploadGateway "github.com/piresc/campusride/services/upload/gateway"
	uploadHandler "github.com/piresc/campusride/services/upload/handler"
	uploadUsecase "github.com/piresc/campusride/services/upload/usecase"
	userGateway "github.com/piresc/campusride/services/users/gateway"
	userHandler "github.com/piresc/campusride/services/users/handler"
	userRepository "github.com/piresc/campusride/services/users/repository"
	userUsecase "github.com/piresc/campusride/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "campusride"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/campusride.env"))

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	ctx := context.Background()

	// Firebase and its clients
	app, err := firebasepkg.NewApp(ctx, configs.Firebase)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Firebase", zap.Error(err))
	}

	firestoreClient, err := database.NewFirestoreClient(ctx, app)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Firestore", zap.Error(err))
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Auth", zap.Error(err))
	}

	var messenger tripGateway.Messenger
	if messagingClient, err := app.Messaging(ctx); err != nil {
		zapLogger.Warn("Push notifications disabled", zap.Error(err))
	} else {
		messenger = messagingClient
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Storage", zap.Error(err))
	}
	bucket, err := storageClient.Bucket(configs.Firebase.StorageBucket)
	if err != nil {
		zapLogger.Fatal("Failed to open storage bucket", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize repositories
	userRepo := userRepository.NewUserRepository(configs, firestoreClient, redisClient)
	routeRepo := routeRepository.NewRouteRepository(firestoreClient)
	busRepo := busRepository.NewBusRepository(firestoreClient)
	tripRepo := tripRepository.NewTripRepository(firestoreClient)
	txnRepo := txnRepository.NewTransactionRepository(firestoreClient)

	// Initialize gateways
	identityGW := userGateway.NewIdentityGW(authClient, configs.Firebase)
	tripGW := tripGateway.NewTripGW(natsClient, messenger)
	txnGW := txnGateway.NewTransactionGW(natsClient)
	paymentGW := txnGateway.NewPaymentGW(configs.Paystack)
	objectStoreGW := uploadGateway.NewObjectStoreGW(bucket, configs.Firebase.StorageBucket)

	// Initialize use cases
	userUC, err := userUsecase.NewUserUC(configs, userRepo, identityGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize user use case", zap.Error(err))
	}
	routeUC, err := routeUsecase.NewRouteUC(configs, routeRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize route use case", zap.Error(err))
	}
	busUC, err := busUsecase.NewBusUC(configs, busRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize bus use case", zap.Error(err))
	}
	tripUC, err := tripUsecase.NewTripUC(configs, tripRepo, routeRepo, busRepo, userRepo, tripGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize trip use case", zap.Error(err))
	}
	txnUC, err := txnUsecase.NewTransactionUC(configs, txnRepo, paymentGW, txnGW, tripUC, tripGW, userRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize transaction use case", zap.Error(err))
	}
	uploadUC, err := uploadUsecase.NewUploadUC(configs, objectStoreGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize upload use case", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(requestcontext.Middleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	// Register health endpoints
	healthService := health.NewHealthService(appName, configs.App.Version, 5*time.Second)
	healthService.AddChecker("firestore", firestoreClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("nats", natsClient)
	health.RegisterHealthEndpoints(e, healthService)

	// Register service routes
	auth := middleware.RequireSession(userUC)
	optionalAuth := middleware.OptionalSession(userUC)
	api := e.Group("/api")
	userHandler.NewHandler(userUC).RegisterRoutes(api, auth, optionalAuth)
	routeHandler.NewHandler(routeUC).RegisterRoutes(api, auth)
	busHandler.NewHandler(busUC).RegisterRoutes(api, auth)
	tripHandler.NewHandler(tripUC).RegisterRoutes(api, auth)
	uploadHandler.NewHandler(uploadUC, configs.Server.MaxUploadBytes).RegisterRoutes(api, auth)
	transactions := txnHandler.NewHandler(txnUC)
	transactions.RegisterRoutes(api, auth)
	transactions.RegisterWebhooks(e)

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return firestoreClient.Close() })
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
