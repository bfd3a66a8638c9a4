package main

import (
	"context"
	"log"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/delivery/http/controllers"
	"meeting-scheduler-service/internal/app/delivery/http/middlewares"
	"meeting-scheduler-service/internal/app/delivery/http/routers"
	"meeting-scheduler-service/internal/app/drivers/database"
	"meeting-scheduler-service/internal/app/drivers/logger"
	"meeting-scheduler-service/internal/app/drivers/messaging"
	"meeting-scheduler-service/internal/app/services/core/availability"
	"meeting-scheduler-service/internal/app/services/core/callback"
	"meeting-scheduler-service/internal/app/services/core/scheduling"
	"meeting-scheduler-service/internal/app/services/shared/locker"
	"meeting-scheduler-service/internal/app/services/shared/notifier"
	"meeting-scheduler-service/internal/app/services/shared/pendingrequest"
	"meeting-scheduler-service/internal/app/services/shared/preference"
	"meeting-scheduler-service/internal/app/services/shared/redis"
	"meeting-scheduler-service/internal/app/services/shared/solver"
	"meeting-scheduler-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Notifier.Driver == constvars.NotifierDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	pendingRequestStore := pendingrequest.NewPendingRequestStore(
		redisRepository,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.PendingRequest.TTLInHours)*time.Hour,
	)
	preferenceRepository := preference.NewPreferenceMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.PreferenceDBName,
	)
	solverClient := solver.NewSolverClient(bootstrap.Logger, bootstrap.InternalConfig)

	userNotifier, err := newUserNotifier(bootstrap)
	if err != nil {
		return err
	}

	// Sweeper
	sweeper := pendingrequest.NewSweeper(bootstrap.Logger, bootstrap.InternalConfig, lockerService, pendingRequestStore)
	sweeper.Start(context.Background())
	bootstrap.SweeperStop = sweeper.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(preferenceRepository, bootstrap.InternalConfig, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Scheduling
	schedulingUsecase := scheduling.NewSchedulingUsecase(
		availabilityUsecase,
		pendingRequestStore,
		solverClient,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	schedulingController := controllers.NewSchedulingController(bootstrap.Logger, schedulingUsecase)

	// Scheduler callback
	schedulerCallbackUsecase := callback.NewSchedulerCallbackUsecase(
		pendingRequestStore,
		userNotifier,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	schedulerCallbackController := controllers.NewSchedulerCallbackController(bootstrap.Logger, schedulerCallbackUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		availabilityController,
		schedulingController,
		schedulerCallbackController,
	)
	return nil
}

func newUserNotifier(bootstrap *config.Bootstrap) (contracts.UserNotifier, error) {
	notifierConfig := bootstrap.InternalConfig.Notifier
	switch notifierConfig.Driver {
	case constvars.NotifierDriverRabbitMQ:
		return notifier.NewQueueNotifier(bootstrap.RabbitMQ, bootstrap.Logger, notifierConfig.RabbitMQQueue)
	default:
		if notifierConfig.Driver != constvars.NotifierDriverSlack {
			bootstrap.Logger.Warn("Unknown notifier driver, using slack",
				zap.String("notifier_driver", notifierConfig.Driver),
			)
		}
		return notifier.NewSlackNotifier(
			bootstrap.Logger,
			notifierConfig.SlackAPIBaseUrl,
			notifierConfig.SlackBotToken,
			notifierConfig.SlackMessagesPerSecond,
		), nil
	}
}
