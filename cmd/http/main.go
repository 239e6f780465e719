package main

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/app/delivery/http/routers"
	"carepulse-service/internal/app/drivers/database"
	"carepulse-service/internal/app/drivers/logger"
	"carepulse-service/internal/app/drivers/messaging"
	"carepulse-service/internal/app/drivers/storage"
	"carepulse-service/internal/app/services/core/appointments"
	"carepulse-service/internal/app/services/core/auth"
	"carepulse-service/internal/app/services/core/doctors"
	"carepulse-service/internal/app/services/core/patients"
	"carepulse-service/internal/app/services/core/users"
	"carepulse-service/internal/app/services/shared/documentstore"
	"carepulse-service/internal/app/services/shared/locker"
	"carepulse-service/internal/app/services/shared/notification"
	"carepulse-service/internal/app/services/shared/redis"
	sharedStorage "carepulse-service/internal/app/services/shared/storage"
	"carepulse-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
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

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("store_driver", internalConfig.App.StoreDriver),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	ctx := context.Background()
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	var (
		store               contracts.DocumentStore
		redisRepository     contracts.RedisRepository
		objectStore         contracts.ObjectStore
		notificationService contracts.NotificationService
	)

	switch internalConfig.App.StoreDriver {
	case constvars.StoreDriverMemory:
		store = documentstore.NewMemoryStore(documentstore.WithUniqueField(constvars.MongoCollectionUsers, "email"))
		redisRepository = redis.NewMemoryRepository()
		objectStore = sharedStorage.NewMemoryObjectStore(internalConfig.Storage.BucketName, internalConfig.Storage.PublicEndpoint, internalConfig.Storage.ProjectID)
		notificationService = notification.NewLogNotificationService(log)

	case constvars.StoreDriverMongoDB:
		bootstrap.MongoDB = database.NewMongoDB(ctx, bootstrap.DriverConfig)
		bootstrap.Redis = database.NewRedisClient(ctx, bootstrap.DriverConfig)
		bootstrap.Minio = storage.NewMinio(ctx, bootstrap.DriverConfig, internalConfig.Storage.BucketName)
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)

		store = documentstore.NewMongoStore(bootstrap.MongoDB, log)
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		objectStore = sharedStorage.NewMinioObjectStore(bootstrap.Minio, internalConfig.Storage.BucketName, internalConfig.Storage.PublicEndpoint, internalConfig.Storage.ProjectID, log)
		channel := messaging.NewRabbitMQChannel(bootstrap.RabbitMQ, internalConfig.Notification.Queue)
		notificationService = notification.NewRabbitMQNotificationService(channel, internalConfig.Notification.Queue, log)

	default:
		return fmt.Errorf("unsupported store driver %q", internalConfig.App.StoreDriver)
	}

	// Shared
	lockService := locker.NewLockService(redisRepository, log)

	// Repositories
	userRepository := users.NewUserRepository(store)
	patientRepository := patients.NewPatientRepository(store)
	appointmentRepository := appointments.NewAppointmentRepository(store)

	// Usecases
	userUsecase := users.NewUserUsecase(userRepository, log)
	patientUsecase := patients.NewPatientUsecase(
		patientRepository,
		objectStore,
		internalConfig.Storage.IdentificationMaxUploadSizeInMB<<20,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		patientRepository,
		lockService,
		notificationService,
		time.Duration(internalConfig.Admin.AppointmentLockTimeInSeconds)*time.Second,
		location,
		log,
	)
	authUsecase := auth.NewAuthUsecase(
		redisRepository,
		internalConfig.Admin.PasskeyHash,
		internalConfig.JWT.Secret,
		time.Duration(internalConfig.Admin.SessionExpiredTimeInHours)*time.Hour,
		log,
	)
	doctorUsecase := doctors.NewDoctorUsecase(nil)

	if internalConfig.Admin.PasskeyHash == "" {
		log.Warn("APP_ADMIN_PASSKEY_HASH is empty, admin login is disabled")
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		log,
		middlewares.NewMiddlewares(log, authUsecase, internalConfig),
		controllers.NewUserController(log, userUsecase, patientUsecase),
		controllers.NewPatientController(log, patientUsecase, internalConfig),
		controllers.NewAppointmentController(log, appointmentUsecase, doctorUsecase, location),
		controllers.NewDoctorController(log, doctorUsecase),
		controllers.NewAuthController(log, authUsecase),
		controllers.NewValidationController(log),
	)
	return nil
}
