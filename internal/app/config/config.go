package config

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carepulse"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			StoreDriver:                utils.GetEnvString("APP_STORE_DRIVER", constvars.StoreDriverMongoDB),
			CorsAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "carepulse-secret"),
		},
		Admin: AppAdmin{
			PasskeyHash:                  utils.GetEnvString("APP_ADMIN_PASSKEY_HASH", ""),
			SessionExpiredTimeInHours:    utils.GetEnvInt("APP_ADMIN_SESSION_EXPIRED_TIME_IN_HOURS", 8),
			LoginRateLimitPerMinute:      utils.GetEnvInt("APP_ADMIN_LOGIN_RATE_LIMIT_PER_MINUTE", 5),
			LoginRateLimitBurst:          utils.GetEnvInt("APP_ADMIN_LOGIN_RATE_LIMIT_BURST", 5),
			LoginBlockDurationInMinutes:  utils.GetEnvInt("APP_ADMIN_LOGIN_BLOCK_DURATION_IN_MINUTES", 15),
			AppointmentLockTimeInSeconds: utils.GetEnvInt("APP_APPOINTMENT_LOCK_TIME_IN_SECONDS", 10),
		},
		Storage: AppStorage{
			BucketName:                      utils.GetEnvString("APP_STORAGE_BUCKET_NAME", "identification-documents"),
			PublicEndpoint:                  utils.GetEnvString("APP_STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			ProjectID:                       utils.GetEnvString("APP_STORAGE_PROJECT_ID", "carepulse"),
			IdentificationMaxUploadSizeInMB: utils.GetEnvInt64("APP_STORAGE_IDENTIFICATION_MAX_UPLOAD_SIZE_IN_MB", 10),
		},
		Notification: AppNotification{
			Queue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "appointment_notifications"),
		},
	}
}
