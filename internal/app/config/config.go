package config

import (
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/utils"

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
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
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
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", ""),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			CallbackMaxRequests:        utils.GetEnvInt("APP_CALLBACK_MAX_REQUESTS", 5),
		},
		Callback: AppCallback{
			SecretToken: utils.GetEnvString("CALLBACK_SECRET_TOKEN", ""),
		},
		Scheduler: AppScheduler{
			BaseUrl:              utils.GetEnvString("SCHEDULER_API_BASE_URL", "http://localhost:8081"),
			Username:             utils.GetEnvString("SCHEDULER_API_USERNAME", ""),
			Password:             utils.GetEnvString("SCHEDULER_API_PASSWORD", ""),
			CallbackUrl:          utils.GetEnvString("SCHEDULER_CALLBACK_URL", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("SCHEDULER_HTTP_TIMEOUT_IN_SECONDS", 15),
			DelayInMs:            utils.GetEnvInt("SCHEDULER_DELAY_IN_MS", 0),
		},
		PendingRequest: AppPendingRequest{
			TTLInHours:    utils.GetEnvInt("PENDING_REQUEST_TTL_IN_HOURS", 72),
			SweepCronSpec: utils.GetEnvString("PENDING_REQUEST_SWEEP_CRON_SPEC", constvars.SweeperFallbackCronSpec),
			MaxAgeInHours: utils.GetEnvInt("PENDING_REQUEST_MAX_AGE_IN_HOURS", 48),
			SweepBatch:    utils.GetEnvInt("PENDING_REQUEST_SWEEP_BATCH", 500),
		},
		Notifier: AppNotifier{
			Driver:                 utils.GetEnvString("NOTIFIER_DRIVER", constvars.NotifierDriverSlack),
			SlackBotToken:          utils.GetEnvString("SLACK_BOT_TOKEN", ""),
			SlackAPIBaseUrl:        utils.GetEnvString("SLACK_API_BASE_URL", "https://slack.com/api"),
			SlackMessagesPerSecond: utils.GetEnvFloat("SLACK_MESSAGES_PER_SECOND", 1),
			RabbitMQQueue:          utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "scheduler.notifications"),
		},
		Availability: AppAvailability{
			DefaultSlotMinutes: utils.GetEnvInt("AVAILABILITY_DEFAULT_SLOT_MINUTES", constvars.DefaultSlotDurationMinutes),
		},
		MongoDB: AppMongoDB{
			PreferenceDBName: utils.GetEnvString("MONGODB_PREFERENCE_DB_NAME", "scheduler"),
		},
	}
}
