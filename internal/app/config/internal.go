package config

type InternalConfig struct {
	App            App
	Callback       AppCallback
	Scheduler      AppScheduler
	PendingRequest AppPendingRequest
	Notifier       AppNotifier
	Availability   AppAvailability
	MongoDB        AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	SuperadminAPIKey           string
	// CallbackMaxRequests caps callback calls per IP per second.
	CallbackMaxRequests int
}

// AppCallback holds the shared secret the solver presents on X-Callback-Token.
type AppCallback struct {
	SecretToken string
}

type AppScheduler struct {
	BaseUrl              string
	Username             string
	Password             string
	CallbackUrl          string
	HTTPTimeoutInSeconds int
	DelayInMs            int
}

type AppPendingRequest struct {
	TTLInHours    int
	SweepCronSpec string
	MaxAgeInHours int
	SweepBatch    int
}

type AppNotifier struct {
	// Driver selects the notifier implementation: slack or rabbitmq.
	Driver                 string
	SlackBotToken          string
	SlackAPIBaseUrl        string
	SlackMessagesPerSecond float64
	RabbitMQQueue          string
}

type AppAvailability struct {
	DefaultSlotMinutes int
}

type AppMongoDB struct {
	PreferenceDBName string
}
