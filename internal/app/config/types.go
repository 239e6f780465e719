package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App          App
		JWT          AppJWT
		Admin        AppAdmin
		Storage      AppStorage
		Notification AppNotification
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		StoreDriver                string
		CorsAllowedOrigins         []string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		ShutdownTimeoutInSeconds   int
		RequestBodyLimitInMegabyte int
	}
	AppJWT struct {
		Secret string
	}
	AppAdmin struct {
		PasskeyHash                  string
		SessionExpiredTimeInHours    int
		LoginRateLimitPerMinute      int
		LoginRateLimitBurst          int
		LoginBlockDurationInMinutes  int
		AppointmentLockTimeInSeconds int
	}
	// AppStorage describes where identification documents live and how their
	// public view URL is composed.
	AppStorage struct {
		BucketName                      string
		PublicEndpoint                  string
		ProjectID                       string
		IdentificationMaxUploadSizeInMB int64
	}
	AppNotification struct {
		Queue string
	}
)
