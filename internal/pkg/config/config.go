package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		ScheduleResyncInterval time.Duration
	}

	Scheduling struct {
		CapacityLimit                  int
		ProductionLeadTime             time.Duration
		MaxSuggestions                 int
		SearchWindowDays               int
		BackendTimeout                 time.Duration
		DefaultTimeSlot                string
		DeliveryFee                    float64
		SlotPolicyEnabled              bool
		DuplicateCustomerPolicyEnabled bool
		ProjectionSize                 int
		DefaultCity                    string
		DefaultPostalCode              string
		DefaultProvince                string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // per-request deadline
		RateLimiterQPS   int           // token bucket refill rate
		RateLimiterBurst int           // token bucket capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	OrderService struct {
		GRPCHost      string
		StatusTimeout time.Duration
	}

	Kafka struct {
		PortHealthcheck   string
		Brokers           string
		Topic             string
		NotificationTopic string
		ConsumerGroup     string
		Sarama            Sarama
		Handlers          KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Scheduling   Scheduling
		Server       HTTPServer
		Database     Database
		OrderService OrderService
		Kafka        Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	resyncInterval, err := osGetEnvDuration("BACKGROUND_SCHEDULE_RESYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scheduling, err := loadScheduling()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusTimeout, err := osGetEnvDuration("ORDER_SERVICE_STATUS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			ScheduleResyncInterval: resyncInterval,
		},
		Scheduling: scheduling,
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		OrderService: OrderService{
			GRPCHost:      os.Getenv("ORDER_SERVICE_GRPC_HOST"),
			StatusTimeout: statusTimeout,
		},
		Kafka: Kafka{
			Brokers:           os.Getenv("KAFKA_BROKERS"),
			Topic:             os.Getenv("KAFKA_TOPIC"),
			NotificationTopic: os.Getenv("KAFKA_NOTIFICATION_TOPIC"),
			ConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:   os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

// loadScheduling reads the SCHEDULING_* variables. Unset numeric values
// fall back to the defaults below; the policy switches default to off.
func loadScheduling() (Scheduling, error) {
	const (
		defaultCapacityLimit      = 3
		defaultProductionLeadTime = 10 * 24 * time.Hour
		defaultMaxSuggestions     = 5
		defaultSearchWindowDays   = 14
		defaultBackendTimeout     = 3 * time.Second
		defaultTimeSlot           = "9:00-17:00"
		defaultDeliveryFee        = 150.00
		defaultProjectionSize     = 4096
	)

	var (
		cfg Scheduling
		err error
	)

	if cfg.CapacityLimit, err = osGetIntOr("SCHEDULING_CAPACITY_LIMIT", defaultCapacityLimit); err != nil {
		return cfg, err
	}
	if cfg.ProductionLeadTime, err = osGetDurationOr("SCHEDULING_PRODUCTION_LEAD_TIME", defaultProductionLeadTime); err != nil {
		return cfg, err
	}
	if cfg.MaxSuggestions, err = osGetIntOr("SCHEDULING_MAX_SUGGESTIONS", defaultMaxSuggestions); err != nil {
		return cfg, err
	}
	if cfg.SearchWindowDays, err = osGetIntOr("SCHEDULING_SEARCH_WINDOW_DAYS", defaultSearchWindowDays); err != nil {
		return cfg, err
	}
	if cfg.BackendTimeout, err = osGetDurationOr("SCHEDULING_BACKEND_TIMEOUT", defaultBackendTimeout); err != nil {
		return cfg, err
	}
	if cfg.DeliveryFee, err = osGetFloatOr("SCHEDULING_DELIVERY_FEE", defaultDeliveryFee); err != nil {
		return cfg, err
	}
	if cfg.SlotPolicyEnabled, err = osGetBool("SCHEDULING_SLOT_POLICY_ENABLED"); err != nil {
		return cfg, err
	}
	if cfg.DuplicateCustomerPolicyEnabled, err = osGetBool("SCHEDULING_DUPLICATE_CUSTOMER_POLICY_ENABLED"); err != nil {
		return cfg, err
	}
	if cfg.ProjectionSize, err = osGetIntOr("SCHEDULING_PROJECTION_SIZE", defaultProjectionSize); err != nil {
		return cfg, err
	}

	cfg.DefaultTimeSlot = os.Getenv("SCHEDULING_DEFAULT_TIME_SLOT")
	if cfg.DefaultTimeSlot == "" {
		cfg.DefaultTimeSlot = defaultTimeSlot
	}
	cfg.DefaultCity = os.Getenv("SCHEDULING_DEFAULT_CITY")
	cfg.DefaultPostalCode = os.Getenv("SCHEDULING_DEFAULT_POSTAL_CODE")
	cfg.DefaultProvince = os.Getenv("SCHEDULING_DEFAULT_PROVINCE")

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.ScheduleResyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SCHEDULE_RESYNC_INTERVAL is required")
	}

	if cfg.Scheduling.CapacityLimit < 0 {
		return errors.New("SCHEDULING_CAPACITY_LIMIT must not be negative")
	}
	if cfg.Scheduling.MaxSuggestions < 0 {
		return errors.New("SCHEDULING_MAX_SUGGESTIONS must not be negative")
	}
	if cfg.Scheduling.SearchWindowDays <= 0 {
		return errors.New("SCHEDULING_SEARCH_WINDOW_DAYS must be positive")
	}
	if cfg.Scheduling.BackendTimeout <= 0 {
		return errors.New("SCHEDULING_BACKEND_TIMEOUT must be positive")
	}
	if cfg.Scheduling.DeliveryFee < 0 {
		return errors.New("SCHEDULING_DELIVERY_FEE must not be negative")
	}
	if cfg.Scheduling.ProjectionSize <= 0 {
		return errors.New("SCHEDULING_PROJECTION_SIZE must be positive")
	}

	if cfg.OrderService.GRPCHost == "" {
		return errors.New("ORDER_SERVICE_GRPC_HOST is required")
	}
	if cfg.OrderService.StatusTimeout == time.Duration(0) {
		return errors.New("ORDER_SERVICE_STATUS_TIMEOUT is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.NotificationTopic == "" {
		return errors.New("KAFKA_NOTIFICATION_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetIntOr(s string, fallback int) (int, error) {
	if os.Getenv(s) == "" {
		return fallback, nil
	}
	return osGetInt(s)
}

func osGetDurationOr(s string, fallback time.Duration) (time.Duration, error) {
	if os.Getenv(s) == "" {
		return fallback, nil
	}
	return osGetEnvDuration(s)
}

func osGetFloatOr(s string, fallback float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
