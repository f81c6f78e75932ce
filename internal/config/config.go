package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string
	Version     string
	LogDir      string

	// Flag storage
	StorageDriver     string `validate:"oneof=memory postgres sqlite"`
	SQLitePath        string `validate:"required_if=StorageDriver sqlite"`
	DBUser            string `validate:"required_if=StorageDriver postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=StorageDriver postgres"`
	DBPort            string `validate:"required_if=StorageDriver postgres"`
	DBName            string `validate:"required_if=StorageDriver postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	FlagCacheSize     int           `validate:"min=0"`
	FlagCacheTTL      time.Duration `validate:"min=0"`

	// Unlock target and page session
	UnlockMonth       int           `validate:"min=1,max=12"`
	UnlockDay         int           `validate:"min=1,max=31"`
	UnlockTZName      string        `validate:"max=16"`
	UnlockTZOffset    string        `validate:"required"`
	FastTickInterval  time.Duration `validate:"gt=0"`
	SlowTickInterval  time.Duration `validate:"gt=0"`
	CountdownInterval time.Duration `validate:"gt=0"`
	DevParam          string        `validate:"required,excludesall=&= "`
	DevParamValue     string        `validate:"required,excludesall=&= "`
	UnlockFlagKey     string        `validate:"required,max=64"`
	VisitorCookie     string        `validate:"required,excludesall=;= "`
	CookieSecure      bool

	// Workers and HTTP
	WorkerCount     int `validate:"min=1"`
	WorkerQueueSize int `validate:"min=1"`
	TrustedProxies  []string
	RateLimit       int           `validate:"min=1"`
	RateWindow      time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", logger.DefaultServiceName),
		Version:     getEnv("VERSION", logger.DefaultVersion),
		LogDir:      getEnv("LOG_DIR", ""),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver)),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		FlagCacheSize:     getEnvAsInt("FLAG_CACHE_SIZE", DefaultFlagCacheSize),
		FlagCacheTTL:      getEnvAsDuration("FLAG_CACHE_TTL", DefaultFlagCacheTTL),

		UnlockMonth:       getEnvAsInt("UNLOCK_MONTH", int(unlock.DefaultMonth)),
		UnlockDay:         getEnvAsInt("UNLOCK_DAY", unlock.DefaultDay),
		UnlockTZName:      getEnv("UNLOCK_TZ_NAME", unlock.DefaultZoneName),
		UnlockTZOffset:    getEnv("UNLOCK_TZ_OFFSET", DefaultUnlockTZOffset),
		FastTickInterval:  getEnvAsDuration("FAST_TICK_INTERVAL", unlock.DefaultFastInterval),
		SlowTickInterval:  getEnvAsDuration("SLOW_TICK_INTERVAL", unlock.DefaultSlowInterval),
		CountdownInterval: getEnvAsDuration("COUNTDOWN_INTERVAL", DefaultCountdownInterval),
		DevParam:          getEnv("DEV_PARAM", domain.DefaultDevParam),
		DevParamValue:     getEnv("DEV_PARAM_VALUE", domain.DefaultDevParamValue),
		UnlockFlagKey:     getEnv("UNLOCK_FLAG_KEY", domain.DefaultFlagKey),
		VisitorCookie:     getEnv("VISITOR_COOKIE", domain.DefaultVisitorCookie),
		CookieSecure:      getEnvAsBool("VISITOR_COOKIE_SECURE", false),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:       getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimit),
		RateWindow:      getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateWindow),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and that the target day exists every year
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, formatValidationError(err))
	}
	if _, err := c.UnlockTarget(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// UnlockTarget builds the fixed-offset unlock target
func (c *Config) UnlockTarget() (unlock.Target, error) {
	offset, err := unlock.ParseOffset(c.UnlockTZOffset)
	if err != nil {
		return unlock.Target{}, fmt.Errorf("%s: %w", ErrMsgUnlockTarget, err)
	}
	target, err := unlock.NewTarget(time.Month(c.UnlockMonth), c.UnlockDay, c.UnlockTZName, offset)
	if err != nil {
		return unlock.Target{}, fmt.Errorf("%s: %w", ErrMsgUnlockTarget, err)
	}
	return target, nil
}

// LoggerConfig maps the logging fields onto logger.Config
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment,
		c.Environment == logger.EnvironmentDev)
}

// Warnings lists settings that work but are unsafe in production
func (c *Config) Warnings() []string {
	if c.Environment != logger.EnvironmentProduction {
		return nil
	}
	var warnings []string
	if c.StorageDriver == domain.StorageDriverPostgres && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, WarnDefaultDBPassword)
	}
	if !c.CookieSecure {
		warnings = append(warnings, WarnInsecureCookie)
	}
	if c.StorageDriver == domain.StorageDriverMemory {
		warnings = append(warnings, WarnMemoryStorage)
	}
	return warnings
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", e.Field(), e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration value, falling back on absence or parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
