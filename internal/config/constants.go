package config

import "time"

// Defaults for values not present in the environment
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultStorageDriver = "memory"
	DefaultSQLitePath    = "myhero.db"

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "myhero"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultUnlockTZOffset    = "+05:30"
	DefaultCountdownInterval = time.Second
	DefaultFlagCacheSize     = 10000
	DefaultFlagCacheTTL      = 30 * time.Second
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 16
	DefaultRateLimit         = 1000
	DefaultRateWindow        = 5 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort   = "invalid PORT value"
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgUnlockTarget  = "unlock target"
)

// Warnings for values that are unsafe outside development
const (
	WarnDefaultDBPassword = "DB_PASSWORD is the default value - please set a secure password"
	WarnInsecureCookie    = "VISITOR_COOKIE_SECURE is off in production - visitor cookies will travel over plain HTTP"
	WarnMemoryStorage     = "STORAGE_DRIVER=memory in production - unlock flags are lost on restart"
)
