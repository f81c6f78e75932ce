package domain

// Storage drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Persisted flag defaults
const (
	// DefaultFlagKey is the storage key of the persisted unlock flag
	DefaultFlagKey = "fanwishUnlocked"

	// FlagValueSet is the stored value meaning "unlocked"
	FlagValueSet = "1"
)

// Developer override defaults
const (
	DefaultDevParam      = "dev"
	DefaultDevParamValue = "1"
)

// DefaultVisitorCookie names the cookie scoping a visitor's persisted flag
const DefaultVisitorCookie = "myhero_visitor"
