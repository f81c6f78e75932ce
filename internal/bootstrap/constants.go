package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group)
	LogFilePermission = 0640
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMyhero      = "Starting myhero"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Component Wiring
// =============================================================================

const (
	LogMsgComponentsReady   = "Components initialized"
	ErrMsgFailedOpenStore   = "failed to open flag store"
	ErrMsgFailedBuildTarget = "failed to build unlock target"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer = "Shutting down server..."
	LogMsgServerStopped      = "Server stopped"
	LogMsgServerForcedStop   = "Server forced to shutdown"
	LogMsgStoreCloseFailed   = "Flag store close failed"
	LogMsgComponentStopped   = "Component stopped"

	ComponentHub       = "sse_hub"
	ComponentScheduler = "scheduler"
	ComponentPool      = "worker_pool"
	ComponentStore     = "flag_store"
)
