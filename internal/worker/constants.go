package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobQueueFull    = "Worker queue full, dropping job"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Countdown Job
// ============================================================================

const (
	LogMsgCountdownNotDelivered = "Countdown tick not queued for delivery"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
