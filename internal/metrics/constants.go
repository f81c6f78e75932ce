package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every collector registered by this service
const Namespace = "myhero"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Unlock metric names
const (
	MetricNameUnlockTransitions   = "unlock_transitions_total"
	MetricNameUnlockTicks         = "unlock_ticks_total"
	MetricNameUnlockStorageErrors = "unlock_storage_errors_total"
	MetricNameUnlockSessions      = "unlock_sessions_active"
)

// Delivery metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameEventsDropped   = "events_dropped_total"
	MetricNameSSEClients      = "sse_clients"
	MetricNameFlagCache       = "flag_cache_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Unlock metric help text
const (
	HelpTextUnlockTransitions   = "Total number of sessions that reached the unlocked state, by reason"
	HelpTextUnlockTicks         = "Total number of lock state re-evaluations, by ticker"
	HelpTextUnlockStorageErrors = "Total number of swallowed persisted flag failures, by operation"
	HelpTextUnlockSessions      = "Current number of running unlock schedulers"
)

// Delivery metric help text
const (
	HelpTextEventsPublished = "Total number of presentation events queued for delivery"
	HelpTextEventsDropped   = "Total number of presentation events dropped on full buffers"
	HelpTextSSEClients      = "Current number of connected SSE clients"
	HelpTextFlagCache       = "Total number of flag cache lookups, by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelReason    = "reason"
	LabelKind      = "kind"
	LabelOperation = "op"
	LabelResult    = "result"
)

// Label values
const (
	TickKindInitial = "initial"
	TickKindFast    = "fast"
	TickKindSlow    = "slow"
	TickKindManual  = "manual"

	OperationRead   = "read"
	OperationWrite  = "write"
	OperationDelete = "delete"

	CacheResultHit  = "hit"
	CacheResultMiss = "miss"

	// PathUnmatched labels requests that did not match any route
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
