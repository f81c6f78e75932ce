package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
)

// Success messages
const (
	MsgUnlockFlagCleared = "Unlock flag cleared"
)

// Log messages
const (
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgVisitorIssued       = "Issued new visitor id"
	LogMsgUnlockStateResolved = "Unlock state resolved"
	LogMsgUnlockFlagReset     = "Unlock flag reset by visitor"
	LogMsgResetFailed         = "Unlock flag reset failed"
	LogMsgSessionStarted      = "Unlock session started"
)
