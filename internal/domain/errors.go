package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgFlagNotFound       = "flag not found"

	// Configuration errors
	ErrMsgInvalidTarget  = "invalid unlock target"
	ErrMsgInvalidOffset  = "invalid utc offset"
	ErrMsgUnknownDriver  = "unknown storage driver"
	ErrMsgInvalidVisitor = "invalid visitor id"
)

var (
	// ErrStorageUnavailable wraps any failure talking to the flag store
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	// ErrFlagNotFound is returned by stores when no value exists for a key
	ErrFlagNotFound = errors.New(ErrMsgFlagNotFound)

	ErrInvalidTarget  = errors.New(ErrMsgInvalidTarget)
	ErrInvalidOffset  = errors.New(ErrMsgInvalidOffset)
	ErrUnknownDriver  = errors.New(ErrMsgUnknownDriver)
	ErrInvalidVisitor = errors.New(ErrMsgInvalidVisitor)
)
