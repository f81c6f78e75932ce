package unlock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

var ist = time.FixedZone("IST", int((5*time.Hour+30*time.Minute)/time.Second))

// istDate builds an instant from IST wall-clock fields
func istDate(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, ist)
}

// memFlag is an in-memory Flag with optional failure injection
type memFlag struct {
	mu       sync.Mutex
	set      bool
	readErr  error
	writeErr error
	clearErr error
	sets     int
	clears   int
}

func (f *memFlag) IsSet(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return false, f.readErr
	}
	return f.set, nil
}

func (f *memFlag) Set(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.set = true
	return nil
}

func (f *memFlag) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.set = false
	return nil
}

func (f *memFlag) isSet() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

var errStorageDown = errors.New("storage disabled")

func brokenFlag() *memFlag {
	return &memFlag{readErr: errStorageDown, writeErr: errStorageDown, clearErr: errStorageDown}
}

// MockFlag mocks Flag for call-order assertions
type MockFlag struct {
	mock.Mock
}

func (m *MockFlag) IsSet(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlag) Set(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFlag) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
