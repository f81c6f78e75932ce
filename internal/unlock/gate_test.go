package unlock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEvaluate_DecisionOrder(t *testing.T) {
	ctx := context.Background()
	target := DefaultTarget()
	before := istDate(2025, time.August, 18, 12, 0, 0)
	after := istDate(2025, time.August, 19, 12, 0, 0)

	t.Run("persisted flag wins over everything", func(t *testing.T) {
		flag := &memFlag{set: true}
		state := Evaluate(ctx, target, before, flag, true)
		assert.Equal(t, UnlockedBy(ReasonPersisted), state)
		assert.Equal(t, 0, flag.sets)
	})

	t.Run("override before target persists the unlock", func(t *testing.T) {
		flag := &memFlag{}
		state := Evaluate(ctx, target, before, flag, true)
		assert.Equal(t, UnlockedBy(ReasonDeveloperOverride), state)
		assert.True(t, flag.isSet())
	})

	t.Run("elapsed target persists the unlock", func(t *testing.T) {
		flag := &memFlag{}
		state := Evaluate(ctx, target, after, flag, false)
		assert.Equal(t, UnlockedBy(ReasonTimeElapsed), state)
		assert.True(t, flag.isSet())
	})

	t.Run("otherwise locked with remaining time", func(t *testing.T) {
		flag := &memFlag{}
		state := Evaluate(ctx, target, before, flag, false)
		assert.True(t, state.IsLocked())
		assert.Equal(t, 12*time.Hour, state.Remaining)
		assert.False(t, flag.isSet())
	})
}

func TestEvaluate_UnlockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	target := DefaultTarget()
	flag := &memFlag{}

	first := Evaluate(ctx, target, istDate(2025, time.August, 1, 0, 0, 0), flag, true)
	assert.Equal(t, ReasonDeveloperOverride, first.Reason)

	for _, now := range []time.Time{
		istDate(2025, time.August, 2, 0, 0, 0),
		istDate(2025, time.August, 19, 6, 0, 0),
		istDate(2025, time.December, 1, 0, 0, 0),
	} {
		for _, override := range []bool{true, false} {
			assert.Equal(t, UnlockedBy(ReasonPersisted), Evaluate(ctx, target, now, flag, override))
		}
	}
}

func TestEvaluate_NeverLockedAtOrAfterTarget(t *testing.T) {
	ctx := context.Background()
	target := DefaultTarget()
	instant := istDate(2025, time.August, 19, 0, 0, 0)

	for offset := time.Duration(0); offset < 24*time.Hour; offset += 47 * time.Minute {
		state := Evaluate(ctx, target, instant.Add(offset), &memFlag{}, false)
		assert.Equal(t, UnlockedBy(ReasonTimeElapsed), state, "offset %s", offset)
	}

	justBefore := Evaluate(ctx, target, instant.Add(-time.Nanosecond), &memFlag{}, false)
	assert.True(t, justBefore.IsLocked())
	assert.Equal(t, time.Nanosecond, justBefore.Remaining)
}

func TestEvaluate_StorageFailureDegradesToTime(t *testing.T) {
	ctx := context.Background()
	target := DefaultTarget()

	locked := Evaluate(ctx, target, istDate(2025, time.August, 18, 0, 0, 0), brokenFlag(), false)
	assert.True(t, locked.IsLocked())

	elapsed := Evaluate(ctx, target, istDate(2025, time.August, 19, 1, 0, 0), brokenFlag(), false)
	assert.Equal(t, UnlockedBy(ReasonTimeElapsed), elapsed)

	override := Evaluate(ctx, target, istDate(2025, time.August, 18, 0, 0, 0), brokenFlag(), true)
	assert.Equal(t, UnlockedBy(ReasonDeveloperOverride), override)

	assert.True(t, Evaluate(ctx, target, istDate(2025, time.August, 18, 0, 0, 0), nil, false).IsLocked())
}

func TestEvaluate_OverrideWritesOnce(t *testing.T) {
	ctx := context.Background()
	flag := new(MockFlag)
	flag.On("IsSet", mock.Anything).Return(false, nil).Once()
	flag.On("Set", mock.Anything).Return(nil).Once()

	state := Evaluate(ctx, DefaultTarget(), istDate(2025, time.May, 1, 0, 0, 0), flag, true)

	assert.Equal(t, ReasonDeveloperOverride, state.Reason)
	flag.AssertExpectations(t)
	flag.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	target := DefaultTarget()
	before := istDate(2025, time.August, 10, 0, 0, 0)

	t.Run("clears stale flag before target without override", func(t *testing.T) {
		flag := &memFlag{set: true}

		assert.True(t, Reconcile(ctx, target, before, false, flag))
		assert.False(t, flag.isSet())

		state := Evaluate(ctx, target, before, flag, false)
		assert.True(t, state.IsLocked())
	})

	t.Run("keeps flag with override", func(t *testing.T) {
		flag := &memFlag{set: true}
		assert.False(t, Reconcile(ctx, target, before, true, flag))
		assert.True(t, flag.isSet())
	})

	t.Run("keeps flag once target elapsed", func(t *testing.T) {
		flag := &memFlag{set: true}
		assert.False(t, Reconcile(ctx, target, istDate(2025, time.August, 19, 9, 0, 0), false, flag))
		assert.True(t, flag.isSet())
	})

	t.Run("clears again on the day after target", func(t *testing.T) {
		flag := &memFlag{set: true}
		assert.True(t, Reconcile(ctx, target, istDate(2025, time.August, 20, 0, 0, 0), false, flag))
		assert.False(t, flag.isSet())
	})

	t.Run("swallows clear failures", func(t *testing.T) {
		assert.False(t, Reconcile(ctx, target, before, false, brokenFlag()))
		assert.False(t, Reconcile(ctx, target, before, false, nil))
	})
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"dev=1", true},
		{"a=b&dev=1", true},
		{"dev=0", false},
		{"dev", false},
		{"", false},
		{"dev=1&%zz", false},
		{"DEV=1", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOverride(tt.query, "dev", "1"), tt.query)
	}
}

func TestStateHelpers(t *testing.T) {
	assert.True(t, LockedFor(time.Second).SameStatus(LockedFor(time.Hour)))
	assert.False(t, LockedFor(time.Second).SameStatus(UnlockedBy(ReasonTimeElapsed)))
	assert.False(t, UnlockedBy(ReasonPersisted).SameStatus(UnlockedBy(ReasonTimeElapsed)))
	assert.Equal(t, time.Duration(0), LockedFor(-time.Second).Remaining)
	assert.Equal(t, "Unlocked{dev-param-unlock}", UnlockedBy(ReasonDeveloperOverride).String())
	assert.Equal(t, "Locked{1s}", LockedFor(time.Second).String())
}
