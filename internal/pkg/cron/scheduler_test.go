package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()
	var first, second atomic.Int32

	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceSurfacesJobErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	var ran atomic.Int32

	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return boom
	})
	s.AddJob("healthy", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// A failing job never blocks the ones after it.
	assert.Equal(t, int32(1), ran.Load())
}

func TestRunOnceRecoversPanickingJob(t *testing.T) {
	s := NewScheduler()

	s.AddJob("panicking", time.Hour, func(ctx context.Context) error {
		panic("unexpected state")
	})

	var err error
	require.NotPanics(t, func() {
		err = s.RunOnce(context.Background())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicking")
}

func TestStopWaitsForJobLoops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("ticking", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(35 * time.Millisecond)
	s.Stop()

	// Runs once at start, then on each tick until stopped.
	got := runs.Load()
	assert.GreaterOrEqual(t, got, int32(2))

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}
