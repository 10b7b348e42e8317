package cache_warmer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("refresh called without deadline")
	}
	return r.err
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler(&countingRefresher{}, Config{Schedule: "every minute"}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestRunOnceRecordsStats(t *testing.T) {
	refresher := &countingRefresher{}
	s, err := NewScheduler(refresher, DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, s.RunOnce(context.Background()))

	refresher.err = errors.New("database unavailable")
	err = s.RunOnce(context.Background())
	assert.EqualError(t, err, "database unavailable")

	stats := s.Stats()
	assert.Equal(t, int32(2), refresher.calls.Load())
	assert.Equal(t, int64(2), stats.TotalRuns)
	assert.Equal(t, int64(1), stats.SuccessfulRuns)
	assert.Equal(t, int64(1), stats.FailedRuns)
	assert.Equal(t, "database unavailable", stats.LastError)
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(&countingRefresher{}, DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Error(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.Error(t, s.Stop(ctx))
}
