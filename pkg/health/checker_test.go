package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker struct {
	name   string
	status Status
}

func (s staticChecker) Check(ctx context.Context) CheckResult {
	return NewCheckResult(s.name, s.status, "", nil)
}

func (s staticChecker) Name() string { return s.name }

func TestHealthCheckerAggregatesStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy}, StatusUnhealthy},
		{"nothing registered", nil, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewHealthChecker(0)
			for i, status := range tt.statuses {
				checker.Register(staticChecker{name: string(rune('a' + i)), status: status})
			}

			status, results := checker.Check(context.Background())
			assert.Equal(t, tt.expected, status)
			assert.Len(t, results, len(tt.statuses))
		})
	}
}

func TestFuncCheckerDegradesOnError(t *testing.T) {
	failing := NewFuncChecker("replicas", func(ctx context.Context) error {
		return errors.New("replica 0: connection refused")
	})
	passing := NewFuncChecker("replicas", func(ctx context.Context) error { return nil })

	result := failing.Check(context.Background())
	assert.Equal(t, StatusDegraded, result.Status)
	assert.Contains(t, result.Message, "connection refused")

	assert.Equal(t, StatusHealthy, passing.Check(context.Background()).Status)
	assert.Equal(t, "replicas", failing.Name())
}

func TestCheckResultHelpers(t *testing.T) {
	result := NewUnhealthyResult("database", errors.New("down")).WithMetadata("idle", 2)

	assert.Equal(t, StatusUnhealthy, result.Status)
	assert.Equal(t, "down", result.Error)
	assert.Equal(t, 2, result.Metadata["idle"])
}
