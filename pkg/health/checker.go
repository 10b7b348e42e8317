package health

import (
	"context"
	"sync"
	"time"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	// StatusDegraded means the component answers but something is off
	StatusDegraded Status = "degraded"
)

// CheckResult represents the result of a health check
type CheckResult struct {
	Status    Status                 `json:"status"`
	Component string                 `json:"component"`
	Message   string                 `json:"message,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Checker is an interface for health checkers
type Checker interface {
	Check(ctx context.Context) CheckResult
	Name() string
}

// HealthChecker aggregates multiple health checkers
type HealthChecker struct {
	checkers []Checker
	timeout  time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(timeout time.Duration) *HealthChecker {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &HealthChecker{timeout: timeout}
}

// Register adds a checker to the health checker
func (h *HealthChecker) Register(checker Checker) {
	h.checkers = append(h.checkers, checker)
}

// Check runs all registered checks in parallel and folds them into one status.
// Any unhealthy component makes the whole service unhealthy.
func (h *HealthChecker) Check(ctx context.Context) (Status, map[string]CheckResult) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	results := make(map[string]CheckResult, len(h.checkers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, checker := range h.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			result := c.Check(ctx)

			mu.Lock()
			results[c.Name()] = result
			mu.Unlock()
		}(checker)
	}
	wg.Wait()

	overall := StatusHealthy
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			return StatusUnhealthy, results
		case StatusDegraded:
			overall = StatusDegraded
		}
	}

	return overall, results
}

// HealthResponse represents the JSON response for health checks
type HealthResponse struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version,omitempty"`
	Checks    map[string]CheckResult `json:"checks"`
}

// NewCheckResult creates a new check result
func NewCheckResult(component string, status Status, message string, err error) CheckResult {
	result := CheckResult{
		Component: component,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}

	if err != nil {
		result.Error = err.Error()
		result.Status = StatusUnhealthy
	}

	return result
}

// NewHealthyResult creates a healthy check result
func NewHealthyResult(component, message string) CheckResult {
	return NewCheckResult(component, StatusHealthy, message, nil)
}

// NewUnhealthyResult creates an unhealthy check result
func NewUnhealthyResult(component string, err error) CheckResult {
	return NewCheckResult(component, StatusUnhealthy, "", err)
}

// WithMetadata adds metadata to a check result
func (r CheckResult) WithMetadata(key string, value interface{}) CheckResult {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}
	r.Metadata[key] = value
	return r
}

// WithDuration adds duration to a check result
func (r CheckResult) WithDuration(d time.Duration) CheckResult {
	r.Duration = d
	return r
}

// FuncChecker adapts a plain probe function into a Checker.
// A failing probe is reported as degraded, not unhealthy.
type FuncChecker struct {
	name  string
	probe func(ctx context.Context) error
}

// NewFuncChecker creates a checker for optional dependencies such as read replicas
func NewFuncChecker(name string, probe func(ctx context.Context) error) *FuncChecker {
	return &FuncChecker{name: name, probe: probe}
}

// Check runs the probe
func (f *FuncChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	if err := f.probe(ctx); err != nil {
		result := NewCheckResult(f.name, StatusDegraded, err.Error(), nil)
		return result.WithDuration(time.Since(start))
	}
	return NewHealthyResult(f.name, "ok").WithDuration(time.Since(start))
}

// Name returns the checker name
func (f *FuncChecker) Name() string {
	return f.name
}
