package monitoring

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"
)

const (
	StatusUp      = "UP"
	StatusDown    = "DOWN"
	StatusWarning = "WARNING"
)

// HealthChecker manages system health checks.
type HealthChecker struct {
	db            *sql.DB
	services      map[string]HealthCheckFunc
	lastResults   map[string]*CheckResult
	checkInterval time.Duration
	mu            sync.RWMutex
}

type HealthCheckFunc func(context.Context) *CheckResult

type CheckResult struct {
	Status      string                 `json:"status"`
	Component   string                 `json:"component"`
	Details     map[string]interface{} `json:"details,omitempty"`
	LastChecked time.Time              `json:"last_checked"`
	Error       string                 `json:"error,omitempty"`
}

type SystemHealth struct {
	Status     string                  `json:"status"`
	Components map[string]*CheckResult `json:"components"`
	Timestamp  time.Time               `json:"timestamp"`
}

// FundAPIProbe reports whether the external fund data API responds.
type FundAPIProbe interface {
	Available(ctx context.Context) bool
}

// NewHealthChecker registers the default checks. The fund API probe is
// optional; pass nil to skip it.
func NewHealthChecker(db *sql.DB, probe FundAPIProbe, interval time.Duration) *HealthChecker {
	hc := &HealthChecker{
		db:            db,
		services:      make(map[string]HealthCheckFunc),
		lastResults:   make(map[string]*CheckResult),
		checkInterval: interval,
	}

	if db != nil {
		hc.RegisterCheck("database", hc.DatabaseCheck)
	}
	if probe != nil {
		hc.RegisterCheck("fund_api", FundAPICheck(probe))
	}
	hc.RegisterCheck("memory", hc.MemoryCheck)
	hc.RegisterCheck("goroutines", hc.GoroutineCheck)

	return hc
}

func (h *HealthChecker) RegisterCheck(name string, check HealthCheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.services[name] = check
}

// StartChecks begins periodic health checking.
func (h *HealthChecker) StartChecks(ctx context.Context) {
	h.performChecks(ctx)

	ticker := time.NewTicker(h.checkInterval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				h.performChecks(ctx)
			}
		}
	}()
}

func (h *HealthChecker) performChecks(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for name, check := range h.services {
		result := check(ctx)
		result.LastChecked = time.Now()
		h.lastResults[name] = result
	}
}

// GetHealth returns current system health status.
func (h *HealthChecker) GetHealth() *SystemHealth {
	h.mu.RLock()
	defer h.mu.RUnlock()

	health := &SystemHealth{
		Status:     StatusUp,
		Components: make(map[string]*CheckResult),
		Timestamp:  time.Now(),
	}

	for name, result := range h.lastResults {
		health.Components[name] = result
		if result.Status == StatusDown {
			health.Status = StatusDown
		} else if result.Status == StatusWarning && health.Status != StatusDown {
			health.Status = StatusWarning
		}
	}

	return health
}

// DatabaseCheck checks database connectivity and pool pressure.
func (h *HealthChecker) DatabaseCheck(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Status:    StatusUp,
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if err := h.db.PingContext(ctx); err != nil {
		result.Status = StatusDown
		result.Error = fmt.Sprintf("Database connection failed: %v", err)
		return result
	}

	stats := h.db.Stats()
	result.Details = map[string]interface{}{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.Milliseconds(),
	}

	if stats.OpenConnections > 0 && float64(stats.InUse)/float64(stats.OpenConnections) > 0.8 {
		result.Status = StatusWarning
		result.Error = "High connection pool utilization"
	}

	return result
}

// FundAPICheck reports availability of the external fund data API.
// A down API is a warning, not an outage: the static fund tables keep
// recommendations working.
func FundAPICheck(probe FundAPIProbe) HealthCheckFunc {
	return func(ctx context.Context) *CheckResult {
		result := &CheckResult{
			Status:    StatusUp,
			Component: "fund_api",
			Details:   make(map[string]interface{}),
		}

		available := probe.Available(ctx)
		result.Details["available"] = available
		if !available {
			result.Status = StatusWarning
			result.Error = "Fund data API unreachable, serving static fund data"
		}

		return result
	}
}

// MemoryCheck checks heap usage.
func (h *HealthChecker) MemoryCheck(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Status:    StatusUp,
		Component: "memory",
		Details:   make(map[string]interface{}),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	result.Details = map[string]interface{}{
		"heap_alloc":     memStats.HeapAlloc,
		"heap_sys":       memStats.HeapSys,
		"heap_inuse":     memStats.HeapInuse,
		"heap_objects":   memStats.HeapObjects,
		"gc_pause_total": memStats.PauseTotalNs,
		"gc_num":         memStats.NumGC,
	}

	if memStats.HeapSys > 0 && float64(memStats.HeapInuse)/float64(memStats.HeapSys) > 0.9 {
		result.Status = StatusWarning
		result.Error = "High memory usage"
	}

	return result
}

// GoroutineCheck monitors goroutine count.
func (h *HealthChecker) GoroutineCheck(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Status:    StatusUp,
		Component: "goroutines",
		Details:   make(map[string]interface{}),
	}

	count := runtime.NumGoroutine()
	result.Details["count"] = count

	if count > 10000 {
		result.Status = StatusWarning
		result.Error = "High number of goroutines"
	}

	return result
}

// HTTPHandler serves the health report with service metadata.
func (h *HealthChecker) HTTPHandler(version string, features []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := h.GetHealth()

		w.Header().Set("Content-Type", "application/json")
		if health.Status == StatusDown {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     health.Status,
			"message":    "SIP Advisor API is running",
			"version":    version,
			"features":   features,
			"components": health.Components,
			"timestamp":  health.Timestamp,
		})
	}
}
