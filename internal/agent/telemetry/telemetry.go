// Package telemetry tracks run, oracle, tool, and critic metrics and exposes
// them as Prometheus collectors on the default registry.
package telemetry

import (
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/she-oracle/orchestrator/config"
)

// Telemetry provides run monitoring. All methods are nil-safe so callers can
// hold an optional reference without guarding every call.
type Telemetry struct {
	config config.TelemetryConfig
	logger *log.Logger

	mu              sync.RWMutex
	totalRuns       int64
	fallbackRuns    int64
	oracleRequests  map[string]int64
	toolInvocations map[string]int64
	toolFailures    map[string]int64
	criticVerdicts  map[string]int64

	runsTotal     *prometheus.CounterVec
	oracleTotal   *prometheus.CounterVec
	toolsTotal    *prometheus.CounterVec
	verdictsTotal *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

var registerOnce sync.Once

// New builds a telemetry instance and registers its collectors.
func New(cfg config.TelemetryConfig) *Telemetry {
	t := &Telemetry{
		config:          cfg,
		logger:          log.New(log.Writer(), "[TELEMETRY] ", log.LstdFlags),
		oracleRequests:  map[string]int64{},
		toolInvocations: map[string]int64{},
		toolFailures:    map[string]int64{},
		criticVerdicts:  map[string]int64{},
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_runs_total",
			Help: "Planning runs by outcome (completed, fallback, error).",
		}, []string{"outcome"}),
		oracleTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_requests_total",
			Help: "Oracle generate calls by stage.",
		}, []string{"stage"}),
		toolsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_tool_invocations_total",
			Help: "Capability invocations by tool and status.",
		}, []string{"tool", "status"}),
		verdictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_critic_verdicts_total",
			Help: "Critic verdicts by result.",
		}, []string{"verdict"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "oracle_run_duration_seconds",
			Help:    "End-to-end planning run duration.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}
	registerOnce.Do(func() {
		prometheus.MustRegister(t.runsTotal, t.oracleTotal, t.toolsTotal, t.verdictsTotal, t.runDuration)
	})
	return t
}

// RecordRun counts one finished run and its duration.
func (t *Telemetry) RecordRun(outcome string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.totalRuns++
	if outcome == "fallback" {
		t.fallbackRuns++
	}
	t.mu.Unlock()
	t.runsTotal.WithLabelValues(outcome).Inc()
	t.runDuration.Observe(d.Seconds())
}

// RecordOracleRequest counts one gateway call for a pipeline stage.
func (t *Telemetry) RecordOracleRequest(stage string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.oracleRequests[stage]++
	t.mu.Unlock()
	t.oracleTotal.WithLabelValues(stage).Inc()
}

// RecordToolInvocation counts one capability call.
func (t *Telemetry) RecordToolInvocation(tool string, failed bool) {
	if t == nil {
		return
	}
	status := "ok"
	t.mu.Lock()
	t.toolInvocations[tool]++
	if failed {
		t.toolFailures[tool]++
		status = "failed"
	}
	t.mu.Unlock()
	t.toolsTotal.WithLabelValues(tool, status).Inc()
}

// RecordCriticVerdict counts one critic evaluation result.
func (t *Telemetry) RecordCriticVerdict(passed bool) {
	if t == nil {
		return
	}
	verdict := "approved"
	if !passed {
		verdict = "revise"
	}
	t.mu.Lock()
	t.criticVerdicts[verdict]++
	t.mu.Unlock()
	t.verdictsTotal.WithLabelValues(verdict).Inc()
}

// Snapshot returns the mutex-guarded counters for the health endpoint.
func (t *Telemetry) Snapshot() map[string]interface{} {
	if t == nil {
		return map[string]interface{}{}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	tools := make(map[string]int64, len(t.toolInvocations))
	for k, v := range t.toolInvocations {
		tools[k] = v
	}
	return map[string]interface{}{
		"total_runs":       t.totalRuns,
		"fallback_runs":    t.fallbackRuns,
		"tool_invocations": tools,
	}
}
