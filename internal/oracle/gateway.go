package oracle

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/she-oracle/orchestrator/config"
)

// UnavailableSentinel is returned by Generate when every model in the cascade
// has been exhausted. It cannot collide with legitimate model output; callers
// check for it with IsResponseOK instead of handling errors.
const UnavailableSentinel = "__ORACLE_UNAVAILABLE__"

// Backend performs a single completion call against one model.
type Backend interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Indicators of quota/rate issues. Worth retrying with backoff.
var quotaIndicators = []string{"429", "503", "RESOURCE_EXHAUSTED", "quota", "rate limit"}

// Indicators of a daily quota hit. No point retrying the same model.
var dailyQuotaIndicators = []string{"free_tier_requests", "daily"}

// Indicators that the model itself is unavailable. Skip to next model.
var notFoundIndicators = []string{"404", "NOT_FOUND", "is not found"}

// Health is the gateway's process-wide health snapshot, read by /health.
type Health struct {
	Healthy     bool   `json:"healthy"`
	LastFailure string `json:"last_failure,omitempty"`
}

// Gateway wraps the reasoning oracle behind a model cascade with bounded
// retry/backoff. Generate never returns an error: retry and fallback policy
// live here so downstream components implement one sentinel check instead of
// bespoke exception handling.
type Gateway struct {
	backend    Backend
	models     []string
	maxRetries int
	delays     []time.Duration
	sleep      func(time.Duration)
	logger     *log.Logger

	mu          sync.Mutex
	healthy     bool
	lastFailure string
}

// NewGateway builds a gateway over the given backend using the configured
// cascade and retry schedule.
func NewGateway(cfg config.OracleConfig, backend Backend) *Gateway {
	delays := make([]time.Duration, 0, len(cfg.RetryDelays))
	for _, d := range cfg.RetryDelays {
		delays = append(delays, time.Duration(d)*time.Second)
	}
	if len(delays) == 0 {
		delays = []time.Duration{4 * time.Second, 15 * time.Second, 30 * time.Second}
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Gateway{
		backend:    backend,
		models:     cfg.Models,
		maxRetries: maxRetries,
		delays:     delays,
		sleep:      time.Sleep,
		logger:     log.New(log.Writer(), "[ORACLE] ", log.LstdFlags),
		healthy:    true,
	}
}

// SetSleep replaces the backoff sleeper. Tests inject a recorder here.
func (g *Gateway) SetSleep(fn func(time.Duration)) { g.sleep = fn }

// IsResponseOK reports whether text is real model output rather than the
// unavailability sentinel.
func IsResponseOK(text string) bool {
	return text != UnavailableSentinel
}

// IsResponseOK is the method form of the package-level check.
func (g *Gateway) IsResponseOK(text string) bool {
	return IsResponseOK(text)
}

// Health returns the current health snapshot.
func (g *Gateway) Health() Health {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Health{Healthy: g.healthy, LastFailure: g.lastFailure}
}

func (g *Gateway) markHealthy() {
	g.mu.Lock()
	g.healthy = true
	g.lastFailure = ""
	g.mu.Unlock()
}

func (g *Gateway) markUnhealthy(reason string) {
	g.mu.Lock()
	g.healthy = false
	g.lastFailure = reason
	g.mu.Unlock()
}

// Generate sends a prompt through the model cascade and returns the text
// response.
//
//   - Retries the same model with backoff on rate-limit class errors.
//   - Skips to the next model on daily-quota or not-found errors.
//   - Logs and moves to the next model on anything else.
//   - If ALL models fail, returns UnavailableSentinel. Never returns an error;
//     the caller decides what to do on failure.
func (g *Gateway) Generate(ctx context.Context, prompt string) string {
	var lastErr error

	for _, model := range g.models {
		for attempt := 0; attempt < g.maxRetries; attempt++ {
			text, err := g.backend.Complete(ctx, model, prompt)
			if err == nil {
				g.markHealthy()
				if model != g.models[0] {
					g.logger.Printf("used fallback model %s (primary unavailable)", model)
				}
				return strings.TrimSpace(text)
			}
			lastErr = err

			if matchesAny(err, notFoundIndicators) {
				g.logger.Printf("model not found: %s, skipping", model)
				break
			}
			if matchesAny(err, quotaIndicators) {
				if matchesAny(err, dailyQuotaIndicators) {
					g.logger.Printf("daily quota exhausted on %s, trying next model", model)
					break
				}
				delay := g.delays[len(g.delays)-1]
				if attempt < len(g.delays) {
					delay = g.delays[attempt]
				}
				g.logger.Printf("rate limited on %s (attempt %d/%d), retrying in %s: %s",
					model, attempt+1, g.maxRetries, delay, truncateErr(err))
				g.sleep(delay)
				continue
			}

			g.logger.Printf("unexpected error on %s: %s", model, truncateErr(err))
			break
		}
	}

	reason := "all models exhausted"
	if lastErr != nil {
		reason = lastErr.Error()
	}
	g.markUnhealthy(reason)
	g.logger.Printf("all models unavailable, serving fallback responses: %s", reason)
	return UnavailableSentinel
}

func matchesAny(err error, indicators []string) bool {
	msg := strings.ToLower(err.Error())
	for _, ind := range indicators {
		if strings.Contains(msg, strings.ToLower(ind)) {
			return true
		}
	}
	return false
}

func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 120 {
		return msg[:120]
	}
	return msg
}
