// Package tools implements the specialist capabilities the planning loop can
// invoke. Every capability turns its inputs into one oracle prompt, parses the
// strict-JSON reply, and degrades to a raw-text result instead of failing when
// the reply isn't parseable. Invocation never aborts a run.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/oracle"
)

// Capability is one invokable specialist.
type Capability interface {
	Name() string
	Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)
}

// ErrUnknownCapability is returned for names outside the set.
var ErrUnknownCapability = fmt.Errorf("unknown capability")

// Set holds the registered capabilities keyed by name.
type Set struct {
	byName map[string]Capability
	logger *log.Logger
}

// NewSet wires the default five capabilities against a gateway and retriever.
func NewSet(gw *oracle.Gateway, kb knowledge.Retriever) *Set {
	s := &Set{
		byName: map[string]Capability{},
		logger: log.New(log.Writer(), "[TOOLS] ", log.LstdFlags),
	}
	for _, c := range []Capability{
		&ResumeAnalyzer{gw: gw},
		&LegalRightsChecker{gw: gw, kb: kb},
		&IncomeProjection{gw: gw},
		&RiskAssessment{gw: gw},
		&GrantFinder{gw: gw, kb: kb},
	} {
		s.byName[c.Name()] = c
	}
	return s
}

// Has reports whether a capability is registered.
func (s *Set) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Invoke dispatches to the named capability.
func (s *Set) Invoke(ctx context.Context, name string, input map[string]interface{}) (map[string]interface{}, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, name)
	}
	s.logger.Printf("invoking %s", name)
	return c.Invoke(ctx, input)
}

// unavailableResult is the uniform degraded payload when the oracle is down.
func unavailableResult(capability string) map[string]interface{} {
	return map[string]interface{}{
		"status": "unavailable",
		"note":   fmt.Sprintf("%s could not run because the AI service is temporarily unavailable", capability),
	}
}

// parseToolJSON strips code fences and decodes the reply into a map. On
// failure the raw text is preserved so synthesis can still use it.
func parseToolJSON(raw string) map[string]interface{} {
	cleaned := stripFences(raw)
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return map[string]interface{}{
			"raw_analysis": strings.TrimSpace(raw),
			"structured":   false,
		}
	}
	return out
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func strInput(input map[string]interface{}, key, fallback string) string {
	if v, ok := input[key]; ok {
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case fmt.Stringer:
			return t.String()
		case float64:
			return fmt.Sprintf("%v", t)
		case int:
			return fmt.Sprintf("%d", t)
		}
	}
	return fallback
}
