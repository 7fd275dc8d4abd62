package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/fallback"
	"github.com/she-oracle/orchestrator/internal/memory"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

// scriptedBackend replays canned oracle replies in order. Once the script is
// exhausted, or when failAll is set, every call errors so the gateway serves
// its sentinel.
type scriptedBackend struct {
	replies []string
	prompts []string
	calls   int
	failAll bool
}

func (b *scriptedBackend) Complete(_ context.Context, _, prompt string) (string, error) {
	b.calls++
	b.prompts = append(b.prompts, prompt)
	if b.failAll || len(b.replies) == 0 {
		return "", errors.New("backend down")
	}
	reply := b.replies[0]
	b.replies = b.replies[1:]
	return reply, nil
}

// stubTools records invocations without touching the oracle.
type stubTools struct {
	invoked []string
	failOn  string
}

func (s *stubTools) Has(name string) bool {
	switch name {
	case "resume_analyzer", "legal_rights_checker", "income_projection", "risk_assessment", "grant_finder":
		return true
	}
	return false
}

func (s *stubTools) Invoke(_ context.Context, name string, _ map[string]interface{}) (map[string]interface{}, error) {
	s.invoked = append(s.invoked, name)
	if name == s.failOn {
		return nil, errors.New("tool exploded")
	}
	return map[string]interface{}{"tool": name, "ok": true}, nil
}

func newTestOrchestrator(t *testing.T, backend *scriptedBackend, toolset *stubTools, cfg config.PlannerConfig) *Orchestrator {
	t.Helper()
	gw := oracle.NewGateway(config.OracleConfig{Models: []string{"m"}, MaxRetries: 1}, backend)
	gw.SetSleep(func(time.Duration) {})
	reg, err := capability.NewRegistry(capability.DefaultToolCards(), "", nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := memory.NewInMemoryStore(config.MemoryConfig{})
	return NewOrchestrator(gw, reg, toolset, store, nil, nil, nil, cfg, 3)
}

func collect(t *testing.T, ch <-chan models.Event) []models.Event {
	t.Helper()
	var events []models.Event
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func decisionJSON(action, tool string) string {
	d := map[string]string{"thought": "t", "action": action, "tool": tool, "reason": "r"}
	b, _ := json.Marshal(d)
	return string(b)
}

func planJSON(summary string) string {
	p := map[string]interface{}{
		"goal":               "g",
		"domain":             "career",
		"executive_summary":  summary,
		"situation_analysis": "a",
		"subgoals":           []interface{}{},
		"immediate_actions":  []interface{}{},
		"roadmap":            []interface{}{},
		"key_resources":      []interface{}{},
		"risk_mitigation":    []interface{}{},
		"success_metrics":    []interface{}{},
	}
	b, _ := json.Marshal(p)
	return string(b)
}

const (
	criticApproved = `{"scores": {"specificity": 8, "actionability": 8, "grounding": 8, "completeness": 8}, "verdict": "APPROVED", "improvement_hints": []}`
	careerIntent   = `{"plan_type": "advisory", "urgency": "medium", "sub_intents": ["assess skills"], "required_agents": ["resume_analyzer", "income_projection"], "required_artifacts": ["skill_gap_report"]}`
)

func TestRunCareerScenarioEndToEnd(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		"{}",         // goal analysis
		careerIntent, // classification
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		decisionJSON("CALL_TOOL", "income_projection"),
		decisionJSON("SYNTHESIZE", ""),
		planJSON("final plan"),
		criticApproved,
	}}
	toolset := &stubTools{}
	orch := newTestOrchestrator(t, backend, toolset, config.PlannerConfig{})

	events := collect(t, orch.Run(context.Background(), RunRequest{
		Goal:   "I want to switch careers into data analytics",
		Domain: "career",
	}))

	last := events[len(events)-1]
	if last.Type != models.EventResult {
		t.Fatalf("terminal event must be result, got %s", last.Type)
	}
	terminalCount := 0
	for _, ev := range events {
		if ev.Type == models.EventResult || ev.Type == models.EventError {
			terminalCount++
		}
	}
	if terminalCount != 1 {
		t.Fatalf("exactly one terminal event expected, got %d", terminalCount)
	}

	if last.Plan == nil || last.Plan.Intent == nil {
		t.Fatal("result plan must carry a non-nil intent")
	}
	if last.Plan.Intent.PlanType != "advisory" {
		t.Fatalf("expected advisory plan type, got %s", last.Plan.Intent.PlanType)
	}
	if last.Plan.Artifacts == nil {
		t.Fatal("artifacts list must be present, even when empty")
	}
	if last.Plan.ExecutiveSummary != "final plan" {
		t.Fatalf("synthesized plan not delivered: %s", last.Plan.ExecutiveSummary)
	}
	if len(toolset.invoked) != 2 || toolset.invoked[0] != "resume_analyzer" || toolset.invoked[1] != "income_projection" {
		t.Fatalf("unexpected tool sequence: %v", toolset.invoked)
	}
	if _, ok := last.Plan.ToolInsights["resume_analyzer"]; !ok {
		t.Fatal("tool results missing from plan insights")
	}

	var sawIntent, sawDecomposed bool
	for _, ev := range events {
		switch ev.Type {
		case models.EventIntentAnalyzed:
			sawIntent = true
		case models.EventPlanDecomposed:
			sawDecomposed = true
			for i, st := range ev.SubTasks {
				if st.ID != i+1 {
					t.Fatalf("subtask ids must increase from 1: %+v", ev.SubTasks)
				}
			}
		}
	}
	if !sawIntent || !sawDecomposed {
		t.Fatal("intent_analyzed and plan_decomposed events required")
	}
}

func TestRunInvokesEachToolAtMostOnce(t *testing.T) {
	// The oracle keeps asking for the same tool; the second request must end
	// the loop rather than re-invoke or spin.
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		planJSON("after duplicate"),
		criticApproved,
	}}
	toolset := &stubTools{}
	orch := newTestOrchestrator(t, backend, toolset, config.PlannerConfig{})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	if len(toolset.invoked) != 1 {
		t.Fatalf("tool must run exactly once, ran %d times", len(toolset.invoked))
	}
	last := events[len(events)-1]
	if last.Type != models.EventResult || last.Plan.ExecutiveSummary != "after duplicate" {
		t.Fatalf("run must proceed to synthesis after duplicate request, got %+v", last)
	}
}

func TestRunNeverExceedsStepBudget(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		decisionJSON("CALL_TOOL", "income_projection"),
		decisionJSON("CALL_TOOL", "grant_finder"),
		decisionJSON("CALL_TOOL", "risk_assessment"),
		decisionJSON("CALL_TOOL", "legal_rights_checker"),
		planJSON("p"),
		criticApproved,
	}}
	toolset := &stubTools{}
	orch := newTestOrchestrator(t, backend, toolset, config.PlannerConfig{MaxSteps: 3})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	if len(toolset.invoked) != 3 {
		t.Fatalf("step budget 3 must cap invocations at 3, got %d", len(toolset.invoked))
	}
	if events[len(events)-1].Type != models.EventResult {
		t.Fatal("budget exhaustion must still deliver a result")
	}
}

func TestRunOracleDownServesFallbackWithNoFurtherCalls(t *testing.T) {
	backend := &scriptedBackend{failAll: true}
	toolset := &stubTools{}
	orch := newTestOrchestrator(t, backend, toolset, config.PlannerConfig{})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "protect my rights", Domain: "legal"}))

	last := events[len(events)-1]
	if last.Type != models.EventResult {
		t.Fatalf("oracle outage must degrade, not error: %s", last.Type)
	}
	if last.Plan.Domain != "legal" {
		t.Fatalf("fallback plan domain mismatch: %s", last.Plan.Domain)
	}
	if last.Plan.Goal != "protect my rights" {
		t.Fatalf("fallback plan must carry the caller goal: %s", last.Plan.Goal)
	}
	matched := false
	for _, authored := range fallback.PlansFor("legal") {
		if authored.ExecutiveSummary == last.Plan.ExecutiveSummary {
			matched = true
		}
	}
	if !matched {
		t.Fatal("served plan must match a pre-authored legal fallback plan")
	}
	if len(toolset.invoked) != 0 {
		t.Fatalf("no tools may run when the oracle is down, ran %v", toolset.invoked)
	}
	// analyze + classify + first reasoning step, nothing after the sentinel.
	if backend.calls != 3 {
		t.Fatalf("expected 3 oracle calls before degrading, got %d", backend.calls)
	}
}

func TestRunUnparseableSynthesisFallsBack(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("SYNTHESIZE", ""),
		"this is not json",
		"still not json",
		"never json",
	}}
	orch := newTestOrchestrator(t, backend, &stubTools{}, config.PlannerConfig{MaxReplanAttempts: 2})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	last := events[len(events)-1]
	if last.Type != models.EventResult {
		t.Fatalf("exhausted synthesis retries must degrade, not error: %s", last.Type)
	}
	matched := false
	for _, authored := range fallback.PlansFor("career") {
		if authored.ExecutiveSummary == last.Plan.ExecutiveSummary {
			matched = true
		}
	}
	if !matched {
		t.Fatal("expected a pre-authored career fallback plan")
	}
}

func TestRunCriticHintsAppearLiterallyInReplanPrompt(t *testing.T) {
	criticRevise := `{"scores": {"specificity": 3}, "verdict": "REVISE", "improvement_hints": ["add concrete deadlines", "name specific schemes"]}`
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("SYNTHESIZE", ""),
		planJSON("draft one"),
		criticRevise,
		planJSON("draft two"),
		criticApproved,
	}}
	orch := newTestOrchestrator(t, backend, &stubTools{}, config.PlannerConfig{MaxReplanAttempts: 2})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	var replanPrompt string
	for _, p := range backend.prompts {
		if strings.Contains(p, "CRITIC FEEDBACK") {
			replanPrompt = p
		}
	}
	if replanPrompt == "" {
		t.Fatal("replan prompt with critic feedback never built")
	}
	for _, hint := range []string{"add concrete deadlines", "name specific schemes"} {
		if !strings.Contains(replanPrompt, hint) {
			t.Fatalf("hint %q missing from replan prompt", hint)
		}
	}
	last := events[len(events)-1]
	if last.Plan.ExecutiveSummary != "draft two" {
		t.Fatalf("revised plan not delivered: %s", last.Plan.ExecutiveSummary)
	}
}

func TestRunExhaustedReplanBudgetDeliversLastPlan(t *testing.T) {
	criticRevise := `{"scores": {"specificity": 3}, "verdict": "REVISE", "improvement_hints": ["h"]}`
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("SYNTHESIZE", ""),
		planJSON("v1"),
		criticRevise,
		planJSON("v2"),
		criticRevise,
		planJSON("v3"),
		criticRevise,
	}}
	orch := newTestOrchestrator(t, backend, &stubTools{}, config.PlannerConfig{MaxReplanAttempts: 2})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	last := events[len(events)-1]
	if last.Type != models.EventResult {
		t.Fatalf("expected result, got %s", last.Type)
	}
	if last.Plan.ExecutiveSummary != "v3" {
		t.Fatalf("last candidate must win after budget exhaustion, got %s", last.Plan.ExecutiveSummary)
	}
}

func TestRunToolFailureRecordsErrorResult(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		decisionJSON("SYNTHESIZE", ""),
		planJSON("p"),
		criticApproved,
	}}
	toolset := &stubTools{failOn: "resume_analyzer"}
	orch := newTestOrchestrator(t, backend, toolset, config.PlannerConfig{})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	last := events[len(events)-1]
	if last.Type != models.EventResult {
		t.Fatalf("tool failure must not abort the run: %s", last.Type)
	}
	res, ok := last.Plan.ToolInsights["resume_analyzer"].(map[string]interface{})
	if !ok || res["error"] == nil {
		t.Fatalf("expected error-shaped tool result, got %#v", last.Plan.ToolInsights["resume_analyzer"])
	}
}

func TestRunEmptyGoalIsTerminalError(t *testing.T) {
	orch := newTestOrchestrator(t, &scriptedBackend{}, &stubTools{}, config.PlannerConfig{})
	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "  ", Domain: "career"}))
	if len(events) != 1 || events[0].Type != models.EventError {
		t.Fatalf("expected single error event, got %+v", events)
	}
}

func TestRunEventOrdering(t *testing.T) {
	backend := &scriptedBackend{replies: []string{
		"{}",
		careerIntent,
		decisionJSON("CALL_TOOL", "resume_analyzer"),
		decisionJSON("SYNTHESIZE", ""),
		planJSON("p"),
		criticApproved,
	}}
	orch := newTestOrchestrator(t, backend, &stubTools{}, config.PlannerConfig{})

	events := collect(t, orch.Run(context.Background(), RunRequest{Goal: "g", Domain: "career"}))

	rank := map[string]int{}
	for i, ev := range events {
		if _, seen := rank[ev.Type]; !seen {
			rank[ev.Type] = i
		}
	}
	order := []string{models.EventSession, models.EventIntentAnalyzed, models.EventPlanDecomposed,
		models.EventActing, models.EventToolResult, models.EventCritic, models.EventResult}
	for i := 1; i < len(order); i++ {
		a, b := order[i-1], order[i]
		if rank[a] >= rank[b] {
			t.Fatalf("event %s must precede %s: %v", a, b, rank)
		}
	}
}
