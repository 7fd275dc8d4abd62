package core

import (
	"context"
	"testing"
	"time"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/oracle"
)

func newClassifier(t *testing.T, backend *scriptedBackend) *Classifier {
	t.Helper()
	gw := oracle.NewGateway(config.OracleConfig{Models: []string{"m"}, MaxRetries: 1}, backend)
	gw.SetSleep(func(time.Duration) {})
	reg, err := capability.NewRegistry(capability.DefaultToolCards(), "", nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return NewClassifier(gw, reg)
}

func TestClassifySanitizationMatrix(t *testing.T) {
	cases := []struct {
		name          string
		reply         string
		wantPlanType  string
		wantUrgency   string
		wantAgents    []string
		wantArtifacts []string
	}{
		{
			name:          "valid passes through",
			reply:         `{"plan_type": "legal_action", "urgency": "high", "sub_intents": ["x"], "required_agents": ["legal_rights_checker"], "required_artifacts": ["rights_summary"]}`,
			wantPlanType:  "legal_action",
			wantUrgency:   "high",
			wantAgents:    []string{"legal_rights_checker"},
			wantArtifacts: []string{"rights_summary"},
		},
		{
			name:          "invalid enums coerced",
			reply:         `{"plan_type": "world_domination", "urgency": "apocalyptic", "sub_intents": ["x"], "required_agents": ["grant_finder"], "required_artifacts": ["scheme_checklist"]}`,
			wantPlanType:  "advisory",
			wantUrgency:   "medium",
			wantAgents:    []string{"grant_finder"},
			wantArtifacts: []string{"scheme_checklist"},
		},
		{
			name:          "unknown names filtered, survivors kept",
			reply:         `{"plan_type": "advisory", "urgency": "low", "sub_intents": ["x"], "required_agents": ["grant_finder", "time_machine"], "required_artifacts": ["scheme_checklist", "hologram"]}`,
			wantPlanType:  "advisory",
			wantUrgency:   "low",
			wantAgents:    []string{"grant_finder"},
			wantArtifacts: []string{"scheme_checklist"},
		},
		{
			name:          "empty agents backfills both lists",
			reply:         `{"plan_type": "advisory", "urgency": "low", "sub_intents": ["x"], "required_agents": ["time_machine"], "required_artifacts": ["scheme_checklist"]}`,
			wantPlanType:  "advisory",
			wantUrgency:   "low",
			wantAgents:    fallbackIntents["grants"].agents,
			wantArtifacts: fallbackIntents["grants"].artifacts,
		},
		{
			name:          "empty artifacts backfills both lists",
			reply:         `{"plan_type": "advisory", "urgency": "low", "sub_intents": ["x"], "required_agents": ["grant_finder"], "required_artifacts": []}`,
			wantPlanType:  "advisory",
			wantUrgency:   "low",
			wantAgents:    fallbackIntents["grants"].agents,
			wantArtifacts: fallbackIntents["grants"].artifacts,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClassifier(t, &scriptedBackend{replies: []string{tc.reply}})
			got := c.Classify(context.Background(), "my goal", "grants", "")

			if got.PlanType != tc.wantPlanType || got.Urgency != tc.wantUrgency {
				t.Fatalf("plan_type/urgency = %s/%s, want %s/%s", got.PlanType, got.Urgency, tc.wantPlanType, tc.wantUrgency)
			}
			if !equalStrings(got.RequiredAgents, tc.wantAgents) {
				t.Fatalf("agents = %v, want %v", got.RequiredAgents, tc.wantAgents)
			}
			if !equalStrings(got.RequiredArtifacts, tc.wantArtifacts) {
				t.Fatalf("artifacts = %v, want %v", got.RequiredArtifacts, tc.wantArtifacts)
			}
			if got.RawGoal != "my goal" || got.Domain != "grants" {
				t.Fatalf("goal/domain echo lost: %+v", got)
			}
		})
	}
}

func TestClassifyNeverReturnsEmptyLists(t *testing.T) {
	for domain := range fallbackIntents {
		c := newClassifier(t, &scriptedBackend{failAll: true})
		got := c.Classify(context.Background(), "g", domain, "")
		if len(got.RequiredAgents) == 0 || len(got.RequiredArtifacts) == 0 {
			t.Fatalf("domain %s: fallback profile has empty lists: %+v", domain, got)
		}
		for _, a := range got.RequiredArtifacts {
			if !artifactTypes[a] {
				t.Fatalf("domain %s: fallback artifact %s outside closed enum", domain, a)
			}
		}
	}
}

func TestClassifyFallbackOnUnparseableReply(t *testing.T) {
	c := newClassifier(t, &scriptedBackend{replies: []string{"not json at all"}})
	got := c.Classify(context.Background(), "g", "legal", "")
	if got.PlanType != fallbackIntents["legal"].planType {
		t.Fatalf("expected legal fallback profile, got %+v", got)
	}
}

func TestClassifyUnknownDomainUsesGeneralFallback(t *testing.T) {
	c := newClassifier(t, &scriptedBackend{failAll: true})
	got := c.Classify(context.Background(), "g", "astrology", "")
	if !equalStrings(got.RequiredAgents, fallbackIntents["general"].agents) {
		t.Fatalf("expected general fallback agents, got %v", got.RequiredAgents)
	}
	if got.Domain != "astrology" {
		t.Fatalf("caller domain must be echoed: %s", got.Domain)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
