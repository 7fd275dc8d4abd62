package fallback

import (
	"strings"
	"testing"
)

func TestPlanCompleteForEveryDomain(t *testing.T) {
	for _, domain := range Domains() {
		plan := Plan(domain, "")
		if plan.Domain != domain {
			t.Fatalf("domain %s: got plan for %s", domain, plan.Domain)
		}
		if plan.ExecutiveSummary == "" || plan.SituationAnalysis == "" {
			t.Fatalf("domain %s: missing summary or analysis", domain)
		}
		if len(plan.Subgoals) == 0 || len(plan.ImmediateActions) == 0 || len(plan.Roadmap) == 0 {
			t.Fatalf("domain %s: empty core sections", domain)
		}
		if len(plan.KeyResources) == 0 || len(plan.RiskMitigation) == 0 || len(plan.SuccessMetrics) == 0 {
			t.Fatalf("domain %s: empty supporting sections", domain)
		}
		if plan.Artifacts == nil || len(plan.Artifacts) != 0 {
			t.Fatalf("domain %s: fallback plans carry an empty artifact list", domain)
		}
		note, ok := plan.ToolInsights["note"].(string)
		if !ok || !strings.Contains(note, "temporarily unavailable") {
			t.Fatalf("domain %s: missing degradation note", domain)
		}
	}
}

func TestPlanGoalOverride(t *testing.T) {
	plan := Plan("career", "become a staff engineer")
	if plan.Goal != "become a staff engineer" {
		t.Fatalf("goal not overridden: %s", plan.Goal)
	}
	if Plan("career", "").Goal == "become a staff engineer" {
		t.Fatal("override leaked into the library")
	}
}

func TestPlanUnknownDomainFallsBackToGeneral(t *testing.T) {
	plan := Plan("astrology", "")
	if plan.Domain != "general" {
		t.Fatalf("expected general plan, got %s", plan.Domain)
	}
}

func TestPlanServesPreAuthoredContent(t *testing.T) {
	authored := PlansFor("legal")
	for i := 0; i < 20; i++ {
		plan := Plan("legal", "")
		matched := false
		for _, a := range authored {
			if plan.ExecutiveSummary == a.ExecutiveSummary {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("served plan does not match any authored legal plan")
		}
	}
}

func TestPlanVariesAcrossCalls(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		seen[Plan("career", "").ExecutiveSummary] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected random selection to eventually serve both career plans")
	}
}
