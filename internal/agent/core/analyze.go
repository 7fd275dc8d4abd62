package core

import (
	"context"
	"fmt"

	"github.com/she-oracle/orchestrator/internal/oracle"
)

// analyzeGoal asks the oracle to extract structured context from the raw
// goal (target role, skills, income, location and so on) before
// classification. Any failure returns safe defaults; explicit caller context
// is merged over the inferred values by the orchestrator.
func analyzeGoal(ctx context.Context, gw *oracle.Gateway, goal, domain string) map[string]interface{} {
	defaults := map[string]interface{}{
		"target_role":    "",
		"current_skills": goal,
		"current_income": 0,
		"target_domain":  domain,
		"location":       "India",
		"situation_type": "workplace",
		"budget":         "",
		"resume_text":    goal,
		"plan_type":      "advisory",
	}

	prompt := fmt.Sprintf(`Extract structured context from this goal. Use empty string or 0
where the goal does not say.

GOAL: %s
DOMAIN: %s

Respond with ONLY a JSON object, no markdown, with exactly these keys:
{
  "target_role": "",
  "current_skills": "",
  "current_income": 0,
  "target_domain": "",
  "location": "",
  "situation_type": "",
  "budget": "",
  "resume_text": "",
  "plan_type": ""
}`, goal, domain)

	reply := gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return defaults
	}
	var inferred map[string]interface{}
	if err := extractJSON(reply, &inferred); err != nil {
		return defaults
	}
	for k, def := range defaults {
		if v, ok := inferred[k]; !ok || v == nil || v == "" {
			inferred[k] = def
		}
	}
	return inferred
}
