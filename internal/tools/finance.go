package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/she-oracle/orchestrator/internal/oracle"
)

// RiskAssessment stress-tests a draft plan against budget and external risks.
type RiskAssessment struct {
	gw *oracle.Gateway
}

func (a *RiskAssessment) Name() string { return "risk_assessment" }

func (a *RiskAssessment) Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	planText := strInput(input, "plan", strInput(input, "goal", ""))
	if v, ok := input["plan"]; ok {
		if _, isString := v.(string); !isString {
			if b, err := json.Marshal(v); err == nil {
				planText = string(b)
			}
		}
	}
	planType := strInput(input, "plan_type", "advisory")
	budget := strInput(input, "budget", "not specified")

	prompt := fmt.Sprintf(`You are a risk analyst reviewing a personal strategic plan for a
woman in India. Identify realistic risks and whether the budget supports the plan.

PLAN TYPE: %s
BUDGET: %s
PLAN:
%s

Respond with ONLY a JSON object, no markdown, with these keys:
{
  "risks": [{"risk": "...", "likelihood": "low|medium|high", "impact": "low|medium|high", "mitigation": "..."}],
  "overall_risk_level": "low|medium|high",
  "budget_feasibility": "assessment of whether the stated budget covers the plan"
}`, planType, budget, planText)

	reply := a.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return unavailableResult(a.Name()), nil
	}
	return parseToolJSON(reply), nil
}
