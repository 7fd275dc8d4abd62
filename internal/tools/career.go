package tools

import (
	"context"
	"fmt"

	"github.com/she-oracle/orchestrator/internal/oracle"
)

// ResumeAnalyzer evaluates a resume or skill profile against a target role.
type ResumeAnalyzer struct {
	gw *oracle.Gateway
}

func (a *ResumeAnalyzer) Name() string { return "resume_analyzer" }

func (a *ResumeAnalyzer) Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	resume := strInput(input, "resume_text", "")
	if resume == "" {
		resume = strInput(input, "goal", "")
	}
	targetRole := strInput(input, "target_role", "not specified")
	location := strInput(input, "location", "India")

	prompt := fmt.Sprintf(`You are a career advisor for women professionals in India.
Analyze the following profile against the target role.

PROFILE:
%s

TARGET ROLE: %s
LOCATION: %s

Respond with ONLY a JSON object, no markdown, with these keys:
{
  "strengths": ["..."],
  "gaps": ["skill or experience gaps for the target role"],
  "recommendations": ["concrete next steps, courses, certifications"],
  "match_score": 0.0,
  "summary": "2-3 sentence overall assessment"
}`, resume, targetRole, location)

	reply := a.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return unavailableResult(a.Name()), nil
	}
	return parseToolJSON(reply), nil
}

// IncomeProjection estimates earning trajectories for a skill set and domain.
type IncomeProjection struct {
	gw *oracle.Gateway
}

func (a *IncomeProjection) Name() string { return "income_projection" }

func (a *IncomeProjection) Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	skills := strInput(input, "current_skills", strInput(input, "goal", ""))
	income := strInput(input, "current_income", "0")
	target := strInput(input, "target_domain", strInput(input, "domain", "general"))
	location := strInput(input, "location", "India")

	prompt := fmt.Sprintf(`You are a compensation analyst for the Indian job market.
Project realistic income growth for this profile.

CURRENT SKILLS: %s
CURRENT MONTHLY INCOME (INR): %s
TARGET DOMAIN: %s
LOCATION: %s

Respond with ONLY a JSON object, no markdown, with these keys:
{
  "current_estimate": "estimated fair market monthly income in INR for this profile today",
  "projected_1yr": "realistic monthly income in INR after 1 year of focused growth",
  "projected_3yr": "realistic monthly income in INR after 3 years",
  "growth_path": ["ordered steps that unlock each income jump"],
  "assumptions": ["assumptions behind the projection"]
}`, skills, income, target, location)

	reply := a.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return unavailableResult(a.Name()), nil
	}
	return parseToolJSON(reply), nil
}
