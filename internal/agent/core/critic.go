package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

// criticVerdict is the critic's structured evaluation of a candidate plan.
type criticVerdict struct {
	Passed bool
	Scores map[string]float64
	Hints  []string
}

type rawVerdict struct {
	Verdict string             `json:"verdict"`
	Scores  map[string]float64 `json:"scores"`
	Hints   []string           `json:"improvement_hints"`
}

// critique scores a synthesized plan on four axes and returns pass/fail with
// improvement hints. Any critic-side failure is an automatic pass: quality
// review must never abort a run.
func critique(ctx context.Context, gw *oracle.Gateway, logger *log.Logger, plan *models.SynthesizedPlan, goal, domain string) criticVerdict {
	autoPass := criticVerdict{Passed: true, Scores: map[string]float64{}}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return autoPass
	}

	prompt := fmt.Sprintf(`You are a strict quality reviewer for strategic plans. Score this
plan for the stated goal on each axis from 0 to 10.

GOAL: %s
DOMAIN: %s

PLAN:
%s

Axes:
- specificity: concrete names, numbers, and deadlines instead of generic advice
- actionability: the user can start the first action today
- grounding: claims trace to real schemes, laws, or data
- completeness: all plan sections are substantive

Respond with ONLY a JSON object, no markdown:
{
  "scores": {"specificity": 0, "actionability": 0, "grounding": 0, "completeness": 0},
  "verdict": "APPROVED or REVISE",
  "improvement_hints": ["only when verdict is REVISE: short concrete fixes"]
}`, goal, domain, string(planJSON))

	reply := gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		logger.Printf("critic oracle unavailable, auto-passing plan")
		return autoPass
	}

	var raw rawVerdict
	if err := extractJSON(reply, &raw); err != nil {
		logger.Printf("unparsable critic reply, auto-passing plan: %v", err)
		return autoPass
	}

	verdict := criticVerdict{
		Passed: raw.Verdict != "REVISE",
		Scores: raw.Scores,
		Hints:  raw.Hints,
	}
	if verdict.Scores == nil {
		verdict.Scores = map[string]float64{}
	}
	return verdict
}
