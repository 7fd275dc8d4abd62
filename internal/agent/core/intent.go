package core

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

// Closed enums for classification. Anything outside them is coerced or
// dropped during sanitization.
var (
	planTypes = map[string]bool{
		"advisory":            true,
		"legal_action":        true,
		"financial_analysis":  true,
		"document_generation": true,
		"threat_response":     true,
	}
	urgencies = map[string]bool{
		"low":      true,
		"medium":   true,
		"high":     true,
		"critical": true,
	}
	artifactTypes = map[string]bool{
		"resume_draft":         true,
		"skill_gap_report":     true,
		"rights_summary":       true,
		"escalation_plan":      true,
		"projection_report":    true,
		"scheme_checklist":     true,
		"scheme_match_report":  true,
		"scholarship_list":     true,
		"enrollment_checklist": true,
		"fir_draft":            true,
		"complaint_letter":     true,
		"takedown_request":     true,
		"legal_notice":         true,
	}
)

// fallbackIntent is one row of the static domain-keyed intent table.
type fallbackIntent struct {
	planType   string
	urgency    string
	subIntents []string
	agents     []string
	artifacts  []string
}

// fallbackIntents is served whenever classification fails or yields empty
// capability/artifact lists. Keyed by domain, general as the default.
var fallbackIntents = map[string]fallbackIntent{
	"career": {
		planType:   "advisory",
		urgency:    "medium",
		subIntents: []string{"Assess current skills against the target role", "Identify the highest-leverage growth path"},
		agents:     []string{"resume_analyzer", "income_projection"},
		artifacts:  []string{"skill_gap_report", "resume_draft"},
	},
	"legal": {
		planType:   "legal_action",
		urgency:    "high",
		subIntents: []string{"Identify applicable laws and rights", "Lay out the escalation path"},
		agents:     []string{"legal_rights_checker"},
		artifacts:  []string{"rights_summary", "escalation_plan"},
	},
	"financial": {
		planType:   "financial_analysis",
		urgency:    "medium",
		subIntents: []string{"Project income growth", "Stress-test the plan against the budget"},
		agents:     []string{"income_projection", "risk_assessment"},
		artifacts:  []string{"projection_report"},
	},
	"grants": {
		planType:   "advisory",
		urgency:    "medium",
		subIntents: []string{"Match eligible schemes and grants", "Prepare the application sequence"},
		agents:     []string{"grant_finder"},
		artifacts:  []string{"scheme_match_report", "scheme_checklist"},
	},
	"education": {
		planType:   "advisory",
		urgency:    "medium",
		subIntents: []string{"Find applicable scholarships", "Plan the enrollment steps"},
		agents:     []string{"grant_finder"},
		artifacts:  []string{"scholarship_list", "enrollment_checklist"},
	},
	"protection": {
		planType:   "threat_response",
		urgency:    "critical",
		subIntents: []string{"Establish immediate safety and legal standing", "Prepare formal complaints"},
		agents:     []string{"legal_rights_checker"},
		artifacts:  []string{"fir_draft", "complaint_letter"},
	},
	"general": {
		planType:   "advisory",
		urgency:    "medium",
		subIntents: []string{"Clarify the goal into concrete tracks", "Surface applicable support schemes"},
		agents:     []string{"grant_finder", "risk_assessment"},
		artifacts:  []string{"scheme_checklist"},
	},
}

func fallbackFor(domain string) fallbackIntent {
	if fi, ok := fallbackIntents[domain]; ok {
		return fi
	}
	return fallbackIntents["general"]
}

// Classifier turns a raw goal into an IntentProfile. Classification failure
// never propagates: every path returns a usable profile.
type Classifier struct {
	gw       *oracle.Gateway
	registry *capability.Registry
	logger   *log.Logger
}

// NewClassifier binds a classifier to a gateway and the capability registry.
func NewClassifier(gw *oracle.Gateway, registry *capability.Registry) *Classifier {
	return &Classifier{
		gw:       gw,
		registry: registry,
		logger:   log.New(log.Writer(), "[INTENT] ", log.LstdFlags),
	}
}

// rawIntent matches the JSON shape requested from the oracle.
type rawIntent struct {
	PlanType          string   `json:"plan_type"`
	Urgency           string   `json:"urgency"`
	SubIntents        []string `json:"sub_intents"`
	RequiredAgents    []string `json:"required_agents"`
	RequiredArtifacts []string `json:"required_artifacts"`
}

// Classify maps goal+domain to an IntentProfile. On sentinel or parse
// failure it returns the domain's static fallback profile with the caller's
// goal and domain attached.
func (c *Classifier) Classify(ctx context.Context, goal, domain, contextSummary string) models.IntentProfile {
	prompt := buildIntentPrompt(goal, domain, contextSummary, c.registry.Catalog())

	reply := c.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		c.logger.Printf("oracle unavailable, serving fallback intent for domain %s", domain)
		return c.fallbackProfile(goal, domain)
	}

	var raw rawIntent
	if err := extractJSON(reply, &raw); err != nil {
		c.logger.Printf("unparsable intent reply (%v), serving fallback intent for domain %s", err, domain)
		return c.fallbackProfile(goal, domain)
	}
	return c.sanitize(raw, goal, domain)
}

// sanitize applies the coercion and filtering policy. If either filtered
// list ends up empty, BOTH are backfilled from the domain fallback table.
func (c *Classifier) sanitize(raw rawIntent, goal, domain string) models.IntentProfile {
	planType := strings.ToLower(strings.TrimSpace(raw.PlanType))
	if !planTypes[planType] {
		planType = "advisory"
	}
	urgency := strings.ToLower(strings.TrimSpace(raw.Urgency))
	if !urgencies[urgency] {
		urgency = "medium"
	}

	agents := make([]string, 0, len(raw.RequiredAgents))
	for _, a := range raw.RequiredAgents {
		name := strings.ToLower(strings.TrimSpace(a))
		if c.registry.Has(name) {
			agents = append(agents, name)
		}
	}
	artifacts := make([]string, 0, len(raw.RequiredArtifacts))
	for _, a := range raw.RequiredArtifacts {
		name := strings.ToLower(strings.TrimSpace(a))
		if artifactTypes[name] {
			artifacts = append(artifacts, name)
		}
	}

	if len(agents) == 0 || len(artifacts) == 0 {
		fi := fallbackFor(domain)
		agents = append([]string(nil), fi.agents...)
		artifacts = append([]string(nil), fi.artifacts...)
	}

	subIntents := raw.SubIntents
	if len(subIntents) == 0 {
		subIntents = append([]string(nil), fallbackFor(domain).subIntents...)
	}

	return models.IntentProfile{
		PlanType:          planType,
		Urgency:           urgency,
		SubIntents:        subIntents,
		RequiredAgents:    agents,
		RequiredArtifacts: artifacts,
		Domain:            domain,
		RawGoal:           goal,
	}
}

func (c *Classifier) fallbackProfile(goal, domain string) models.IntentProfile {
	fi := fallbackFor(domain)
	return models.IntentProfile{
		PlanType:          fi.planType,
		Urgency:           fi.urgency,
		SubIntents:        append([]string(nil), fi.subIntents...),
		RequiredAgents:    append([]string(nil), fi.agents...),
		RequiredArtifacts: append([]string(nil), fi.artifacts...),
		Domain:            domain,
		RawGoal:           goal,
	}
}

func buildIntentPrompt(goal, domain, contextSummary, catalog string) string {
	artifactNames := make([]string, 0, len(artifactTypes))
	for name := range artifactTypes {
		artifactNames = append(artifactNames, name)
	}
	sort.Strings(artifactNames)
	return fmt.Sprintf(`You are the intent classifier of a strategic planning assistant
for women in India. Classify the user's goal.

GOAL: %s
DOMAIN: %s

PRIOR CONTEXT:
%s

AVAILABLE CAPABILITIES:
%s

ALLOWED VALUES:
- plan_type: advisory, legal_action, financial_analysis, document_generation, threat_response
- urgency: low, medium, high, critical
- required_artifacts: %s

Respond with ONLY a JSON object, no markdown:
{
  "plan_type": "...",
  "urgency": "...",
  "sub_intents": ["2-4 short task descriptions"],
  "required_agents": ["capability names from the list above"],
  "required_artifacts": ["artifact types from the allowed list"]
}`, goal, domain, contextSummary, catalog, strings.Join(artifactNames, ", "))
}
