package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const systemPreamble = `You are SHE-ORACLE, a strategic planning assistant for women in
India covering career, legal, financial, grants, and education goals. You plan by
reasoning step by step and calling specialist tools when their intelligence would
improve the final plan.`

// buildReactPrompt assembles one reasoning-step prompt: goal, memory summary,
// knowledge, truncated tool results so far, the soft guidance, the capability
// catalog, and the already-invoked list.
func buildReactPrompt(goal, domain, memorySummary, knowledgeBlock, guidance, catalog string,
	toolResults map[string]map[string]interface{}, invoked []string, charBudget int) string {

	var sb strings.Builder
	sb.WriteString(systemPreamble)
	sb.WriteString("\n\nGOAL: " + goal)
	sb.WriteString("\nDOMAIN: " + domain)
	sb.WriteString("\n\nUSER CONTEXT:\n" + memorySummary)
	sb.WriteString("\n\nKNOWLEDGE BASE:\n" + knowledgeBlock)

	if guidance != "" {
		sb.WriteString("\n\n" + guidance)
	}

	sb.WriteString("\n\nAVAILABLE TOOLS:\n" + catalog)

	if len(invoked) > 0 {
		sb.WriteString("\n\nTOOLS ALREADY CALLED (do NOT call these again): " + strings.Join(invoked, ", "))
		names := make([]string, 0, len(toolResults))
		for name := range toolResults {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString("\n\nRESULTS SO FAR:")
		for _, name := range names {
			data, _ := json.Marshal(toolResults[name])
			sb.WriteString(fmt.Sprintf("\n[%s]: %s", name, truncate(string(data), charBudget)))
		}
	}

	sb.WriteString(`

Decide the next step. Respond with ONLY a JSON object, no markdown:
{
  "thought": "your reasoning about what is still missing",
  "action": "CALL_TOOL or SYNTHESIZE",
  "tool": "tool name if action is CALL_TOOL, else null",
  "reason": "one sentence justifying the decision"
}`)
	return sb.String()
}

// buildSynthesisPrompt assembles the final-plan prompt. criticHints, when
// present, are appended literally as feedback lines for the revision pass.
func buildSynthesisPrompt(goal, domain, memorySummary, knowledgeBlock string,
	toolResults map[string]map[string]interface{}, charBudget int, criticHints []string) string {

	var sb strings.Builder
	sb.WriteString(systemPreamble)
	sb.WriteString("\n\nCreate the final strategic plan.")
	sb.WriteString("\n\nGOAL: " + goal)
	sb.WriteString("\nDOMAIN: " + domain)
	sb.WriteString("\n\nUSER CONTEXT:\n" + memorySummary)
	sb.WriteString("\n\nKNOWLEDGE BASE:\n" + knowledgeBlock)

	names := make([]string, 0, len(toolResults))
	for name := range toolResults {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		sb.WriteString("\n\nTOOL RESULTS:")
		for _, name := range names {
			data, _ := json.Marshal(toolResults[name])
			sb.WriteString(fmt.Sprintf("\n[%s]: %s", name, truncate(string(data), charBudget)))
		}
	}

	sb.WriteString(`

Respond with ONLY a JSON object, no markdown, with exactly these keys:
{
  "goal": "...",
  "domain": "...",
  "executive_summary": "3-4 sentences",
  "situation_analysis": "one paragraph grounded in the tool results",
  "subgoals": [{"id": 1, "subgoal": "...", "why": "...", "timeline": "..."}],
  "immediate_actions": [{"action": "...", "resource": "...", "expected_outcome": "..."}],
  "roadmap": [{"phase": "30 Days", "focus": "...", "milestones": ["..."], "resources_needed": ["..."]}],
  "key_resources": [{"name": "...", "type": "...", "url_or_contact": "...", "how_it_helps": "..."}],
  "risk_mitigation": [{"risk": "...", "mitigation": "..."}],
  "success_metrics": ["..."]
}`)

	if len(criticHints) > 0 {
		sb.WriteString("\n\nCRITIC FEEDBACK (address these in revision):")
		for _, hint := range criticHints {
			sb.WriteString("\n- " + hint)
		}
	}
	return sb.String()
}
