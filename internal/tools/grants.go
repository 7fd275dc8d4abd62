package tools

import (
	"context"
	"fmt"

	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/oracle"
)

// GrantFinder matches a location and category to government schemes and
// grants, grounded on the scheme corpus.
type GrantFinder struct {
	gw *oracle.Gateway
	kb knowledge.Retriever
}

func (a *GrantFinder) Name() string { return "grant_finder" }

func (a *GrantFinder) Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	location := strInput(input, "location", "India")
	category := strInput(input, "category", strInput(input, "domain", "general"))
	goal := strInput(input, "goal", "")

	query := goal
	if query == "" {
		query = category + " funding schemes"
	}
	excerpts := knowledge.NoKnowledgeFound
	if a.kb != nil {
		excerpts = a.kb.RetrieveFormatted(ctx, query, "grants", 4)
	}

	prompt := fmt.Sprintf(`You are a government schemes expert for India. Find grants, loans,
and scholarships matching this request. Prefer the scheme references below; only add
widely known national schemes beyond them.

LOCATION: %s
CATEGORY: %s
GOAL: %s

SCHEME REFERENCES:
%s

Respond with ONLY a JSON object, no markdown, with these keys:
{
  "grants": [{"name": "...", "amount": "funding range in INR", "eligibility": "...", "how_to_apply": "portal or office with url"}],
  "total_found": 0
}`, location, category, goal, excerpts)

	reply := a.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return unavailableResult(a.Name()), nil
	}
	return parseToolJSON(reply), nil
}
