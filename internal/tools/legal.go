package tools

import (
	"context"
	"fmt"

	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/oracle"
)

// LegalRightsChecker maps a described situation onto applicable Indian law,
// grounded on retrieved statute excerpts.
type LegalRightsChecker struct {
	gw *oracle.Gateway
	kb knowledge.Retriever
}

func (a *LegalRightsChecker) Name() string { return "legal_rights_checker" }

func (a *LegalRightsChecker) Invoke(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	situation := strInput(input, "situation", strInput(input, "goal", ""))
	situationType := strInput(input, "situation_type", "workplace")

	excerpts := knowledge.NoKnowledgeFound
	if a.kb != nil {
		excerpts = a.kb.RetrieveFormatted(ctx, situation, "legal", 3)
	}

	prompt := fmt.Sprintf(`You are a legal rights advisor specialising in Indian law as it
applies to women. Use the legal references below where relevant; do not invent statutes.

SITUATION (%s):
%s

LEGAL REFERENCES:
%s

Respond with ONLY a JSON object, no markdown, with these keys:
{
  "applicable_laws": ["act name and relevant section"],
  "rights": ["specific rights the person holds in this situation"],
  "recommended_actions": ["ordered concrete steps to exercise those rights"],
  "urgency_level": "low|medium|high",
  "relevant_contacts": ["authority or helpline with number/url"]
}`, situationType, situation, excerpts)

	reply := a.gw.Generate(ctx, prompt)
	if !oracle.IsResponseOK(reply) {
		return unavailableResult(a.Name()), nil
	}
	return parseToolJSON(reply), nil
}
