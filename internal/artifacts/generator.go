// Package artifacts turns a finished plan into downloadable markdown
// documents (resume drafts, rights summaries, scheme checklists). Generation
// is strictly best-effort: oracle unavailability or a bad reply drops the
// artifact, never the run.
package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

// typeSpec binds an artifact type to its document title and the template
// instructions sent to the oracle.
type typeSpec struct {
	title        string
	instructions string
}

var typeSpecs = map[string]typeSpec{
	"resume_draft": {
		title:        "Resume Draft",
		instructions: "Write a complete, ATS-friendly resume draft in markdown tailored to the target role. Use the profile details from the tool results; mark unknown details with [FILL IN].",
	},
	"skill_gap_report": {
		title:        "Skill Gap Report",
		instructions: "Write a skill gap report: current strengths, missing skills for the target role, and a prioritised learning plan with specific courses or certifications.",
	},
	"rights_summary": {
		title:        "Legal Rights Summary",
		instructions: "Write a plain-language summary of the applicable legal rights, citing the specific acts and sections, with what each right practically allows.",
	},
	"escalation_plan": {
		title:        "Escalation Plan",
		instructions: "Write a step-by-step escalation plan: internal channels first, then statutory authorities, with timelines and the evidence needed at each step.",
	},
	"projection_report": {
		title:        "Income Projection Report",
		instructions: "Write an income projection report with current estimate, 1-year and 3-year projections in INR, and the growth steps that unlock each jump.",
	},
	"scheme_checklist": {
		title:        "Scheme Application Checklist",
		instructions: "Write an application checklist for the relevant government schemes: documents needed, where to apply, and deadlines.",
	},
	"scheme_match_report": {
		title:        "Scheme Match Report",
		instructions: "Write a report matching the user's situation to eligible schemes and grants, with amounts, eligibility criteria, and application routes.",
	},
	"scholarship_list": {
		title:        "Scholarship List",
		instructions: "Write a ranked list of applicable scholarships with amounts, eligibility, portals, and typical application windows.",
	},
	"enrollment_checklist": {
		title:        "Enrollment Checklist",
		instructions: "Write an enrollment checklist: programs to apply to, documents required, fees, and key dates.",
	},
	"fir_draft": {
		title:        "FIR Draft",
		instructions: "Write a formal FIR draft the user can adapt: complainant details placeholder, chronological facts, applicable sections, and the relief sought.",
	},
	"complaint_letter": {
		title:        "Complaint Letter",
		instructions: "Write a formal complaint letter to the appropriate authority: factual, dated, with the specific remedy requested.",
	},
	"takedown_request": {
		title:        "Takedown Request",
		instructions: "Write a content takedown request citing the applicable IT Act provisions, identifying the content and the harm caused.",
	},
	"legal_notice": {
		title:        "Legal Notice",
		instructions: "Write a formal legal notice draft: parties, facts, legal grounds, demand, and compliance deadline. Mark lawyer-specific fields with [FILL IN].",
	},
}

// domainFraming tailors the generator's voice per domain.
var domainFraming = map[string]string{
	"career":    "You are a career documents specialist for Indian professionals.",
	"legal":     "You are a legal documents specialist versed in Indian law. Draft precisely; never invent statutes.",
	"financial": "You are a financial planning documents specialist for the Indian market.",
	"grants":    "You are a government schemes application specialist for India.",
	"education": "You are an education and scholarship application specialist for India.",
}

// Registry generates artifacts for whatever types a plan's intent requires.
type Registry struct {
	gw     *oracle.Gateway
	logger *log.Logger
}

// NewRegistry binds the generator set to a gateway.
func NewRegistry(gw *oracle.Gateway) *Registry {
	return &Registry{
		gw:     gw,
		logger: log.New(log.Writer(), "[ARTIFACTS] ", log.LstdFlags),
	}
}

// Generate produces one artifact per required artifact type. A failed type is
// logged and skipped; the returned slice may be empty but the error is only
// non-nil for programming errors, never for oracle trouble.
func (r *Registry) Generate(ctx context.Context, plan *models.SynthesizedPlan, toolResults map[string]map[string]interface{}, extra map[string]interface{}) ([]models.Artifact, error) {
	if plan == nil || plan.Intent == nil {
		return nil, nil
	}

	framing, ok := domainFraming[plan.Domain]
	if !ok {
		framing = "You are a documents specialist helping women in India act on a strategic plan."
	}

	var out []models.Artifact
	for _, artifactType := range plan.Intent.RequiredArtifacts {
		spec, ok := typeSpecs[artifactType]
		if !ok {
			r.logger.Printf("no template for artifact type %s, skipping", artifactType)
			continue
		}
		content := r.render(ctx, framing, spec, plan, toolResults)
		if content == "" {
			r.logger.Printf("artifact %s not generated (oracle unavailable or empty reply)", artifactType)
			continue
		}
		out = append(out, models.NewArtifact(artifactType, spec.title, plan.Domain, content, map[string]interface{}{
			"goal": plan.Goal,
		}))
	}
	return out, nil
}

func (r *Registry) render(ctx context.Context, framing string, spec typeSpec, plan *models.SynthesizedPlan, toolResults map[string]map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(framing)
	sb.WriteString("\n\nGOAL: " + plan.Goal)
	sb.WriteString("\nEXECUTIVE SUMMARY: " + plan.ExecutiveSummary)
	if len(toolResults) > 0 {
		sb.WriteString("\n\nTOOL RESULTS:")
		for name, res := range toolResults {
			data, _ := json.Marshal(res)
			sb.WriteString(fmt.Sprintf("\n[%s]: %s", name, string(data)))
		}
	}
	sb.WriteString("\n\nTASK: " + spec.instructions)
	sb.WriteString("\n\nRespond with ONLY the markdown document, no preamble.")

	reply := r.gw.Generate(ctx, sb.String())
	if !oracle.IsResponseOK(reply) {
		return ""
	}
	return strings.TrimSpace(reply)
}
