package capability

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ToolCard represents registry metadata for a specialist capability.
type ToolCard struct {
	Name         string                 `json:"name"`
	Version      string                 `json:"version"`
	Description  string                 `json:"description"`
	InputFields  []string               `json:"input_fields"`
	OutputSchema map[string]interface{} `json:"output_schema"`
	SideEffects  []string               `json:"side_effects"`
	Checksum     string                 `json:"checksum"`
	Signature    string                 `json:"signature"`
}

// DefaultToolCards returns the built-in specialist capabilities. Descriptions
// double as the capability catalog the reasoning loop sees when deciding what
// to call.
func DefaultToolCards() []ToolCard {
	return []ToolCard{
		{
			Name:    "grant_finder",
			Version: "v1",
			Description: "Searches government grants, schemes, and funding programs available for women " +
				"in India. Returns matching schemes with eligibility criteria, amounts, and " +
				"application links. Use when the goal involves funding, loans, subsidies, " +
				"startup capital, or government welfare programs.",
			InputFields: []string{"location", "category"},
			SideEffects: []string{"network"},
		},
		{
			Name:    "legal_rights_checker",
			Version: "v1",
			Description: "Looks up Indian labor laws, workplace rights, legal protections, and remedies " +
				"available to women. Returns violated rights, legal provisions, escalation steps, " +
				"and protection mechanisms. Use when the goal involves workplace issues, " +
				"harassment, legal disputes, or rights violations.",
			InputFields: []string{"situation", "situation_type"},
			SideEffects: []string{"network"},
		},
		{
			Name:    "resume_analyzer",
			Version: "v1",
			Description: "Analyzes a career profile, identifies skill gaps, and recommends upskilling " +
				"paths and job targets. Returns gap analysis, certifications to pursue, salary " +
				"benchmarks, and target job titles. Use when the goal involves career growth, " +
				"job switching, skill development, or professional advancement.",
			InputFields: []string{"resume_text", "target_role", "location"},
			SideEffects: []string{"network"},
		},
		{
			Name:    "income_projection",
			Version: "v1",
			Description: "Projects realistic income growth over 6, 12, and 24 months based on current " +
				"skills, domain, and location. Returns income forecasts by skill path with " +
				"actionable steps. Use when the goal involves financial planning, income growth, " +
				"salary negotiation, or understanding earning potential.",
			InputFields: []string{"current_skills", "current_income", "target_domain", "location"},
			SideEffects: []string{"network"},
		},
		{
			Name:    "risk_assessment",
			Version: "v1",
			Description: "Builds a risk matrix for a plan or business idea: financial, legal, market, " +
				"and personal risks with specific mitigation strategies. Use when the goal " +
				"involves starting a business, making a major career move, or any situation " +
				"where failure scenarios need to be mapped.",
			InputFields: []string{"plan", "plan_type", "budget"},
			SideEffects: []string{"network"},
		},
	}
}

// DefaultRequired lists the capabilities every deployment must register.
func DefaultRequired() []string {
	return []string{"grant_finder", "legal_rights_checker", "resume_analyzer", "income_projection", "risk_assessment"}
}

// Registry holds validated ToolCards keyed by capability name.
type Registry struct {
	tools map[string]ToolCard
}

// ErrToolMissing indicates a required tool is not registered.
var ErrToolMissing = fmt.Errorf("required tool missing")

// NewRegistry validates ToolCards and ensures required tools exist. With a
// signing secret set, every card's HMAC signature is verified; highest version
// wins when a name is registered twice.
func NewRegistry(cards []ToolCard, signingSecret string, required []string) (*Registry, error) {
	reg := &Registry{tools: make(map[string]ToolCard)}
	for _, tc := range cards {
		if err := validateSignature(tc, signingSecret); err != nil {
			return nil, fmt.Errorf("tool %s@%s signature invalid: %w", tc.Name, tc.Version, err)
		}
		existing, ok := reg.tools[tc.Name]
		if !ok || versionGreater(tc.Version, existing.Version) {
			reg.tools[tc.Name] = tc
		}
	}
	if len(required) == 0 {
		required = DefaultRequired()
	}
	for _, r := range required {
		if _, ok := reg.tools[r]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrToolMissing, r)
		}
	}
	return reg, nil
}

// Tool returns the ToolCard for a capability name.
func (r *Registry) Tool(name string) (ToolCard, bool) {
	if r == nil {
		return ToolCard{}, false
	}
	tc, ok := r.tools[name]
	return tc, ok
}

// Has reports whether a capability name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Tool(name)
	return ok
}

// Names returns the registered capability names in stable order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog formats every capability as "- name: description" for prompt
// injection.
func (r *Registry) Catalog() string {
	var b strings.Builder
	for _, name := range r.Names() {
		tc := r.tools[name]
		fmt.Fprintf(&b, "- %s: %s\n", tc.Name, tc.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ComputeChecksum returns a deterministic hash of the ToolCard payload (excluding signature field).
func ComputeChecksum(tc ToolCard) (string, error) {
	payload := map[string]interface{}{
		"name":          tc.Name,
		"version":       tc.Version,
		"description":   tc.Description,
		"input_fields":  tc.InputFields,
		"output_schema": tc.OutputSchema,
		"side_effects":  tc.SideEffects,
	}
	normalized, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:]), nil
}

// SignToolCard computes an HMAC signature using the signing secret.
func SignToolCard(tc ToolCard, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("signing secret is empty")
	}
	checksum, err := ComputeChecksum(tc)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(checksum))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func validateSignature(tc ToolCard, secret string) error {
	if secret == "" {
		return nil
	}
	expected, err := SignToolCard(tc, secret)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(tc.Signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

func versionGreater(a, b string) bool {
	if a == b {
		return false
	}
	return compareParts(splitVersion(a), splitVersion(b)) > 0
}

func splitVersion(v string) []int {
	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		fmt.Sscanf(p, "%d", &out[i])
	}
	return out
}

func compareParts(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, bi := 0, 0
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		if ai > bi {
			return 1
		}
		if ai < bi {
			return -1
		}
	}
	return 0
}
