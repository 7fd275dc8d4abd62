package artifacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/models"
)

type scriptedBackend struct {
	replies []string
	fail    bool
	calls   int
}

func (b *scriptedBackend) Complete(_ context.Context, _, _ string) (string, error) {
	b.calls++
	if b.fail {
		return "", errors.New("backend down")
	}
	reply := b.replies[0]
	if len(b.replies) > 1 {
		b.replies = b.replies[1:]
	}
	return reply, nil
}

func newGateway(backend oracle.Backend) *oracle.Gateway {
	gw := oracle.NewGateway(config.OracleConfig{Models: []string{"m"}, MaxRetries: 1}, backend)
	gw.SetSleep(func(time.Duration) {})
	return gw
}

func testPlan(types ...string) *models.SynthesizedPlan {
	return &models.SynthesizedPlan{
		Goal:             "move into data analytics",
		Domain:           "career",
		ExecutiveSummary: "switch via certification and targeted applications",
		Intent: &models.IntentProfile{
			RequiredArtifacts: types,
			Domain:            "career",
		},
	}
}

func TestGenerateProducesOneArtifactPerRequiredType(t *testing.T) {
	backend := &scriptedBackend{replies: []string{"# Skill Gap Report\n\ncontent", "# Resume Draft\n\ncontent"}}
	reg := NewRegistry(newGateway(backend))

	arts, err := reg.Generate(context.Background(), testPlan("skill_gap_report", "resume_draft"), nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(arts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(arts))
	}
	if arts[0].Type != "skill_gap_report" || arts[1].Type != "resume_draft" {
		t.Fatalf("wrong types: %s, %s", arts[0].Type, arts[1].Type)
	}
	if arts[0].Title != "Skill Gap Report" || arts[0].Format != "markdown" {
		t.Fatalf("artifact metadata wrong: %+v", arts[0])
	}
	if arts[0].ID == arts[1].ID {
		t.Fatal("artifact ids must be unique")
	}
}

func TestGenerateYieldsZeroArtifactsWhenOracleDown(t *testing.T) {
	reg := NewRegistry(newGateway(&scriptedBackend{fail: true}))

	arts, err := reg.Generate(context.Background(), testPlan("rights_summary"), nil, nil)
	if err != nil {
		t.Fatalf("oracle trouble must not surface as error, got %v", err)
	}
	if len(arts) != 0 {
		t.Fatalf("expected zero artifacts, got %d", len(arts))
	}
}

func TestGenerateSkipsUnknownTypes(t *testing.T) {
	backend := &scriptedBackend{replies: []string{"# doc"}}
	reg := NewRegistry(newGateway(backend))

	arts, err := reg.Generate(context.Background(), testPlan("hologram", "scheme_checklist"), nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(arts) != 1 || arts[0].Type != "scheme_checklist" {
		t.Fatalf("expected only scheme_checklist, got %+v", arts)
	}
}

func TestGenerateNilIntent(t *testing.T) {
	reg := NewRegistry(newGateway(&scriptedBackend{replies: []string{"x"}}))
	arts, err := reg.Generate(context.Background(), &models.SynthesizedPlan{}, nil, nil)
	if err != nil || arts != nil {
		t.Fatalf("expected nil/nil for plan without intent, got %v %v", arts, err)
	}
}
