package memory

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/models"
)

func TestPlanHistoryCapped(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(config.MemoryConfig{PlanHistoryCap: 10})

	for i := 0; i < 14; i++ {
		plan := models.SynthesizedPlan{Goal: fmt.Sprintf("goal-%d", i), Domain: "career"}
		if err := store.AddPlan(ctx, "s1", plan); err != nil {
			t.Fatalf("add plan: %v", err)
		}
	}

	sess, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sess.PlanHistory) != 10 {
		t.Fatalf("expected history trimmed to 10, got %d", len(sess.PlanHistory))
	}
	if sess.PlanHistory[0].Plan.Goal != "goal-4" {
		t.Fatalf("oldest plans should be dropped, first is %s", sess.PlanHistory[0].Plan.Goal)
	}
	if sess.PlanHistory[9].Plan.Goal != "goal-13" {
		t.Fatalf("newest plan missing, last is %s", sess.PlanHistory[9].Plan.Goal)
	}
}

func TestArtifactsEvictedOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(config.MemoryConfig{ArtifactCap: 20, ArtifactKeep: 15})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := base
	timeNow = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	defer func() { timeNow = func() time.Time { return time.Now().UTC() } }()

	for i := 0; i < 21; i++ {
		art := models.Artifact{
			ID:        fmt.Sprintf("a-%d", i),
			Type:      "action_plan",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AddArtifact(ctx, "s1", art); err != nil {
			t.Fatalf("add artifact: %v", err)
		}
	}

	arts, err := store.Artifacts(ctx, "s1")
	if err != nil {
		t.Fatalf("artifacts: %v", err)
	}
	if len(arts) != 15 {
		t.Fatalf("expected eviction down to 15, got %d", len(arts))
	}
	if arts[0].ID != "a-6" {
		t.Fatalf("oldest artifacts should be evicted, first is %s", arts[0].ID)
	}
}

func TestContextSummaryNewUser(t *testing.T) {
	store := NewInMemoryStore(config.MemoryConfig{})
	got, err := store.ContextSummary(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got != NoPriorContext {
		t.Fatalf("expected new-user line, got %q", got)
	}
}

func TestContextSummaryIncludesProfileAndRecentGoals(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(config.MemoryConfig{RecentGoals: 3})

	if err := store.UpdateProfile(ctx, "s1", map[string]interface{}{"location": "Pune", "field": "finance"}); err != nil {
		t.Fatalf("profile: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := store.AddGoal(ctx, "s1", fmt.Sprintf("goal-%d", i), "career"); err != nil {
			t.Fatalf("goal: %v", err)
		}
	}

	got, err := store.ContextSummary(ctx, "s1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(got, "User Profile: field: finance, location: Pune") {
		t.Fatalf("profile line wrong:\n%s", got)
	}
	if strings.Contains(got, "goal-0") || strings.Contains(got, "goal-1") {
		t.Fatalf("only the 3 most recent goals should appear:\n%s", got)
	}
	if !strings.Contains(got, "goal-4") {
		t.Fatalf("latest goal missing:\n%s", got)
	}
}

func TestLoadUnknownSessionReturnsFreshShell(t *testing.T) {
	store := NewInMemoryStore(config.MemoryConfig{})
	sess, err := store.Load(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.SessionID != "fresh" || len(sess.GoalHistory) != 0 {
		t.Fatalf("expected empty shell, got %+v", sess)
	}
}
