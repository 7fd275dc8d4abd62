package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/models"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	redisC, err := tcRedis.RunContainer(ctx, testcontainers.WithWaitStrategy(wait.ForListeningPort("6379/tcp")))
	if err != nil {
		t.Fatalf("redis container: %v", err)
	}
	defer func() { _ = redisC.Terminate(ctx) }()

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer func() { _ = client.Close() }()

	store := NewRedisStoreWithClient(client, config.MemoryConfig{PlanHistoryCap: 10})

	if err := store.UpdateProfile(ctx, "it-1", map[string]interface{}{"location": "Jaipur"}); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if err := store.AddGoal(ctx, "it-1", "find grants for my tailoring business", "grants"); err != nil {
		t.Fatalf("goal: %v", err)
	}
	for i := 0; i < 12; i++ {
		if err := store.AddPlan(ctx, "it-1", models.SynthesizedPlan{Goal: fmt.Sprintf("plan-%d", i), Domain: "grants"}); err != nil {
			t.Fatalf("plan: %v", err)
		}
	}
	if err := store.AddArtifact(ctx, "it-1", models.NewArtifact("action_plan", "Grant Plan", "grants", "# plan", nil)); err != nil {
		t.Fatalf("artifact: %v", err)
	}

	sess, err := store.Load(ctx, "it-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.UserProfile["location"] != "Jaipur" {
		t.Fatalf("profile not persisted: %+v", sess.UserProfile)
	}
	if len(sess.PlanHistory) != 10 {
		t.Fatalf("plan history not capped over redis, got %d", len(sess.PlanHistory))
	}
	if len(sess.GoalHistory) != 1 || len(sess.Artifacts) != 1 {
		t.Fatalf("history not persisted: %d goals, %d artifacts", len(sess.GoalHistory), len(sess.Artifacts))
	}

	summary, err := store.ContextSummary(ctx, "it-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary == NoPriorContext {
		t.Fatal("expected populated context summary")
	}
}
