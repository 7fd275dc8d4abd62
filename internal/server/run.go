package server

import (
	"context"
	"fmt"
	"log"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/agent/core"
	"github.com/she-oracle/orchestrator/internal/agent/telemetry"
	"github.com/she-oracle/orchestrator/internal/artifacts"
	"github.com/she-oracle/orchestrator/internal/capability"
	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/memory"
	"github.com/she-oracle/orchestrator/internal/oracle"
	"github.com/she-oracle/orchestrator/internal/tools"
)

// Runtime holds the wired planning pipeline. cmd binaries build one Runtime
// and either serve it over HTTP or drive the orchestrator directly.
type Runtime struct {
	Orchestrator *core.Orchestrator
	Store        memory.Store
	Gateway      *oracle.Gateway
	Knowledge    knowledge.Retriever
	Telemetry    *telemetry.Telemetry
}

// BuildRuntime assembles the full pipeline from configuration: oracle
// gateway, capability registry, knowledge index, tool set, session store
// (Redis when configured, in-memory otherwise), artifact generator, and the
// orchestrator itself.
func BuildRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	backend := oracle.NewOpenAIBackend(cfg.Oracle)
	gw := oracle.NewGateway(cfg.Oracle, backend)

	registry, err := capability.NewRegistry(capability.DefaultToolCards(), cfg.Capability.SigningSecret, cfg.Capability.RequiredTools)
	if err != nil {
		return nil, fmt.Errorf("building capability registry: %w", err)
	}

	kb, err := knowledge.NewIndex(nil)
	if err != nil {
		return nil, fmt.Errorf("building knowledge index: %w", err)
	}

	var store memory.Store
	if cfg.Storage.Redis.Host != "" {
		rs, err := memory.NewRedisStore(ctx, cfg.Storage.Redis, cfg.Memory)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = rs
	} else {
		log.Printf("[SERVER] no redis configured, sessions are in-memory only")
		store = memory.NewInMemoryStore(cfg.Memory)
	}

	tel := telemetry.New(cfg.Telemetry)
	orch := core.NewOrchestrator(
		gw,
		registry,
		tools.NewSet(gw, kb),
		store,
		kb,
		artifacts.NewRegistry(gw),
		tel,
		cfg.Planner,
		cfg.Knowledge.TopK,
	)

	return &Runtime{
		Orchestrator: orch,
		Store:        store,
		Gateway:      gw,
		Knowledge:    kb,
		Telemetry:    tel,
	}, nil
}

// Run builds the pipeline and serves HTTP until the listener stops.
func Run(ctx context.Context, cfg *config.Config, addr string) error {
	rt, err := BuildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	s := New(cfg.Server, rt.Orchestrator, rt.Store, rt.Gateway, rt.Knowledge, rt.Telemetry)
	return s.Start(addr)
}
