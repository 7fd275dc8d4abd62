// Package memory persists per-session state: user profile, goal and plan
// history, and generated artifacts. Histories are capped so sessions stay
// bounded no matter how long-lived they are.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/models"
)

// timeNow is swapped by tests that assert on eviction order.
var timeNow = func() time.Time { return time.Now().UTC() }

// NoPriorContext is the summary served for sessions with no history.
const NoPriorContext = "New user - no prior context."

// Store is the session persistence contract. Load returns a fresh session
// shell for unknown ids; nothing is persisted until the first mutation.
type Store interface {
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) error
	AddGoal(ctx context.Context, sessionID, goal, domain string) error
	AddPlan(ctx context.Context, sessionID string, plan models.SynthesizedPlan) error
	AddArtifact(ctx context.Context, sessionID string, artifact models.Artifact) error
	Artifacts(ctx context.Context, sessionID string) ([]models.Artifact, error)
	ContextSummary(ctx context.Context, sessionID string) (string, error)
}

// caps carries the resolved history limits shared by every implementation.
type caps struct {
	planHistory  int
	artifactCap  int
	artifactKeep int
	recentGoals  int
}

func resolveCaps(cfg config.MemoryConfig) caps {
	c := caps{
		planHistory:  cfg.PlanHistoryCap,
		artifactCap:  cfg.ArtifactCap,
		artifactKeep: cfg.ArtifactKeep,
		recentGoals:  cfg.RecentGoals,
	}
	if c.planHistory <= 0 {
		c.planHistory = 10
	}
	if c.artifactCap <= 0 {
		c.artifactCap = 20
	}
	if c.artifactKeep <= 0 || c.artifactKeep > c.artifactCap {
		c.artifactKeep = 15
	}
	if c.recentGoals <= 0 {
		c.recentGoals = 3
	}
	return c
}

// trimPlanHistory keeps the newest planHistory entries. Runs on every append,
// so the history never exceeds the cap.
func (c caps) trimPlanHistory(s *models.Session) {
	if len(s.PlanHistory) > c.planHistory {
		s.PlanHistory = s.PlanHistory[len(s.PlanHistory)-c.planHistory:]
	}
}

// trimArtifacts evicts oldest-first down to artifactKeep once the list crosses
// artifactCap. Eviction is batched below the cap so it doesn't run on every
// single append.
func (c caps) trimArtifacts(s *models.Session) {
	if len(s.Artifacts) > c.artifactCap {
		sort.SliceStable(s.Artifacts, func(i, j int) bool {
			return s.Artifacts[i].CreatedAt.Before(s.Artifacts[j].CreatedAt)
		})
		s.Artifacts = s.Artifacts[len(s.Artifacts)-c.artifactKeep:]
	}
}

// summarize renders the session into the prompt context block.
func (c caps) summarize(s *models.Session) string {
	var parts []string
	if len(s.UserProfile) > 0 {
		keys := make([]string, 0, len(s.UserProfile))
		for k := range s.UserProfile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %v", k, s.UserProfile[k]))
		}
		parts = append(parts, "User Profile: "+strings.Join(pairs, ", "))
	}
	if len(s.GoalHistory) > 0 {
		start := len(s.GoalHistory) - c.recentGoals
		if start < 0 {
			start = 0
		}
		goals := make([]string, 0, c.recentGoals)
		for _, g := range s.GoalHistory[start:] {
			goals = append(goals, fmt.Sprintf("%q (%s)", g.Goal, g.Domain))
		}
		parts = append(parts, "Recent Goals: "+strings.Join(goals, "; "))
	}
	if len(parts) == 0 {
		return NoPriorContext
	}
	return strings.Join(parts, "\n")
}

// InMemoryStore keeps sessions in a process-local map. Used by tests and
// single-node deployments without Redis.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	caps     caps
}

// NewInMemoryStore builds an empty in-process store.
func NewInMemoryStore(cfg config.MemoryConfig) *InMemoryStore {
	return &InMemoryStore{
		sessions: map[string]*models.Session{},
		caps:     resolveCaps(cfg),
	}
}

func (s *InMemoryStore) Load(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return models.NewSession(sessionID), nil
	}
	cp := *sess
	return &cp, nil
}

func (s *InMemoryStore) Save(_ context.Context, session *models.Session) error {
	session.UpdatedAt = timeNow()
	s.mu.Lock()
	cp := *session
	s.sessions[session.SessionID] = &cp
	s.mu.Unlock()
	return nil
}

func (s *InMemoryStore) UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		for k, v := range updates {
			sess.UserProfile[k] = v
		}
	})
}

func (s *InMemoryStore) AddGoal(ctx context.Context, sessionID, goal, domain string) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.GoalHistory = append(sess.GoalHistory, models.GoalEntry{Goal: goal, Domain: domain, Timestamp: timeNow()})
	})
}

func (s *InMemoryStore) AddPlan(ctx context.Context, sessionID string, plan models.SynthesizedPlan) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.PlanHistory = append(sess.PlanHistory, models.PlanEntry{Plan: plan, Timestamp: timeNow()})
		s.caps.trimPlanHistory(sess)
	})
}

func (s *InMemoryStore) AddArtifact(ctx context.Context, sessionID string, artifact models.Artifact) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.Artifacts = append(sess.Artifacts, artifact)
		s.caps.trimArtifacts(sess)
	})
}

func (s *InMemoryStore) Artifacts(ctx context.Context, sessionID string) ([]models.Artifact, error) {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Artifacts, nil
}

func (s *InMemoryStore) ContextSummary(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.caps.summarize(sess), nil
}

func (s *InMemoryStore) mutate(ctx context.Context, sessionID string, fn func(*models.Session)) error {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(sess)
	return s.Save(ctx, sess)
}
