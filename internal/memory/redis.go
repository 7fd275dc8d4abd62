package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/models"
)

// RedisStore persists sessions as JSON blobs in Redis, one key per session.
type RedisStore struct {
	client *redis.Client
	caps   caps
}

// NewRedisStore connects a store to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, rcfg config.RedisConfig, mcfg config.MemoryConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", rcfg.Host, rcfg.Port),
		Password: rcfg.Password,
		DB:       rcfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisStore{client: client, caps: resolveCaps(mcfg)}, nil
}

// NewRedisStoreWithClient wraps an existing client. Integration tests use this
// with a containerised Redis.
func NewRedisStoreWithClient(client *redis.Client, mcfg config.MemoryConfig) *RedisStore {
	return &RedisStore{client: client, caps: resolveCaps(mcfg)}
}

// Close releases the underlying client.
func (s *RedisStore) Close() error { return s.client.Close() }

func sessionKey(id string) string { return "session:" + id }

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return models.NewSession(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", sessionID, err)
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = timeNow()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", session.SessionID, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("saving session %s: %w", session.SessionID, err)
	}
	return nil
}

func (s *RedisStore) UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		for k, v := range updates {
			sess.UserProfile[k] = v
		}
	})
}

func (s *RedisStore) AddGoal(ctx context.Context, sessionID, goal, domain string) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.GoalHistory = append(sess.GoalHistory, models.GoalEntry{Goal: goal, Domain: domain, Timestamp: timeNow()})
	})
}

func (s *RedisStore) AddPlan(ctx context.Context, sessionID string, plan models.SynthesizedPlan) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.PlanHistory = append(sess.PlanHistory, models.PlanEntry{Plan: plan, Timestamp: timeNow()})
		s.caps.trimPlanHistory(sess)
	})
}

func (s *RedisStore) AddArtifact(ctx context.Context, sessionID string, artifact models.Artifact) error {
	return s.mutate(ctx, sessionID, func(sess *models.Session) {
		sess.Artifacts = append(sess.Artifacts, artifact)
		s.caps.trimArtifacts(sess)
	})
}

func (s *RedisStore) Artifacts(ctx context.Context, sessionID string) ([]models.Artifact, error) {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Artifacts, nil
}

func (s *RedisStore) ContextSummary(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.caps.summarize(sess), nil
}

func (s *RedisStore) mutate(ctx context.Context, sessionID string, fn func(*models.Session)) error {
	sess, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(sess)
	return s.Save(ctx, sess)
}
