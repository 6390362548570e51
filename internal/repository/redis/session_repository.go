package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"manualbot-be/internal/pkg/logger"
	"manualbot-be/internal/repository/contract"
	"manualbot-be/pkg/store"
)

const keyPrefix = "dialogue:session:"

// SessionRepository is the shared-store variant of the session repository,
// for deployments running more than one webhook instance. Redis EXPIRE
// carries the TTL; rewriting a key rewrites its deadline. Errors degrade to
// zero-flow sessions because session state is ephemeral by contract.
type SessionRepository struct {
	client *redis.Client
	logger logger.ILogger
}

func NewSessionRepository(redisURL string, log logger.ILogger) (*SessionRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &SessionRepository{
		client: redis.NewClient(opts),
		logger: log,
	}, nil
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Get(userKey string) *store.Session {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, keyPrefix+userKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("RedisSessionRepository", "Get failed, returning empty session", map[string]interface{}{"error": err.Error()})
		}
		return store.NewSession(userKey)
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("RedisSessionRepository", "Corrupt session payload, returning empty session", map[string]interface{}{"error": err.Error()})
		return store.NewSession(userKey)
	}
	return &session
}

func (r *SessionRepository) Set(userKey string, session *store.Session, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("RedisSessionRepository", "Marshal session failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := r.client.Set(ctx, keyPrefix+userKey, data, ttl).Err(); err != nil {
		r.logger.Warn("RedisSessionRepository", "Set failed", map[string]interface{}{"error": err.Error()})
	}
}

func (r *SessionRepository) Clear(userKey string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, keyPrefix+userKey).Err(); err != nil {
		r.logger.Warn("RedisSessionRepository", "Clear failed", map[string]interface{}{"error": err.Error()})
	}
}
