package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"manualbot-be/internal/repository/contract"
	"manualbot-be/pkg/store"
)

// SessionRepository keeps dialogue sessions in process memory. go-cache owns
// the TTL bookkeeping: Set with a new TTL replaces the old entry and its
// deadline, so there is no stale timer firing against replaced state.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration 10 minutes, expired entries purged every minute.
	// Entries carry their own TTL; the purge interval only bounds how long
	// logically-dead state lingers in memory.
	c := cache.New(10*time.Minute, 1*time.Minute)
	return &SessionRepository{cache: c}
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Get(userKey string) *store.Session {
	if x, found := r.cache.Get(userKey); found {
		return x.(*store.Session)
	}
	return store.NewSession(userKey)
}

func (r *SessionRepository) Set(userKey string, session *store.Session, ttl time.Duration) {
	r.cache.Set(userKey, session, ttl)
}

func (r *SessionRepository) Clear(userKey string) {
	r.cache.Delete(userKey)
}
