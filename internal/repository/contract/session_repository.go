package contract

import (
	"time"

	"manualbot-be/pkg/store"
)

// SessionRepository holds ephemeral per-user dialogue state. Get never
// fails: a missing key yields a fresh zero-flow session. Set replaces the
// stored state and re-arms its expiry; Clear removes it. Implementations
// treat expiry as advisory cleanup — callers still check the session's
// logical deadline before trusting it.
type SessionRepository interface {
	Get(userKey string) *store.Session
	Set(userKey string, session *store.Session, ttl time.Duration)
	Clear(userKey string)
}
