package webui

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tgfriperie/xmlsheets/internal/nfe"
)

// sessionStore keeps extraction results between the preview render and the
// download click. Entries live for one interaction: take removes them, and
// anything older than the TTL is purged on the next insert.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
}

type session struct {
	records   []nfe.LineRecord
	createdAt time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// put stores a record set and returns its download token.
func (st *sessionStore) put(records []nfe.LineRecord) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	st.purgeLocked(now)

	token := uuid.NewString()
	st.sessions[token] = session{records: records, createdAt: now}
	return token
}

// take returns the record set for a token and drops it from the store.
func (st *sessionStore) take(token string) ([]nfe.LineRecord, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[token]
	if !ok {
		return nil, false
	}
	delete(st.sessions, token)

	if time.Since(s.createdAt) > st.ttl {
		return nil, false
	}
	return s.records, true
}

func (st *sessionStore) purgeLocked(now time.Time) {
	for token, s := range st.sessions {
		if now.Sub(s.createdAt) > st.ttl {
			delete(st.sessions, token)
		}
	}
}
