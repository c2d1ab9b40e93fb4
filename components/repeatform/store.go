package repeatform

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

var (
	errSessionLimit = errors.New("repeatform: session limit reached")
	errNilForm      = errors.New("repeatform: form is required")
)

// session pairs one live replicating form with the lock that serializes
// access to it. The replication core is single-threaded by contract; the
// per-session mutex keeps the activation → create → append cycle atomic
// when requests arrive concurrently.
type session struct {
	id      string
	created time.Time

	mu   sync.Mutex
	form *replicate.Form
}

type store struct {
	mu          sync.RWMutex
	sessions    map[string]*session
	maxSessions int
}

func newStore(maxSessions int) *store {
	return &store{
		sessions:    make(map[string]*session),
		maxSessions: maxSessions,
	}
}

func (s *store) create(form *replicate.Form) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return nil, errSessionLimit
	}

	sess := &session{
		id:      uuid.NewString(),
		created: time.Now(),
		form:    form,
	}
	s.sessions[sess.id] = sess
	return sess, nil
}

func (s *store) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *store) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

func (s *store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
