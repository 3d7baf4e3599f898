package session

import (
	"context"
	"sync"

	"clinic-portal/models"
)

// Memory is an in-process Store used by tests and local development without
// a Redis instance. Flashes are popped on first read instead of expiring.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	flashes  map[string]Flash
}

func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]models.Session),
		flashes:  make(map[string]Flash),
	}
}

func (m *Memory) Get(_ context.Context, sid string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sid]
	if !ok {
		return nil, nil
	}
	copied := copySession(sess)
	return &copied, nil
}

func (m *Memory) Set(_ context.Context, sid string, sess *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sid] = copySession(*sess)
	return nil
}

// copySession detaches the profile pointer and cookie slice so callers and
// the store never share mutable state, matching the Redis store's JSON
// round-trip.
func copySession(sess models.Session) models.Session {
	if sess.User != nil {
		user := *sess.User
		sess.User = &user
	}
	if sess.BackendCookies != nil {
		sess.BackendCookies = append([]string(nil), sess.BackendCookies...)
	}
	return sess
}

func (m *Memory) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	delete(m.flashes, sid)
	return nil
}

func (m *Memory) SetFlash(_ context.Context, sid string, f Flash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flashes[sid] = f
	return nil
}

func (m *Memory) PopFlash(_ context.Context, sid string) (*Flash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.flashes[sid]
	if !ok {
		return nil, nil
	}
	delete(m.flashes, sid)
	return &f, nil
}
