// Package session keeps one sidebar controller and one set of inspector
// values per browser, keyed by a cookie.
package session

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// CookieName is the cookie carrying the session id.
const CookieName = "scenedash_session"

// DefaultTTL is used when Options.TTL is not positive.
const DefaultTTL = 30 * time.Minute

// Factory builds the per-session state. It receives the new session id so
// that navigators can attribute visits.
type Factory func(id string) (*sidebar.Controller, *demos.Values)

// Options configures a Manager.
type Options struct {
	TTL      time.Duration
	OnCreate func(id string)
	OnExpire func(id string)
}

// Session is one visitor's state. All access goes through Do.
type Session struct {
	ID string

	mu      sync.Mutex
	sidebar *sidebar.Controller
	values  *demos.Values

	now      func() time.Time
	lastSeen atomic.Int64 // unix nanoseconds
}

// Do runs fn with exclusive access to the session state and marks the
// session as seen, so websocket traffic keeps it alive.
func (s *Session) Do(fn func(c *sidebar.Controller, v *demos.Values)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	fn(s.sidebar, s.values)
}

func (s *Session) touch() { s.lastSeen.Store(s.now().UnixNano()) }

func (s *Session) seenBefore(t time.Time) bool {
	return s.lastSeen.Load() < t.UnixNano()
}

// Manager owns every live session.
type Manager struct {
	factory Factory
	opts    Options
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager that builds sessions with factory.
func NewManager(factory Factory, opts Options) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &Manager{
		factory:  factory,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns a live session and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.touch()
	}
	return s, ok
}

// Create starts a new session with a fresh id.
func (m *Manager) Create() *Session {
	id := uuid.New().String()
	c, v := m.factory(id)
	s := &Session{ID: id, sidebar: c, values: v, now: func() time.Time { return m.now() }}
	s.touch()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	if m.opts.OnCreate != nil {
		m.opts.OnCreate(id)
	}
	return s
}

// FromRequest returns the session named by the request cookie, creating
// one and setting the cookie when it is missing or expired.
func (m *Manager) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	if ck, err := r.Cookie(CookieName); err == nil {
		if s, ok := m.Get(ck.Value); ok {
			return s
		}
	}

	s := m.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.opts.TTL)

	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.seenBefore(cutoff) {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	if m.opts.OnExpire != nil {
		for _, id := range expired {
			m.opts.OnExpire(id)
		}
	}
	return len(expired)
}

// Run sweeps expired sessions every half TTL until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.opts.TTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
