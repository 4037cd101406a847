package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"apod_bot/internal/metrics"
)

// ExpireFunc is called once for every session the registry expires, with
// the session already in its terminal state. Implementations typically
// strip the controls from the bound message.
type ExpireFunc func(s *Session)

// Registry owns every live session and sweeps out expired ones.
type Registry struct {
	onExpire ExpireFunc
	log      zerolog.Logger
	tick     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry. onExpire may be nil.
func NewRegistry(onExpire ExpireFunc, log zerolog.Logger) *Registry {
	return &Registry{
		onExpire: onExpire,
		log:      log,
		tick:     30 * time.Second,
		sessions: make(map[string]*Session),
	}
}

// SetTickInterval overrides the default 30-second sweep interval.
func (r *Registry) SetTickInterval(d time.Duration) {
	r.tick = d
}

// Add registers a session under its ID.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	metrics.ActiveSessions.Set(float64(r.Len()))
}

// Get returns the session with the given ID, if it is still live.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Run starts the sweep loop, blocking until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(time.Now())
		}
	}
}

// Sweep expires and removes every session whose deadline has passed.
func (r *Registry) Sweep(now time.Time) {
	r.mu.Lock()
	var due []*Session
	for id, s := range r.sessions {
		if !now.Before(s.Deadline()) {
			due = append(due, s)
			delete(r.sessions, id)
		}
	}
	remaining := len(r.sessions)
	r.mu.Unlock()

	for _, s := range due {
		if s.Expire() && r.onExpire != nil {
			r.onExpire(s)
		}
		r.log.Debug().Str("session_id", s.ID).Int64("chat_id", s.ChatID).Msg("session expired")
	}
	metrics.ActiveSessions.Set(float64(remaining))
}
