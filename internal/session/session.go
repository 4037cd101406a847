// Package session implements per-message navigation through the APOD
// archive. A session is bound to exactly one reply message, accepts page
// requests while active, and expires at a fixed deadline.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"apod_bot/internal/apod"
	"apod_bot/internal/article"
	"apod_bot/internal/card"
)

var (
	// ErrExpired is returned for page requests arriving after the
	// session's deadline.
	ErrExpired = errors.New("navigation session expired")

	// ErrAtBoundary is returned when paging would leave the archive.
	// It is a soft notice, not a fault: the displayed card is unchanged.
	ErrAtBoundary = errors.New("reached the edge of the archive")
)

// Direction selects which neighbouring entry a page request targets.
type Direction int

// Page directions.
const (
	Backward Direction = iota
	Forward
)

// Fetcher fetches a single archive entry. *apod.Client satisfies it.
type Fetcher interface {
	FetchOne(ctx context.Context, date time.Time, thumbs bool) (apod.Record, error)
}

type state int

const (
	active state = iota
	expired
)

// Session tracks the entry currently displayed by one reply message.
// All methods are safe for concurrent use; the mutex serializes page
// transitions should the platform ever deliver overlapping interactions.
type Session struct {
	ID        string
	ChatID    int64
	MessageID int

	fetch Fetcher

	mu        sync.Mutex
	st        state
	current   time.Time
	card      card.Card
	expiresAt time.Time
	now       func() time.Time
}

// New creates an active session displaying the given article. The
// deadline is fixed at creation: paging does not extend it. The session
// must be bound to its reply message with Bind before registration.
func New(a article.Article, c card.Card, chatID int64, fetch Fetcher, ttl time.Duration) *Session {
	now := time.Now
	return &Session{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		fetch:     fetch,
		current:   a.Date,
		card:      c,
		expiresAt: now().Add(ttl),
		now:       now,
	}
}

// Bind attaches the session to the reply message it decorates.
func (s *Session) Bind(messageID int) {
	s.MessageID = messageID
}

// CurrentDate returns the date currently displayed.
func (s *Session) CurrentDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Card returns the card currently displayed.
func (s *Session) Card() card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card
}

// Deadline returns the instant the session stops accepting input.
func (s *Session) Deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// Page moves the displayed entry one day backward or forward and returns
// the re-rendered card. On any failure the session keeps its current date
// and card: a failed transition never corrupts the displayed state.
func (s *Session) Page(ctx context.Context, dir Direction) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The terminal transition itself is Expire's job (it must run exactly
	// once, paired with disabling the controls); Page only refuses input
	// once the deadline has passed.
	if s.st != active || !s.now().Before(s.expiresAt) {
		return card.Card{}, ErrExpired
	}

	candidate := s.current.AddDate(0, 0, 1)
	if dir == Backward {
		candidate = s.current.AddDate(0, 0, -1)
	}
	if !apod.IsValidDate(candidate) {
		return card.Card{}, ErrAtBoundary
	}

	rec, err := s.fetch.FetchOne(ctx, candidate, true)
	if err != nil {
		return card.Card{}, err
	}
	a, err := article.Parse(rec)
	if err != nil {
		return card.Card{}, err
	}

	s.current = candidate
	s.card = card.Render(a)
	return s.card, nil
}

// Expire moves the session to its terminal state. It reports whether
// this call performed the transition, so controls are disabled exactly
// once no matter how often it runs.
func (s *Session) Expire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st == expired {
		return false
	}
	s.st = expired
	return true
}
