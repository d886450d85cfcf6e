// Package session holds the signed-in user's token and profile between runs.
//
// A Store has an explicit Load/Save/Clear lifecycle and is passed to whatever
// needs it (the API client, the local server, the login CLI).
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/meltforce/momentum/internal/models"
)

// ErrNoSession is returned by Load when nobody is signed in.
var ErrNoSession = errors.New("session: not logged in")

// Session is the credential state of the signed-in user.
type Session struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	SavedAt time.Time   `json:"saved_at"`
}

// Store persists at most one Session.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu  sync.Mutex
	cur *Session
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur == nil {
		return Session{}, ErrNoSession
	}
	return *m.cur, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now().UTC()
	}
	m.mu.Lock()
	m.cur = &s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.cur = nil
	m.mu.Unlock()
	return nil
}

// Token returns the stored token, or "" when nobody is signed in.
func Token(ctx context.Context, st Store) string {
	s, err := st.Load(ctx)
	if err != nil {
		return ""
	}
	return s.Token
}
