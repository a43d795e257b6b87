package session

import (
	"fmt"
	"time"

	"platra/internal/cart"
	"platra/internal/platform"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

// StoreConfig bounds the session store.
type StoreConfig struct {
	MaxSessions int
	IdleTTL     time.Duration
}

// Store keeps sessions in memory. The least recently used session is dropped when the store
// is full, and any session idle for longer than IdleTTL expires.
type Store struct {
	cache   *expirable.LRU[string, *Session]
	factory platform.Factory
	logger  zerolog.Logger
}

// NewStore creates a store whose sessions get their upstream client from factory.
func NewStore(cfg StoreConfig, factory platform.Factory, logger zerolog.Logger) *Store {
	logger = logger.With().Str("component", "session-store").Logger()
	onEvict := func(id string, _ *Session) {
		logger.Debug().Str("session_id", id).Msg("session evicted")
	}
	return &Store{
		cache:   expirable.NewLRU[string, *Session](cfg.MaxSessions, onEvict, cfg.IdleTTL),
		factory: factory,
		logger:  logger,
	}
}

// Create starts a new session with an empty cart and a fresh upstream client.
func (s *Store) Create() (*Session, error) {
	api, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	sess := New(uuid.NewString(), api, cart.New())
	s.cache.Add(sess.ID, sess)

	s.logger.Debug().Str("session_id", sess.ID).Msg("session created")
	return sess, nil
}

// Get returns the session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, sess)
	return sess, true
}

func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
