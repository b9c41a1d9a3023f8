package prefs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// opTimeout bounds a single backend call so a stuck database cannot hang
// an event handler.
const opTimeout = 2 * time.Second

// Store is one client's view of a Backend. It never reports failures:
// an unreadable value is absent and an unwritable value is dropped, each
// logged as ErrStorageUnavailable.
type Store struct {
	backend  Backend
	clientID string
	logger   *zap.Logger

	// mu serializes operations so a write is visible to the next read in
	// the order the events were applied.
	mu sync.Mutex
}

// NewStore binds backend to clientID. A nil logger discards output.
func NewStore(backend Backend, clientID string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend:  backend,
		clientID: clientID,
		logger:   logger.With(zap.String("client_id", clientID)),
	}
}

// ClientID returns the client the store is bound to.
func (s *Store) ClientID() string { return s.clientID }

// Get returns the stored value for key, or false when it is absent or the
// backend cannot be read.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	v, ok, err := s.backend.Get(ctx, s.clientID, key)
	if err != nil {
		s.degraded("get", key, err)
		return "", false
	}
	return v, ok
}

// Set stores value under key.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.backend.Set(ctx, s.clientID, key, value); err != nil {
		s.degraded("set", key, err)
	}
}

// Remove deletes key.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.backend.Remove(ctx, s.clientID, key); err != nil {
		s.degraded("remove", key, err)
	}
}

func (s *Store) degraded(op, key string, err error) {
	s.logger.Warn("preference store degraded",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(fmt.Errorf("%w: %w", ErrStorageUnavailable, err)),
	)
}
