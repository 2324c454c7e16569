package session

import (
	"context"
	"sync"

	"github.com/mbelyaev/eventmap-client/internal/client/models"
	"github.com/mbelyaev/eventmap-client/internal/logging"
)

// subscriberBuffer is the per-subscriber channel capacity. A slow subscriber
// misses updates rather than blocking Replace.
const subscriberBuffer = 16

// Store is the single process-wide holder of the authenticated identity.
// A nil value means unauthenticated. Replace is the only mutation path: it
// swaps the value wholesale and broadcasts it to every subscriber.
type Store struct {
	mu   sync.RWMutex
	user *models.User
	subs []chan *models.User
	log  logging.Logger
}

// NewStore creates an empty (unauthenticated) store. Intended to be created
// once at application start and shared for the life of the process.
func NewStore(log logging.Logger) *Store {
	return &Store{log: log.With("component", "session")}
}

// Current returns the held identity, or nil when unauthenticated.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether an identity is currently held.
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Replace swaps the held identity and notifies all subscribers with the new
// value. Passing nil returns the store to the unauthenticated state.
// The value is visible to Current callers before Replace returns.
func (s *Store) Replace(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	// The read lock is held for the whole fan-out so Unsubscribe cannot
	// close a channel mid-send.
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
			s.log.Warn(context.Background(), "session update dropped: subscriber buffer full")
		}
	}
}

// Subscribe returns a channel receiving every subsequent Replace value.
func (s *Store) Subscribe() chan *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, subscriberBuffer)
	s.subs = append(s.subs, ch)
	return ch
}

// Unsubscribe removes the channel and closes it.
func (s *Store) Unsubscribe(ch chan *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(ch)
			return
		}
	}
}
