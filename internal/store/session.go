package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
)

// SessionStore keeps per-session values in an expiring in-memory cache.
// Reads slide the expiry forward.
type SessionStore[T any] struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionStore[T any](ttl time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func (s *SessionStore[T]) Put(_ context.Context, id string, value T) {
	s.cache.Set(id, value, s.ttl)
}

func (s *SessionStore[T]) Get(_ context.Context, id string) (T, error) {
	var zero T
	raw, ok := s.cache.Get(id)
	if !ok {
		return zero, errs.NewNotFoundError("session not found")
	}
	v, ok := raw.(T)
	if !ok {
		return zero, errs.NewNotFoundError("session not found")
	}
	s.cache.Set(id, v, s.ttl)
	return v, nil
}

func (s *SessionStore[T]) Delete(_ context.Context, id string) {
	s.cache.Delete(id)
}

func (s *SessionStore[T]) Count() int {
	return s.cache.ItemCount()
}
