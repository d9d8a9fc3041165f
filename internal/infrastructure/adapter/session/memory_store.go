package session

import (
	"context"
	"sync"
	"time"

	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
)

// MemoryStore implements RevocationStore in process memory. It serves tests
// and single-node setups where Redis is not available.
type MemoryStore struct {
	mu           sync.RWMutex
	revoked      map[string]time.Time
	timeProvider coreport.TimeProvider
}

// NewMemoryStore creates a new in-memory revocation store
func NewMemoryStore(timeProvider coreport.TimeProvider) *MemoryStore {
	return &MemoryStore{
		revoked:      make(map[string]time.Time),
		timeProvider: timeProvider,
	}
}

// Revoke marks a token id as invalid for the remaining ttl
func (s *MemoryStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = s.timeProvider.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token id has been invalidated
func (s *MemoryStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	expiry, found := s.revoked[tokenID]
	s.mu.RUnlock()

	if !found {
		return false, nil
	}
	if s.timeProvider.Now().After(expiry) {
		// Entry outlived the token, drop it lazily
		s.mu.Lock()
		delete(s.revoked, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
