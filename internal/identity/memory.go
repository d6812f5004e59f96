package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory user store for tests and
// local development. Records are keyed by lowercased email, mirroring
// the Postgres unique index.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) Create(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[strings.ToLower(u.Email)] = *u
	return nil
}

func (s *MemoryStore) UpdateProfile(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	stored, ok := s.users[key]
	if !ok {
		return ErrNotFound
	}

	stored.Name = u.Name
	stored.AvatarURL = u.AvatarURL
	stored.UpdatedAt = time.Now()
	s.users[key] = stored

	u.UpdatedAt = stored.UpdatedAt
	return nil
}
