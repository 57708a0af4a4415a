// Package session keeps the persisted authentication state for each
// user: access token, cached identity snapshot, and navigation history.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/database"
)

// Store persists session state as string entries per user. Missing
// entries come back as a not-found error.
type Store interface {
	Set(ctx context.Context, userID, key, value string) error
	Get(ctx context.Context, userID, key string) (string, error)
	Clear(ctx context.Context, userID string) error
}

// RedisStore persists sessions in a Redis hash per user
type RedisStore struct {
	client *database.RedisClient
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *database.RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(userID string) string {
	return fmt.Sprintf(constants.KeyUserSession, userID)
}

func (s *RedisStore) Set(ctx context.Context, userID, key, value string) error {
	if err := s.client.Client.HSet(ctx, s.key(userID), key, value).Err(); err != nil {
		return fmt.Errorf("failed to store session entry: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID, key string) (string, error) {
	val, err := s.client.Client.HGet(ctx, s.key(userID), key).Result()
	if err == redis.Nil {
		return "", apperrors.NotFound("session entry not found")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session entry: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// MemoryStore is an in-process session store used by the legacy backend
// configuration and by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (s *MemoryStore) Set(_ context.Context, userID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[userID] == nil {
		s.sessions[userID] = make(map[string]string)
	}
	s.sessions[userID][key] = value
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.sessions[userID]
	if !ok {
		return "", apperrors.NotFound("session entry not found")
	}
	val, ok := entries[key]
	if !ok {
		return "", apperrors.NotFound("session entry not found")
	}
	return val, nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
