package sessions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ogm710811/stem-cell-API/cache"
	"github.com/ogm710811/stem-cell-API/utils"
)

// Store associates opaque session tokens with the id of the authenticated
// user. Only the id is persisted; the full user record is resolved on every
// request.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type redisStore struct {
	cache *cache.Cache
}

// NewRedisStore creates a session store backed by Redis. Sessions expire with
// the coarse cookie lifetime; there is no idle timeout.
func NewRedisStore(cache *cache.Cache) Store {
	return &redisStore{cache: cache}
}

func (s *redisStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	if err := s.cache.Set(ctx, sessionKey(token), userID, utils.SessionLifetime); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to the token, or an empty string when the
// token is unknown or expired.
func (s *redisStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.cache.Get(ctx, sessionKey(token))
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
