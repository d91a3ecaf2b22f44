package service

import (
	"context"
	"fmt"
	"time"

	"hospital-management-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore registers issued token ids so that logout and refresh can
// revoke them before their JWT expiry.
type TokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenIDs map[jwt.TokenType]string) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

// tokenKey is access_token:<user>:<token id> or refresh_token:<user>:<token id>.
func tokenKey(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(userID, tokenID, tokenType), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(userID, tokenID, tokenType)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenIDs map[jwt.TokenType]string) error {
	keys := make([]string, 0, len(tokenIDs))
	for tokenType, tokenID := range tokenIDs {
		if tokenID == "" {
			continue
		}
		keys = append(keys, tokenKey(userID, tokenID, tokenType))
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
