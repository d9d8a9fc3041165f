package session

import (
	"context"
	"fmt"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// RevocationStore records token ids invalidated by logout until they expire
// on their own
type RevocationStore interface {
	// Revoke marks a token id as invalid for the remaining ttl
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether the token id has been invalidated
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedKeyPrefix = "session:revoked:"

// RedisStore implements RevocationStore on Redis with per-key expiry
type RedisStore struct {
	client *redis.Client
	logger coreport.Logger
}

// RedisConfig holds connection settings for the revocation store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and returns a revocation store
func NewRedisStore(cfg RedisConfig, logger coreport.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Ping checks Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Revoke marks a token id as invalid for the remaining ttl
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to record
		return nil
	}

	err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
	if err != nil {
		s.logger.Error("Failed to record token revocation", map[string]any{
			"token_id": tokenID,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("Session token revoked", map[string]any{
		"token_id": tokenID,
		"ttl_s":    ttl.Seconds(),
	})
	return nil
}

// IsRevoked reports whether the token id has been invalidated
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	result, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		s.logger.Error("Failed to check token revocation", map[string]any{
			"token_id": tokenID,
			"error":    err.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return result > 0, nil
}
