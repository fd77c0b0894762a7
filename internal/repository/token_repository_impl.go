package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "doctor-matching/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"
)

type tokenRepository struct {
	redisClient *redis.Client
}

func NewTokenRepository(redisClient *redis.Client) domainRepo.TokenRepository {
	return &tokenRepository{redisClient: redisClient}
}

func tokenKey(prefix string, doctorID int64, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", prefix, doctorID, tokenID)
}

func (r *tokenRepository) StoreAccess(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, tokenKey(accessTokenKeyPrefix, doctorID, tokenID), "valid", ttl).Err()
}

func (r *tokenRepository) StoreRefresh(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, tokenKey(refreshTokenKeyPrefix, doctorID, tokenID), "valid", ttl).Err()
}

func (r *tokenRepository) AccessExists(ctx context.Context, doctorID int64, tokenID string) (bool, error) {
	return r.exists(ctx, tokenKey(accessTokenKeyPrefix, doctorID, tokenID))
}

func (r *tokenRepository) RefreshExists(ctx context.Context, doctorID int64, tokenID string) (bool, error) {
	return r.exists(ctx, tokenKey(refreshTokenKeyPrefix, doctorID, tokenID))
}

func (r *tokenRepository) DeleteAccess(ctx context.Context, doctorID int64, tokenID string) error {
	return r.redisClient.Del(ctx, tokenKey(accessTokenKeyPrefix, doctorID, tokenID)).Err()
}

func (r *tokenRepository) DeleteRefresh(ctx context.Context, doctorID int64, tokenID string) error {
	return r.redisClient.Del(ctx, tokenKey(refreshTokenKeyPrefix, doctorID, tokenID)).Err()
}

// DeleteAllForDoctor revokes every outstanding token of a doctor
func (r *tokenRepository) DeleteAllForDoctor(ctx context.Context, doctorID int64) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%d:*", prefix, doctorID)
		iter := r.redisClient.Scan(ctx, 0, pattern, 100).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}

		if len(keys) > 0 {
			if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *tokenRepository) exists(ctx context.Context, key string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
