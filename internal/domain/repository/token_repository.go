package repository

import (
	"context"
	"time"
)

// TokenRepository tracks issued token ids so they can be revoked before expiry
type TokenRepository interface {
	StoreAccess(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error
	StoreRefresh(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error
	AccessExists(ctx context.Context, doctorID int64, tokenID string) (bool, error)
	RefreshExists(ctx context.Context, doctorID int64, tokenID string) (bool, error)
	DeleteAccess(ctx context.Context, doctorID int64, tokenID string) error
	DeleteRefresh(ctx context.Context, doctorID int64, tokenID string) error
	DeleteAllForDoctor(ctx context.Context, doctorID int64) error
}
