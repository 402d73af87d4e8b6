package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRepository tracks live admin sessions in redis so that logout
// revokes a token before its JWT expiry.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Store(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.rdb.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

func (r *SessionRepository) Revoke(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// IsLive reports whether a session still exists. A missing key means the
// session was revoked or expired.
func (r *SessionRepository) IsLive(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
