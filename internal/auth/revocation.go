package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "cashbook:revoked:"

// RevocationStore keeps revoked token ids in Redis until they would have
// expired anyway.
type RevocationStore struct {
	client redis.Cmdable
}

func NewRevocationStore(client redis.Cmdable) *RevocationStore {
	return &RevocationStore{client: client}
}

func (r *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (r *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
