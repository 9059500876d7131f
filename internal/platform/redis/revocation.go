// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/boardbuddy/internal/platform/constants"
)

// RevocationList is a Redis-backed set of revoked access token IDs (jti).
//
// Entries expire together with the token they revoke, so the set never grows
// beyond the number of live tokens.
type RevocationList struct {
	client redis.Cmdable
}

// NewRevocationList wraps client. Any [redis.Cmdable] works, including a
// pipeline or a cluster client.
func NewRevocationList(client redis.Cmdable) *RevocationList {
	return &RevocationList{client: client}
}

func revocationKey(tokenID string) string {
	return constants.RedisPrefixRevokedToken + tokenID
}

// Revoke marks tokenID as revoked until expiresAt. Tokens that have already
// expired are ignored.
func (r *RevocationList) Revoke(context stdctx.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(context, revocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis: revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (r *RevocationList) IsRevoked(context stdctx.Context, tokenID string) (bool, error) {
	count, err := r.client.Exists(context, revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis: check revoked token: %w", err)
	}
	return count > 0, nil
}
