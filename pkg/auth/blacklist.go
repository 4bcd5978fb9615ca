package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/salesflowhq/salesflow/pkg/cache"
)

// TokenBlacklist tracks revoked JWT tokens in Redis so logout takes effect
// before the token expires.
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a new token blacklist.
func NewTokenBlacklist(cache *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{cache: cache}
}

// Add revokes a token until its natural expiration.
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiration time.Duration) error {
	// Store a hash, never the raw token.
	key := fmt.Sprintf("jwt:blacklist:%s", b.hashToken(token))
	return b.cache.Set(ctx, key, "revoked", expiration)
}

// IsBlacklisted reports whether a token has been revoked.
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("jwt:blacklist:%s", b.hashToken(token))
	return b.cache.Exists(ctx, key)
}

func (b *TokenBlacklist) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
