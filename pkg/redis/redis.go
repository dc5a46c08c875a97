package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/monsdar/MiniGameArchive/config"
)

// Client wraps the Redis connection. It backs the per-visitor session
// store (cart contents, language preference), the JWT blacklist and the
// rate limiter.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── visitor session store ──
//
// Each browser session is identified by a visitor cookie. The stored
// state is a small ordered list of game ids (the cart) plus a language
// code. Both expire together with the visitor's cart TTL.

const (
	cartPrefix     = "visitor:cart:"
	languagePrefix = "visitor:lang:"
)

// GetCart returns the ordered list of game ids for a visitor. A missing
// key is an empty cart, not an error.
func (c *Client) GetCart(ctx context.Context, visitorID string) ([]string, error) {
	raw, err := c.rdb.Get(ctx, cartPrefix+visitorID).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decoding cart for visitor %s: %w", visitorID, err)
	}
	return ids, nil
}

// SaveCart persists the visitor's cart. An empty cart deletes the key.
func (c *Client) SaveCart(ctx context.Context, visitorID string, ids []string, ttl time.Duration) error {
	if len(ids) == 0 {
		return c.rdb.Del(ctx, cartPrefix+visitorID).Err()
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cartPrefix+visitorID, raw, ttl).Err()
}

// GetLanguage returns the visitor's stored language code, or "" if none.
func (c *Client) GetLanguage(ctx context.Context, visitorID string) (string, error) {
	code, err := c.rdb.Get(ctx, languagePrefix+visitorID).Result()
	if err == goredis.Nil {
		return "", nil
	}
	return code, err
}

// SetLanguage persists the visitor's language preference.
func (c *Client) SetLanguage(ctx context.Context, visitorID, code string, ttl time.Duration) error {
	return c.rdb.Set(ctx, languagePrefix+visitorID, code, ttl).Err()
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken adds a JWT ID to the blacklist for the token's remaining
// lifetime.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token already expired
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID has been blacklisted.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── rate limiting ──

// CheckRateLimit implements a fixed-window counter. It returns false once
// the key has been incremented more than limit times within the window.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
