// Package objstore stores values of registered types in Redis.
package objstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/signadot/tony-format/go-rtti/codec"
	"github.com/signadot/tony-format/go-rtti/debug"

	"github.com/go-redis/redis/v8"
)

var (
	ErrKeyNotFound = errors.New("objstore: key not found")
	ErrEmptyKey    = errors.New("objstore: key must not be empty")
)

// Client stores values under string keys, encoded with a codec.Codec.
// The client is safe for concurrent use.
type Client struct {
	rdb    *redis.Client
	codec  codec.Codec
	prefix string
}

type Option func(*Client)

// WithPrefix namespaces all keys of the client under prefix.
func WithPrefix(prefix string) Option {
	return func(c *Client) { c.prefix = prefix }
}

// NewClient returns a client over rdb. A nil codec means codec.JSON over
// the process-wide registry.
func NewClient(rdb *redis.Client, cdc codec.Codec, opts ...Option) *Client {
	if cdc == nil {
		cdc = codec.JSON{}
	}
	c := &Client{rdb: rdb, codec: cdc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) redisKey(key string) string {
	return c.prefix + key
}

// Put encodes v and writes it under key. A zero expiration means the key
// does not expire.
func (c *Client) Put(ctx context.Context, key string, v any, expiration time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	data, err := c.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("objstore: failed to encode %q: %w", key, err)
	}
	if debug.Store() {
		debug.Logf("put %s: %s", c.redisKey(key), data)
	}
	if err := c.rdb.Set(ctx, c.redisKey(key), data, expiration).Err(); err != nil {
		return fmt.Errorf("objstore: failed to write key %q: %w", key, err)
	}
	return nil
}

// Get reads the value under key into out, which must be a pointer to a
// registered type. ErrKeyNotFound is returned if there is no such key.
func (c *Client) Get(ctx context.Context, key string, out any) error {
	if key == "" {
		return ErrEmptyKey
	}
	data, err := c.rdb.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return fmt.Errorf("objstore: %w", err)
	}
	if debug.Store() {
		debug.Logf("get %s: %s", c.redisKey(key), data)
	}
	if err := c.codec.Unmarshal(data, out); err != nil {
		return fmt.Errorf("objstore: failed to decode %q: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are ignored.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	rKeys := make([]string, len(keys))
	for i, k := range keys {
		rKeys[i] = c.redisKey(k)
	}
	if err := c.rdb.Del(ctx, rKeys...).Err(); err != nil {
		return fmt.Errorf("objstore: failed to delete keys: %w", err)
	}
	return nil
}

// Exists reports whether key is present.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, c.redisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("objstore: %w", err)
	}
	return n > 0, nil
}

// Keys returns the keys of the client matching the glob pattern match,
// without the client prefix. Keys are scanned, so keys written during the
// call may be missed.
func (c *Client) Keys(ctx context.Context, match string) ([]string, error) {
	var (
		cursor uint64
		seen   = map[string]bool{}
		res    []string
	)
	for {
		rKeys, next, err := c.rdb.Scan(ctx, cursor, c.redisKey(match), 1000).Result()
		if err != nil {
			return nil, fmt.Errorf("objstore: failed scanning keys: %w", err)
		}
		for _, rk := range rKeys {
			k := strings.TrimPrefix(rk, c.prefix)
			if !seen[k] {
				seen[k] = true
				res = append(res, k)
			}
		}
		if next == 0 {
			return res, nil
		}
		cursor = next
	}
}
