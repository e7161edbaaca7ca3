package navstore

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jfdoradotr/navstack/pkg/errors"
)

// defaultRedisKey is the key holding the encoded path when none is configured.
const defaultRedisKey = "navstack:path"

// RedisConfig configures a Redis storage backend.
type RedisConfig struct {
	Addr     string // host:port, defaults to localhost:6379
	Password string
	DB       int
	Key      string // storage key, defaults to "navstack:path"
}

// RedisStorage persists the encoded path under a single Redis key.
// Suitable when several processes should share one navigation state.
type RedisStorage struct {
	client *goredis.Client
	key    string
}

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(ctx context.Context, cfg RedisConfig) (*RedisStorage, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.Key == "" {
		cfg.Key = defaultRedisKey
	}
	if err := errors.ValidateStorageKey(cfg.Key); err != nil {
		return nil, err
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStorageUnavailable, err, "connect to redis at %s", cfg.Addr)
	}

	return &RedisStorage{client: client, key: cfg.Key}, nil
}

// Load fetches the stored blob. An absent key is not an error.
func (r *RedisStorage) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeLoad, err, "get %s", r.key)
	}
	return data, true, nil
}

// Save overwrites the stored blob. The key has no expiry; navigation state
// lives until cleared.
func (r *RedisStorage) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeSave, err, "set %s", r.key)
	}
	return nil
}

// Clear deletes the storage key.
func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeSave, err, "del %s", r.key)
	}
	return nil
}

// Close closes the Redis client.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}

// Ensure RedisStorage implements Storage.
var _ Storage = (*RedisStorage)(nil)
