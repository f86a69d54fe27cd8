package preferences

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash key used when none is configured.
const DefaultRedisKey = "puretext:preferences"

// RedisStore persists preferences as the fields of a Redis hash so several
// PureText instances can share one set of settings.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore returns a store writing to the hash at key. An empty key uses
// DefaultRedisKey.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the hash. A missing hash yields Default.
func (s *RedisStore) Load(ctx context.Context) (Preferences, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return Preferences{}, errors.Join(ErrLoadPreferences, err)
	}

	prefs := Default()
	if err := prefs.applyFields(values); err != nil {
		return Preferences{}, errors.Join(ErrLoadPreferences, ErrCorruptPreferences, err)
	}
	return prefs, nil
}

// Save validates p and writes every field in a single HSET.
func (s *RedisStore) Save(ctx context.Context, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.key, p.fields()).Err(); err != nil {
		return errors.Join(ErrSavePreferences, err)
	}
	return nil
}
