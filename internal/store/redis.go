package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "capex:run:"

// RedisStore persists runs in Redis with a TTL, so multiple API instances can
// serve the same run IDs.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

// Ping verifies connectivity; call at startup before choosing this store.
func (r *RedisStore) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

func (r *RedisStore) Save(run *AnalysisRun) error {
	raw, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, redisKeyPrefix+run.ID, raw, r.ttl).Err()
}

func (r *RedisStore) Get(id string) (*AnalysisRun, bool) {
	raw, err := r.client.Get(r.ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var run AnalysisRun
	if err := json.Unmarshal([]byte(raw), &run); err != nil {
		return nil, false
	}
	return &run, true
}
