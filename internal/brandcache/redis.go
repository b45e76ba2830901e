package brandcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "brandclass:"

// RedisLayer is a read-through cache in front of a backing Store. Lookups
// that hit Redis skip the database entirely; writes go to the backing store
// first and then refresh Redis from what the store actually holds, so a
// manual-protected skip never poisons the hot path with the rejected value.
type RedisLayer struct {
	rdb  *redis.Client
	next Store
	ttl  time.Duration
}

// NewRedisLayer wraps next with a Redis hot path. A zero ttl defaults to one hour.
func NewRedisLayer(rdb *redis.Client, next Store, ttl time.Duration) *RedisLayer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisLayer{rdb: rdb, next: next, ttl: ttl}
}

func redisKey(brandName string) string {
	return redisKeyPrefix + Key(brandName)
}

// Get returns the cached entry, consulting Redis before the backing store.
// Redis failures degrade to the backing store, never to an error.
func (r *RedisLayer) Get(ctx context.Context, brandName string) (*Entry, error) {
	raw, err := r.rdb.Get(ctx, redisKey(brandName)).Bytes()
	if err == nil {
		var e Entry
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil {
			return &e, nil
		}
		// Unreadable payload: fall through and repopulate from the store.
	} else if err != redis.Nil {
		log.Printf("brandcache: redis get %q: %v (falling back to store)", brandName, err)
	}

	e, err := r.next.Get(ctx, brandName)
	if err != nil || e == nil {
		return e, err
	}
	r.populate(ctx, *e)
	return e, nil
}

// Put forwards the automatic write and refreshes Redis from the backing
// store's post-write state.
func (r *RedisLayer) Put(ctx context.Context, e Entry) error {
	if err := r.next.Put(ctx, e); err != nil {
		return err
	}
	return r.refresh(ctx, e.BrandName)
}

// PutManual forwards the manual override and refreshes Redis.
func (r *RedisLayer) PutManual(ctx context.Context, e Entry) error {
	if err := r.next.PutManual(ctx, e); err != nil {
		return err
	}
	return r.refresh(ctx, e.BrandName)
}

// Delete removes the entry from both layers.
func (r *RedisLayer) Delete(ctx context.Context, brandName string) error {
	if err := r.next.Delete(ctx, brandName); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, redisKey(brandName)).Err(); err != nil {
		log.Printf("brandcache: redis del %q: %v", brandName, err)
	}
	return nil
}

// List always reads from the backing store; Redis only accelerates point reads.
func (r *RedisLayer) List(ctx context.Context) ([]Entry, error) {
	return r.next.List(ctx)
}

// refresh re-reads the brand from the backing store and mirrors the result
// into Redis. Reading back (rather than writing the caller's value) keeps the
// hot path consistent when a Put was skipped by the manual-wins rule.
func (r *RedisLayer) refresh(ctx context.Context, brandName string) error {
	stored, err := r.next.Get(ctx, brandName)
	if err != nil {
		return fmt.Errorf("brandcache: refresh %q: %w", brandName, err)
	}
	if stored == nil {
		if err := r.rdb.Del(ctx, redisKey(brandName)).Err(); err != nil {
			log.Printf("brandcache: redis del %q: %v", brandName, err)
		}
		return nil
	}
	r.populate(ctx, *stored)
	return nil
}

func (r *RedisLayer) populate(ctx context.Context, e Entry) {
	raw, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, redisKey(e.BrandName), raw, r.ttl).Err(); err != nil {
		log.Printf("brandcache: redis set %q: %v", e.BrandName, err)
	}
}

var _ Store = (*RedisLayer)(nil)
