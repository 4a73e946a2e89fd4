package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"blogapi/monitoring"
)

// ResponseCache stores rendered JSON responses in redis. Keys are namespaced
// per entity so a write only evicts the entity it touched.
type ResponseCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewResponseCache(options *redis.Options, ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		redisClient: redis.NewClient(options),
		ttl:         ttl,
	}
}

// Get returns the cached body for the key, or nil on a miss. Redis failures
// degrade to a miss.
func (c *ResponseCache) Get(ctx context.Context, scope, key string) []byte {
	body, err := c.redisClient.Get(ctx, c.redisKey(scope, key)).Bytes()
	if err == redis.Nil {
		monitoring.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}
	if err != nil {
		log.Errorf("Error reading response cache: %s", err)
		return nil
	}
	monitoring.CacheHitsTotal.WithLabelValues("hit").Inc()
	return body
}

func (c *ResponseCache) Set(ctx context.Context, scope, key string, body []byte) {
	err := c.redisClient.Set(ctx, c.redisKey(scope, key), body, c.ttl).Err()
	if err != nil {
		log.Errorf("Error writing response cache: %s", err)
	}
}

// Invalidate drops every cached response in one scope.
func (c *ResponseCache) Invalidate(ctx context.Context, scope string) {
	iter := c.redisClient.Scan(ctx, 0, c.redisKey(scope, "*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			log.Errorf("Error evicting cache key %s: %s", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Errorf("Error scanning cache scope %s: %s", scope, err)
	}
}

func (c *ResponseCache) redisKey(scope, key string) string {
	return fmt.Sprintf("response__%s__%s", scope, key)
}
