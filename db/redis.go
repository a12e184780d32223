package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const cachePrefix = "ichinichi:cache:"

func ConnectRedis(redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// ResponseCache stores provider responses in Redis with a TTL so repeated
// runs on the same day reuse the morning's fetches. It satisfies the
// weather.Cache interface.
type ResponseCache struct{}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, err := Redis.Get(Ctx, cachePrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ResponseCache) Set(key string, value []byte, ttl time.Duration) {
	Redis.Set(Ctx, cachePrefix+key, value, ttl)
}
