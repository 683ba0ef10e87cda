package config

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

var redisCtx = context.Background()

func GetRedisDB() *redis.Client {
	return rdb
}

// All helpers tolerate a nil client so the server still runs (without
// caching or rate limiting) when Redis is unreachable.

func GetRedisObject(key string, dest interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(redisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func SetRedisObject(key string, obj interface{}, exp time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return rdb.Set(redisCtx, key, b, exp).Err()
}

// IncrWithExpiry bumps a counter and stamps its TTL on first use.
// Used by the per-user analyze rate limiter.
func IncrWithExpiry(key string, window time.Duration) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	n, err := rdb.Incr(redisCtx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := rdb.Expire(redisCtx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// ConnectRedis connects and sets the global client. Called from main after
// the database is up; a missing Redis is logged and degraded, not fatal.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := client.Ping(redisCtx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v; continuing without cache/rate limit", addr, err)
		return
	}
	rdb = client
}
