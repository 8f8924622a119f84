package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "user_profile:"
	// Храним час
	TTL = 3600 * time.Second
)

// ProfileCache — read-through кэш собранных ответов, ключ по username как есть
// (без нормализации регистра). С nil-клиентом работает как вечный промах:
// без Redis сервис просто ходит в LeetCode на каждый запрос.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

func (c *ProfileCache) Get(ctx context.Context, username string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, keyPrefix+username).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get failed for %s: %v", username, err)
		}
		return nil, false
	}
	return val, true
}

// Set пишет best-effort: ошибка кэша не должна ронять ответ.
func (c *ProfileCache) Set(ctx context.Context, username string, data []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.SetEx(ctx, keyPrefix+username, data, TTL).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", username, err)
	}
}
