package main

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"leetcode-stats-api/config"
	"leetcode-stats-api/internal/application/usecase"
	"leetcode-stats-api/internal/infrastructure/cache"
	"leetcode-stats-api/internal/infrastructure/leetcode"
	"leetcode-stats-api/internal/middleware"
	handlers "leetcode-stats-api/internal/transport/http"

	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Redis опционален: без него работаем в режиме вечного промаха
	var rdb *redis.Client
	cacheStatus := "disabled"
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		rdb = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable, running without cache: %v", err)
			rdb = nil
		} else {
			cacheStatus = "up"
			log.Println("Connected to Redis at", cfg.RedisAddr)
		}
		cancel()
	} else {
		log.Println("REDIS_ADDR is not set, running without cache")
	}

	// 3. Клиент LeetCode и конвейер
	client := leetcode.NewClient(cfg.LeetcodeURL)
	profileCache := cache.NewProfileCache(rdb)
	profiles := usecase.NewProfileUseCase(client, profileCache)

	// 4. Хендлеры и роутер
	userHandler := handlers.NewUserHandler(profiles)
	rateLimiter := middleware.NewRateLimiter(rdb)
	router := handlers.NewRouter(userHandler, rateLimiter, cfg.AllowedOrigins, cacheStatus)

	// 5. Запуск HTTP сервера
	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("LeetCode stats API running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
