package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"leetcode-stats-api/internal/middleware"
)

func NewRouter(userHandler *UserHandler, limiter *middleware.RateLimiter, allowedOrigins string, cacheStatus string) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	config := cors.DefaultConfig()
	if allowedOrigins == "" || allowedOrigins == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(config))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": cacheStatus})
	})

	api := r.Group("/api")
	{
		api.GET("/user/:username", limiter.Limit("profile", 30, 1*time.Minute), userHandler.GetUserData)
	}

	return r
}
