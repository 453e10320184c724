package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fastline/analytics-engine/docs"
	"github.com/fastline/analytics-engine/internal/adapters/handler/http/middleware"
	"github.com/fastline/analytics-engine/internal/core/services"
)

type RouterDependencies struct {
	AnalyticsHandler *AnalyticsHandler
	TokenVerifier    *services.TokenVerifier
	DB               *sqlx.DB
	Redis            *redis.Client
	StartTime        time.Time
}

// NewRouter assembles the HTTP surface. TokenVerifier may be nil
// (X-User-ID development mode); Redis may be nil (no rate limiting,
// health reports the cache as disabled); DB may be nil when the engine
// runs on the in-memory store.
func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestIDMiddleware())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-User-ID, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if deps.DB == nil {
			dbStatus = "disabled"
		} else if err := deps.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		if deps.Redis == nil {
			redisStatus = "disabled"
		} else if deps.Redis.Ping(c.Request.Context()).Err() != nil {
			redisStatus = "unreachable"
		}

		statusCode := 200
		status := "ok"
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenVerifier))
	if deps.Redis != nil {
		protected.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}
	{
		deps.AnalyticsHandler.RegisterRoutes(protected)
	}

	return router
}
