package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/easyonboard/backend/config"
	"github.com/easyonboard/backend/internal/auth"
	"github.com/easyonboard/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	topicHandler *handler.TopicHandler,
	authHandler *handler.AuthHandler,
	sessions *auth.SessionStore,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 认证开关只影响路由守卫，不改变主题 API 本身的行为
	readGuard := passthrough()
	writeGuard := passthrough()
	if cfg.Auth.RequireAuth {
		readGuard = handler.RequireSession(sessions, cfg.Auth.AdminOnly)
		writeGuard = handler.RequireSession(sessions, true)
	}

	api := r.Group("/api")
	{
		topics := api.Group("/topics")
		{
			topics.GET("", readGuard, topicHandler.List)
			topics.POST("", writeGuard, topicHandler.Create)
			topics.PUT("", readGuard, topicHandler.UpdateCompletion)
			topics.DELETE("", writeGuard, topicHandler.Delete)
		}

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authHandler.Me)
		}
	}

	return r
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
