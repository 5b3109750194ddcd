package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ashraf-Khalifa/digital-new/internal/config"
	"github.com/Ashraf-Khalifa/digital-new/internal/handlers"
	"github.com/Ashraf-Khalifa/digital-new/internal/middleware"
	"github.com/Ashraf-Khalifa/digital-new/internal/store"
)

func Register(router *gin.Engine, stores *store.Stores, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "auth-backend"})
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(stores, cfg)

	auth := router.Group("/auth")
	{
		auth.POST("/sendOTP", authHandler.SendOTP)
		auth.POST("/verifyOTP", authHandler.VerifyOTP)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/token", authHandler.Token)
	}

	protected := auth.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/me", authHandler.Me)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
