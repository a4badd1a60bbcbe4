package router

import (
	"net/http"
	"time"

	"fastorder/internal/middleware"
	"fastorder/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	// CORSOrigins of ["*"] allows any origin.
	CORSOrigins []string
	// JWTSecret enables bearer auth on /api when set.
	JWTSecret []byte
}

func NewRouter(orderHandler *order.Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if len(opts.JWTSecret) > 0 {
		api.Use(middleware.AuthMiddleware(opts.JWTSecret))
	}
	{
		api.POST("/generate-order", orderHandler.GenerateOrder)
		api.GET("/orders/recent", orderHandler.Recent)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	return cfg
}
