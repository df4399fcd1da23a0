// Package router wires the gin engine: dashboard page, JSON API, live feed.
package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"pulseboard/internal/handler"
	"pulseboard/internal/live"
	"pulseboard/web"
)

type Config struct {
	DashboardHandler *handler.DashboardHandler
	LiveFeed         *live.Feed

	// APIRateLimit is the sustained requests-per-second budget for the
	// JSON API; APIBurst is the bucket size. Zero disables limiting.
	APIRateLimit float64
	APIBurst     int
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.FS, "index.html")))

	router.GET("/", cfg.DashboardHandler.Index)

	api := router.Group("/api")
	if cfg.APIRateLimit > 0 {
		api.Use(rateLimit(rate.Limit(cfg.APIRateLimit), cfg.APIBurst))
	}
	registerDashboardRoutes(api, cfg.DashboardHandler)

	if cfg.LiveFeed != nil {
		router.GET("/ws/live", cfg.LiveFeed.Handle)
	}

	return router
}

// rateLimit applies one shared token bucket to the API group.
func rateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
