package api

import (
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"manufac-asset-backend/config"
	"manufac-asset-backend/internal/monitor"
	"manufac-asset-backend/internal/mw"
	"manufac-asset-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, mon *monitor.Service, webpushOptions *webpush.Options, srvCfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, mon, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(srvCfg.RateLimitPerSec), srvCfg.RateLimitBurst)

	cacheTTL := time.Duration(srvCfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Manufacturing Asset Management",
			"message": "Welcome to the Manufacturing Asset Management System!",
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/machines", handler.CreateMachine)
		api.GET("/machines", handler.ListMachines)
		api.POST("/machines/:id/monitoring/start", handler.StartMonitoring)
		api.POST("/machines/:id/monitoring/stop", handler.StopMonitoring)

		api.POST("/products", handler.CreateProduct)
		api.GET("/products", handler.ListProducts)

		api.GET("/productions", handler.ListProductions)

		// The report is read-heavy and aggregate-only; serve it from cache.
		api.GET("/reports/daily", caching, handler.GetDailyReport)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
