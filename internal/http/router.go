// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - A public redirect surface (/r/:slug) that browsers anywhere can call
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/config"
	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/http/handlers"
	"github.com/lucasr0ck/leadflow2-sub000/internal/http/middleware"
	"github.com/lucasr0ck/leadflow2-sub000/internal/repo"
	"github.com/lucasr0ck/leadflow2-sub000/internal/services"
)

// redirectStoreShim adapts the repository free functions to the
// services.RedirectStore interface expected by the RedirectService. This
// keeps services decoupled from the concrete repo package while reusing
// existing functions.
type redirectStoreShim struct{}

// GetCampaignBySlug proxies repo.GetCampaignBySlug.
func (redirectStoreShim) GetCampaignBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Campaign, error) {
	return repo.GetCampaignBySlug(ctx, db, slug)
}

// ListTeamSellers proxies repo.ListTeamSellers.
func (redirectStoreShim) ListTeamSellers(ctx context.Context, db *gorm.DB, teamID string) ([]domain.Seller, error) {
	return repo.ListTeamSellers(ctx, db, teamID)
}

// CountClicks proxies repo.CountClicks.
func (redirectStoreShim) CountClicks(ctx context.Context, db *gorm.DB, campaignID string) (int64, error) {
	return repo.CountClicks(ctx, db, campaignID)
}

// CountSellerClicks proxies repo.CountSellerClicks.
func (redirectStoreShim) CountSellerClicks(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (int64, error) {
	return repo.CountSellerClicks(ctx, db, campaignID, sellerID)
}

// CreateClick proxies repo.CreateClick.
func (redirectStoreShim) CreateClick(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (*domain.Click, error) {
	return repo.CreateClick(ctx, db, campaignID, sellerID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and returns the redirect service so the caller can drain pending
// ledger appends on shutdown.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics and /metrics endpoint
//  7. Rate limiter (per client IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) *services.RedirectService {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS: the redirect endpoint is invoked from pages hosted anywhere,
	//    so the default posture is allow-all unless origins are pinned.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	redirectSvc := services.NewRedirectService(db, redirectStoreShim{})
	teamSvc := &services.TeamService{DB: db}
	campaignSvc := services.NewCampaignService(db)
	sellerSvc := &services.SellerService{DB: db}
	h := handlers.New(teamSvc, campaignSvc, sellerSvc)

	// Public redirect endpoint: one click in, one WhatsApp conversation out.
	rh := handlers.NewRedirectHandler(redirectSvc, cfg.ResolveTimeout, cfg.FallbackURL)
	r.GET("/r/:slug", rh.Resolve)

	// Admin API
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		// Teams
		api.POST("/teams", h.CreateTeam)
		api.GET("/teams", h.ListTeams)

		// Campaigns
		api.POST("/campaigns", h.CreateCampaign)
		api.GET("/campaigns", h.ListCampaigns)
		api.GET("/campaigns/:id", h.GetCampaign)
		api.PATCH("/campaigns/:id", h.UpdateCampaign)
		api.DELETE("/campaigns/:id", h.DeleteCampaign)

		// Sellers and contacts
		api.POST("/teams/:id/sellers", h.CreateSeller)
		api.GET("/teams/:id/sellers", h.ListSellers)
		api.PATCH("/sellers/:id", h.UpdateSeller)
		api.DELETE("/sellers/:id", h.DeleteSeller)
		api.POST("/sellers/:id/contacts", h.CreateContact)
		api.DELETE("/contacts/:id", h.DeleteContact)
	}

	return redirectSvc
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
