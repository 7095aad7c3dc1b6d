// Redirect HTTP handler.
//
// This file exposes the public endpoint of the whole system:
//
//   - GET /r/{slug}   (resolve a campaign click and 302 to WhatsApp)
//
// The handler is transport-thin: it bounds the resolution with a deadline,
// calls the redirect service, and translates the outcome into either a 302
// Location or the JSON error envelope. When a fallback URL is configured,
// error outcomes redirect there instead so a visitor never sees raw JSON.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasr0ck/leadflow2-sub000/internal/services"
)

// redirects counts resolved clicks by outcome. Campaign is deliberately not a
// label: slugs are operator-controlled and would blow up cardinality.
var redirects = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "leadflow_redirects_total",
		Help: "Total number of redirect resolutions by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(redirects)
}

// RedirectResolver resolves a campaign slug to a WhatsApp destination.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RedirectResolver interface {
	Resolve(ctx context.Context, slug string) (*services.Redirect, error)
}

// RedirectHandler serves the public redirect endpoint.
type RedirectHandler struct {
	svc RedirectResolver

	// Timeout bounds one whole resolution; on expiry the visitor is sent
	// to the fallback rather than left hanging.
	Timeout time.Duration

	// FallbackURL, when set, replaces JSON error bodies with a 302 to a
	// generic landing page.
	FallbackURL string
}

// NewRedirectHandler constructs a RedirectHandler bound to the given resolver.
func NewRedirectHandler(svc RedirectResolver, timeout time.Duration, fallbackURL string) *RedirectHandler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RedirectHandler{svc: svc, Timeout: timeout, FallbackURL: fallbackURL}
}

// Resolve handles GET /r/:slug.
func (h *RedirectHandler) Resolve(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		redirects.WithLabelValues("bad_request").Inc()
		h.failOrFallback(c, http.StatusBadRequest, ErrCodeBadRequest, "slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	r, err := h.svc.Resolve(ctx, slug)
	if err != nil {
		h.resolveError(c, err)
		return
	}

	redirects.WithLabelValues("ok").Inc()
	c.Redirect(http.StatusFound, r.URL)
}

// resolveError maps service sentinels onto the enumerated HTTP taxonomy. No
// store error shape ever reaches the client.
func (h *RedirectHandler) resolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSlugRequired):
		redirects.WithLabelValues("bad_request").Inc()
		h.failOrFallback(c, http.StatusBadRequest, ErrCodeBadRequest, "slug is required")
	case errors.Is(err, services.ErrCampaignInactive):
		redirects.WithLabelValues("inactive").Inc()
		h.failOrFallback(c, http.StatusForbidden, ErrCodeCampaignInactive, "campaign is inactive")
	case errors.Is(err, services.ErrCampaignNotFound):
		redirects.WithLabelValues("not_found").Inc()
		h.failOrFallback(c, http.StatusNotFound, ErrCodeNotFound, "campaign not found")
	case errors.Is(err, services.ErrNoSellersConfigured),
		errors.Is(err, services.ErrNoEligibleSellers):
		redirects.WithLabelValues("no_sellers").Inc()
		h.failOrFallback(c, http.StatusNotFound, ErrCodeNoSellers, "no sellers available for this campaign")
	case errors.Is(err, context.DeadlineExceeded):
		redirects.WithLabelValues("timeout").Inc()
		h.failOrFallback(c, http.StatusInternalServerError, ErrCodeInternal, "redirect timed out")
	default:
		redirects.WithLabelValues("error").Inc()
		h.failOrFallback(c, http.StatusInternalServerError, ErrCodeInternal, "could not resolve redirect")
	}
}

// failOrFallback fails closed: a configured fallback page wins over a JSON
// body so a human clicking a broken link still lands somewhere useful.
func (h *RedirectHandler) failOrFallback(c *gin.Context, status int, code, msg string) {
	if h.FallbackURL != "" {
		c.Redirect(http.StatusFound, h.FallbackURL)
		return
	}
	fail(c, status, code, msg)
}
