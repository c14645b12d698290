package main

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lg/metabolic-plan-api/plan"
)

// Handler holds shared dependencies (planners, paywall, access signer) for
// all route handlers.
type Handler struct {
	planners    map[plan.Mode]*plan.Planner
	defaultMode plan.Mode

	checkout      checkoutGateway // nil when the paywall is disabled
	priceID       string
	baseURL       string
	secureCookies bool
	access        accessSigner

	now func() time.Time
}

// newHandler builds a Handler from cfg. gw may be nil, which disables the
// paywall and lets every request through.
func newHandler(cfg config, gw checkoutGateway, signer accessSigner) *Handler {
	h := &Handler{
		planners:      map[plan.Mode]*plan.Planner{},
		defaultMode:   cfg.DefaultMode,
		checkout:      gw,
		priceID:       cfg.StripePriceID,
		baseURL:       cfg.BaseURL,
		secureCookies: strings.HasPrefix(cfg.BaseURL, "https://"),
		access:        signer,
		now:           time.Now,
	}
	for mode, pc := range cfg.planConfigs() {
		h.planners[mode] = plan.NewPlanner(pc, plan.WithClock(h.clock))
	}
	return h
}

// clock indirects through h.now so tests can swap the time after the
// planners have been built.
func (h *Handler) clock() time.Time {
	return h.now()
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Stripe redirects land on these, so they live outside /api.
	router.POST("/create-checkout-session", h.createCheckoutSession)
	router.GET("/paywall/success", h.paywallSuccess)
	router.GET("/paywall/cancel", h.paywallCancel)

	router.GET("/api/access", h.getAccess)

	// Paid routes
	api := router.Group("/api", h.accessMiddleware())
	api.POST("/plan", h.calculatePlan)
	api.POST("/plan/report", h.planReport)
}
