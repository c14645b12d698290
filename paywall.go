package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

/* ─── Checkout gateway ───────────────────────────────────────────────── */

// checkoutStatus is the part of a checkout session the success handler checks.
type checkoutStatus struct {
	Paid    bool
	Mode    string
	PriceID string // empty when the session has no line items
}

// checkoutGateway creates and looks up one-off payment sessions.
type checkoutGateway interface {
	createCheckout(ctx context.Context, successURL, cancelURL string) (string, error)
	lookupCheckout(ctx context.Context, sessionID string) (checkoutStatus, error)
}

var errPriceNotConfigured = errors.New("stripe price ID not configured")

// stripeGateway is the Stripe Checkout implementation of checkoutGateway.
type stripeGateway struct {
	sc      *client.API
	priceID string
}

// newStripeGateway builds a gateway for secretKey. backends may be nil for
// the live Stripe API; tests point it at a local server.
func newStripeGateway(secretKey, priceID string, backends *stripe.Backends) *stripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return &stripeGateway{sc: sc, priceID: priceID}
}

// createCheckout opens a one-item card payment session and returns its URL.
func (g *stripeGateway) createCheckout(ctx context.Context, successURL, cancelURL string) (string, error) {
	if g.priceID == "" {
		return "", errPriceNotConfigured
	}
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(g.priceID), Quantity: stripe.Int64(1)},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	s, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return s.URL, nil
}

// lookupCheckout fetches a session with its line items expanded.
func (g *stripeGateway) lookupCheckout(ctx context.Context, sessionID string) (checkoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	s, err := g.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return checkoutStatus{}, fmt.Errorf("retrieve checkout session: %w", err)
	}

	st := checkoutStatus{
		Paid: s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Mode: string(s.Mode),
	}
	if s.LineItems != nil && len(s.LineItems.Data) > 0 && s.LineItems.Data[0].Price != nil {
		st.PriceID = s.LineItems.Data[0].Price.ID
	}
	return st, nil
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// createCheckoutSession starts a Stripe checkout and returns its URL.
// POST /create-checkout-session (public).
func (h *Handler) createCheckoutSession(c *gin.Context) {
	if h.checkout == nil {
		apiError(c, http.StatusInternalServerError, "stripe not configured")
		return
	}

	url, err := h.checkout.createCheckout(c.Request.Context(),
		h.baseURL+"/paywall/success?session_id={CHECKOUT_SESSION_ID}",
		h.baseURL+"/paywall/cancel")
	if errors.Is(err, errPriceNotConfigured) {
		apiError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		log.Printf("[createCheckoutSession] Stripe error: %v", err)
		apiError(c, http.StatusBadGateway, "checkout session failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": url})
}

// paywallSuccess is where Stripe sends the buyer after checkout. Verifies the
// session, sets the access cookie and redirects to the calculator.
// GET /paywall/success?session_id=... (public).
func (h *Handler) paywallSuccess(c *gin.Context) {
	if h.checkout == nil {
		apiError(c, http.StatusInternalServerError, "stripe not configured")
		return
	}
	sessionID := c.Query("session_id")
	if sessionID == "" {
		apiError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	st, err := h.checkout.lookupCheckout(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[paywallSuccess] session %s: %v", sessionID, err)
		apiError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	if !st.Paid {
		apiError(c, http.StatusForbidden, "payment not completed")
		return
	}
	if st.Mode != string(stripe.CheckoutSessionModePayment) {
		apiError(c, http.StatusBadRequest, "unexpected session mode")
		return
	}
	// Only compare prices when both sides know one.
	if h.priceID != "" && st.PriceID != "" && st.PriceID != h.priceID {
		apiError(c, http.StatusBadRequest, "unexpected product/price in session")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, h.access.issue(), accessCookieMaxAge, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/")
}

// paywallCancel sends a buyer who backed out of checkout to the paywall.
// GET /paywall/cancel (public).
func (h *Handler) paywallCancel(c *gin.Context) {
	c.Redirect(http.StatusFound, "/paywall")
}
