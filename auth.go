package main

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// accessCookie holds the signed access grant issued after a paid checkout.
const accessCookie = "calculator_access"

// accessCookieMaxAge is one year, in seconds.
const accessCookieMaxAge = 60 * 60 * 24 * 365

// accessSigner issues and checks access grants of the form "<uuid>.<hmac>".
// The HMAC keeps clients from minting their own grant cookie.
type accessSigner struct {
	secret []byte
}

// newAccessSigner uses secret when given, otherwise a random per-process key
// (grants then stop validating after a restart).
func newAccessSigner(secret string) (accessSigner, error) {
	if secret != "" {
		return accessSigner{secret: []byte(secret)}, nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return accessSigner{}, fmt.Errorf("generate access secret: %w", err)
	}
	return accessSigner{secret: key}, nil
}

// issue mints a new grant.
func (s accessSigner) issue() string {
	id := uuid.NewString()
	return id + "." + s.sign(id)
}

// valid reports whether v is a grant this signer issued.
func (s accessSigner) valid(v string) bool {
	id, sig, ok := strings.Cut(v, ".")
	if !ok {
		return false
	}
	if _, err := uuid.Parse(id); err != nil {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(s.sign(id)))
}

func (s accessSigner) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// hasAccess reports whether the request carries a valid grant, or the
// paywall is off.
func (h *Handler) hasAccess(c *gin.Context) bool {
	if h.checkout == nil {
		return true
	}
	v, err := c.Cookie(accessCookie)
	return err == nil && h.access.valid(v)
}

// accessMiddleware rejects requests without a paid access grant.
func (h *Handler) accessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.hasAccess(c) {
			apiError(c, http.StatusForbidden, "access denied, please purchase access")
			c.Abort()
			return
		}
		c.Next()
	}
}

// getAccess tells the frontend whether to show the calculator or the paywall.
// GET /api/access (public).
func (h *Handler) getAccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"granted": h.hasAccess(c),
		"paywall": h.checkout != nil,
	})
}
