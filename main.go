package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// newRouter builds the gin engine with every route registered.
func newRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

func main() {
	log.SetPrefix("lg/metabolic-plan-api: ")
	log.SetFlags(0)

	// A missing .env is fine in deployments that set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	signer, err := newAccessSigner(cfg.AccessSecret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to set up access grants: %v\n", err)
		os.Exit(1)
	}
	if cfg.AccessSecret == "" && cfg.paywallEnabled() {
		log.Printf("ACCESS_SECRET not set; access cookies will not survive a restart")
	}

	var gw checkoutGateway
	if cfg.paywallEnabled() {
		gw = newStripeGateway(cfg.StripeSecretKey, cfg.StripePriceID, nil)
		log.Printf("paywall enabled (price %q)", cfg.StripePriceID)
	} else {
		log.Printf("STRIPE_SECRET_KEY not set; paywall disabled")
	}

	h := newHandler(cfg, gw, signer)
	router := newRouter(h)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	addr := ":" + cfg.Port
	fmt.Printf("Starting gin app on %s (default mode %s)...\n", addr, cfg.DefaultMode)
	if err := http.ListenAndServe(addr, c.Handler(router)); err != nil {
		log.Fatal(err)
	}
}
