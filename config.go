package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"lg/metabolic-plan-api/plan"
)

// config is the server configuration, read from the environment after
// godotenv has loaded any .env file.
type config struct {
	Port           string
	BaseURL        string
	AllowedOrigins []string

	StripeSecretKey string
	StripePriceID   string
	AccessSecret    string

	DefaultMode   plan.Mode
	ProteinPreset string // "", "per_lb" or "per_kg"
	GainDelta     *int   // overrides the date preset's flat gain delta
}

// getEnv returns the environment value for key, or def when unset or empty.
func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// loadConfig reads the server config. Malformed values are errors rather
// than silent defaults so a bad deploy fails at startup.
func loadConfig() (config, error) {
	cfg := config{
		Port:            getEnv("PORT", "3000"),
		BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:3000"), "/"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripePriceID:   getEnv("STRIPE_PRICE_ID", ""),
		AccessSecret:    getEnv("ACCESS_SECRET", ""),
		ProteinPreset:   getEnv("PLAN_PROTEIN_PRESET", ""),
	}

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", cfg.BaseURL), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	mode, ok := plan.ParseMode(getEnv("PLAN_DEFAULT_MODE", string(plan.DateMode)))
	if !ok {
		return config{}, fmt.Errorf("PLAN_DEFAULT_MODE must be one of: date, intensity")
	}
	cfg.DefaultMode = mode

	switch cfg.ProteinPreset {
	case "", "per_lb", "per_kg":
	default:
		return config{}, fmt.Errorf("PLAN_PROTEIN_PRESET must be one of: per_lb, per_kg")
	}

	if s := getEnv("PLAN_GAIN_DELTA", ""); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return config{}, fmt.Errorf("PLAN_GAIN_DELTA must be a non-negative integer: %q", s)
		}
		cfg.GainDelta = &n
	}

	return cfg, nil
}

// planConfigs builds one pipeline config per mode from the presets, with
// the environment overrides applied.
func (c config) planConfigs() map[plan.Mode]plan.Config {
	out := map[plan.Mode]plan.Config{}
	for _, mode := range []plan.Mode{plan.DateMode, plan.IntensityMode} {
		pc := plan.Preset(mode)
		switch c.ProteinPreset {
		case "per_lb":
			pc.ProteinPerKg = plan.ProteinPerPound
		case "per_kg":
			pc.ProteinPerKg = plan.ProteinPerKg
		}
		if c.GainDelta != nil && mode == plan.DateMode {
			pc.GainDelta = *c.GainDelta
		}
		out[mode] = pc
	}
	return out
}

// paywallEnabled is true when a Stripe key is configured.
func (c config) paywallEnabled() bool {
	return c.StripeSecretKey != ""
}
