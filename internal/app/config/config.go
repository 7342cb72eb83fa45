package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"directa/cotizador/internal/domain/quote/document"
	"directa/cotizador/internal/domain/rates"
)

type Config struct {
	HTTPAddr        string
	InternalToken   string
	DatabaseURL     string
	RatesURL        string
	HTTPTimeout     time.Duration
	SessionTTL      time.Duration
	MaxSessions     int
	CORSAllowOrigin string
	Company         document.Company
}

// MustLoad reads the environment, seeded from a .env file when one exists.
func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		DatabaseURL:     env("DATABASE_URL", ""),
		RatesURL:        env("RATES_URL", rates.DefaultURL),
		HTTPTimeout:     envDuration("HTTP_TIMEOUT", 15*time.Second),
		SessionTTL:      envDuration("SESSION_TTL", 12*time.Hour),
		MaxSessions:     envInt("MAX_SESSIONS", 10000),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		Company: document.Company{
			Name:    env("COMPANY_NAME", document.DefaultCompany.Name),
			RUT:     env("COMPANY_RUT", document.DefaultCompany.RUT),
			Account: env("COMPANY_ACCOUNT", document.DefaultCompany.Account),
			Bank:    env("COMPANY_BANK", document.DefaultCompany.Bank),
			Email:   env("COMPANY_EMAIL", document.DefaultCompany.Email),
		},
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("invalid env %s=%q", k, v)
	}
	return d
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Fatalf("invalid env %s=%q", k, v)
	}
	return n
}
