package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"directa/cotizador/internal/domain/quote/document"
	"directa/cotizador/internal/domain/rates"
)

func TestMustLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "INTERNAL_TOKEN", "DATABASE_URL", "RATES_URL", "HTTP_TIMEOUT", "SESSION_TTL", "MAX_SESSIONS", "CORS_ALLOW_ORIGIN", "COMPANY_NAME"} {
		t.Setenv(k, "")
	}

	cfg := MustLoad()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.InternalToken)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, rates.DefaultURL, cfg.RatesURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, document.DefaultCompany, cfg.Company)
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("MAX_SESSIONS", "250")
	t.Setenv("COMPANY_BANK", "BancoEstado")

	cfg := MustLoad()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 250, cfg.MaxSessions)
	assert.Equal(t, "BancoEstado", cfg.Company.Bank)
	assert.Equal(t, document.DefaultCompany.Name, cfg.Company.Name)
}
