package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directa/cotizador/internal/app/session"
	"directa/cotizador/internal/domain/form"
	"directa/cotizador/internal/domain/rates"
)

type noRates struct{}

func (noRates) Fetch(context.Context) rates.Values { return rates.Values{} }

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec}
	_, err := sr.Write([]byte("hola"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, sr.status)
	assert.Equal(t, 4, sr.bytes)
}

func TestInternalAuth(t *testing.T) {
	h := InternalAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Internal-Token", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestSessionReplacesUnknownID(t *testing.T) {
	store := session.NewStore(time.Hour, 0, noRates{})
	var got *form.Workspace
	h := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Workspace(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "stale-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, got)
	id := rec.Header().Get(SessionHeader)
	assert.NotEqual(t, "stale-id", id)
	ws, ok := store.Get(id)
	require.True(t, ok)
	assert.Same(t, got, ws)
}

func TestWorkspaceWithoutSession(t *testing.T) {
	assert.Nil(t, Workspace(context.Background()))
}

func TestCORS(t *testing.T) {
	h := CORS("https://app.directa.cl, *")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name        string
		origin      string
		allowOrigin string
		credentials string
	}{
		{"listed origin", "https://app.directa.cl", "https://app.directa.cl", "true"},
		{"other origin", "https://evil.example", "*", ""},
		{"no origin", "", "*", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/quote", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.allowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.credentials, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORSWithoutWildcardIgnoresUnknownOrigin(t *testing.T) {
	h := CORS("https://app.directa.cl")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/quote", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
