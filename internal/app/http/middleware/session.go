package middleware

import (
	"context"
	"net/http"

	"directa/cotizador/internal/app/session"
	"directa/cotizador/internal/domain/form"
)

const (
	SessionCookie = "cotizador_session"
	SessionHeader = "X-Session-ID"
)

type workspaceKey struct{}

// Session attaches the caller's workspace to the request context, creating a
// fresh one when the session is missing or expired.
func Session(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					id = c.Value
				}
			}
			ws, ok := store.Get(id)
			if !ok {
				id, ws = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), workspaceKey{}, ws)))
		})
	}
}

func Workspace(ctx context.Context) *form.Workspace {
	ws, _ := ctx.Value(workspaceKey{}).(*form.Workspace)
	return ws
}
