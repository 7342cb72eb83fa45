package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"directa/cotizador/internal/app/config"
	"directa/cotizador/internal/app/http/handlers"
	"directa/cotizador/internal/app/http/middleware"
	"directa/cotizador/internal/app/session"
)

// NewRouter wires the quote API. journal may be nil.
func NewRouter(cfg config.Config, store *session.Store, journal handlers.ExportJournal) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg, journal)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		if cfg.InternalToken != "" {
			r.Use(middleware.InternalAuth(cfg.InternalToken))
		}
		r.Use(middleware.Session(store))

		r.Get("/quote", h.GetQuote)
		r.Put("/quote/fields/{field}", h.SetField)
		r.Put("/quote/client", h.SelectClient)
		r.Put("/quote/contact", h.SelectContact)
		r.Put("/quote/device", h.SelectDevice)
		r.Get("/quote/preview", h.Preview)
		r.Get("/quote/export", h.Export)

		r.Get("/clients", h.ListClients)
		r.Post("/clients", h.CommitClient)
		r.Post("/clients/current/contacts", h.CommitContact)

		r.Get("/device-types", h.ListDeviceTypes)
		r.Post("/device-types", h.CommitDevice)

		r.Post("/rates/refresh", h.RefreshRates)

		r.Post("/logo", h.UploadLogo)
		r.Delete("/logo", h.ResetLogo)
	})

	return r
}
