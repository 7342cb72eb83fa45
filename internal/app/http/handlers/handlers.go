package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"directa/cotizador/internal/app/config"
	"directa/cotizador/internal/app/http/middleware"
	"directa/cotizador/internal/domain/form"
	"directa/cotizador/internal/domain/quote/pdf"
	pdfgen "directa/cotizador/internal/domain/quote/pdf/gofpdf"
	"directa/cotizador/internal/infra/db/postgres"
)

// ExportJournal records issued documents. It is optional.
type ExportJournal interface {
	RecordExport(ctx context.Context, rec postgres.ExportRecord) error
}

type Handlers struct {
	Cfg     config.Config
	PDF     pdf.Generator
	Journal ExportJournal
}

func New(cfg config.Config, journal ExportJournal) *Handlers {
	return &Handlers{
		Cfg:     cfg,
		PDF:     pdfgen.New(),
		Journal: journal,
	}
}

type mutationResponse struct {
	Applied bool       `json:"applied"`
	State   form.State `json:"state"`
}

func workspace(r *http.Request) *form.Workspace {
	return middleware.Workspace(r.Context())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response failed: %v", err)
	}
}

// writeMutation answers with the current state whether or not the change was
// applied; rejected input is not an error for the caller.
func writeMutation(w http.ResponseWriter, ws *form.Workspace, applied bool) {
	writeJSON(w, http.StatusOK, mutationResponse{Applied: applied, State: ws.State()})
}

func decode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
