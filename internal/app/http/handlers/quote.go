package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"directa/cotizador/internal/domain/form"
)

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workspace(r).State())
}

type setFieldRequest struct {
	Value string `json:"value"`
}

func (h *Handlers) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	field := form.Field(chi.URLParam(r, "field"))
	ws := workspace(r)
	if err := ws.SetField(field, req.Value); err != nil {
		log.Printf("quote: set field=%s failed: %v", field, err)
		switch {
		case errors.Is(err, form.ErrUnknownField):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, form.ErrInvalidValue):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "update failed", http.StatusInternalServerError)
		}
		return
	}
	writeMutation(w, ws, true)
}
