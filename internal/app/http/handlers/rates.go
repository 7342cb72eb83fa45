package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"directa/cotizador/internal/domain/form"
)

func (h *Handlers) RefreshRates(w http.ResponseWriter, r *http.Request) {
	ws := workspace(r)
	// a dropped client must not leave zeros behind from a cancelled lookup
	v, err := ws.RefreshRates(context.WithoutCancel(r.Context()))
	if errors.Is(err, form.ErrLookupInFlight) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("rates: refresh failed: %v", err)
		http.Error(w, "rate refresh failed", http.StatusInternalServerError)
		return
	}
	writeMutation(w, ws, v.UF != 0 || v.USD != 0)
}
