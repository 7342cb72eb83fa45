package handlers

import (
	"log"
	"mime"
	"net/http"

	"directa/cotizador/internal/domain/quote/preview"
	"directa/cotizador/internal/infra/db/postgres"
)

func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	doc := workspace(r).Document(h.Cfg.Company)
	body, err := preview.RenderBytes(doc)
	if err != nil {
		log.Printf("quote preview: render failed: %v", err)
		http.Error(w, "preview failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	p := workspace(r).Printable(h.Cfg.Company)
	q, doc := p.Quote, p.Document

	pdfBytes, err := h.PDF.Generate(doc)
	if err != nil {
		log.Printf("quote export: number=%s failed: %v", q.Number, err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	if h.Journal != nil {
		rec := postgres.ExportRecord{
			QuoteNumber: q.Number,
			ClientName:  q.Client.Name,
			Currency:    string(q.Currency),
			NetBase:     p.Totals.NetBase,
			TotalBase:   p.Totals.Total,
			FileName:    doc.FileName,
		}
		if err := h.Journal.RecordExport(r.Context(), rec); err != nil {
			log.Printf("quote export: journal failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
