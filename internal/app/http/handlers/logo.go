package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"directa/cotizador/internal/domain/palette"
	"directa/cotizador/internal/domain/picture"
	"directa/cotizador/internal/domain/quote/document"
)

const maxLogoBytes = 5 << 20

func (h *Handlers) UploadLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes+1<<20)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, fh, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "logo file is required", http.StatusBadRequest)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	file.Close()
	if err != nil {
		http.Error(w, "read failed", http.StatusBadRequest)
		return
	}
	if len(data) > maxLogoBytes {
		http.Error(w, "logo too large", http.StatusRequestEntityTooLarge)
		return
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		http.Error(w, "logo must be an image", http.StatusUnsupportedMediaType)
		return
	}
	if _, _, err := picture.Config(data); errors.Is(err, picture.ErrTooLarge) {
		log.Printf("logo: rejected filename=%s: %v", fh.Filename, err)
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	pal := palette.FromImage(data)
	ws := workspace(r)
	ws.ApplyLogo(document.Logo{Data: data, ContentType: contentType}, pal)
	log.Printf("logo: applied filename=%s type=%s size=%s primary=%s secondary=%s",
		fh.Filename, contentType, humanize.Bytes(uint64(len(data))), pal.Primary, pal.Secondary)
	writeMutation(w, ws, true)
}

func (h *Handlers) ResetLogo(w http.ResponseWriter, r *http.Request) {
	ws := workspace(r)
	ws.ResetTheme()
	writeMutation(w, ws, true)
}
