package pdf

import "directa/cotizador/internal/domain/quote/document"

type Generator interface {
	Generate(d document.Document) ([]byte, error)
}

// FitToPage places content of the given natural size on a page. Content is
// scaled to the page width; when that makes it taller than the page it is
// shrunk to the page height instead and centred horizontally.
func FitToPage(contentW, contentH, pageW, pageH float64) (x, y, w, h float64) {
	if contentW <= 0 || contentH <= 0 {
		return 0, 0, pageW, 0
	}
	ratio := contentW / contentH
	w, h = pageW, pageW/ratio
	if h > pageH {
		h = pageH
		w = h * ratio
		return (pageW - w) / 2, 0, w, h
	}
	return 0, 0, w, h
}
