// Package preview renders a quote document as a printable HTML page.
package preview

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"io"

	"directa/cotizador/internal/domain/quote/document"
)

//go:embed templates/quote.html.tmpl
var files embed.FS

var page = template.Must(template.New("quote.html.tmpl").Funcs(template.FuncMap{
	"logoURL": logoURL,
	"css":     func(s string) template.CSS { return template.CSS(s) },
}).ParseFS(files, "templates/quote.html.tmpl"))

// Render writes d as a standalone HTML document.
func Render(w io.Writer, d document.Document) error {
	return page.Execute(w, d)
}

func RenderBytes(d document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func logoURL(l *document.Logo) template.URL {
	if l == nil || len(l.Data) == 0 {
		return ""
	}
	ct := l.ContentType
	if ct == "" {
		ct = "image/png"
	}
	return template.URL("data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(l.Data))
}
