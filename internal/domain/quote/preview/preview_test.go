package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directa/cotizador/internal/domain/palette"
	"directa/cotizador/internal/domain/quote"
	"directa/cotizador/internal/domain/quote/document"
)

func buildDoc(mutate func(q *quote.Quote), logo *document.Logo) document.Document {
	q := quote.New(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	q.Number = "2041"
	q.MonitoringQty = 20
	q.MonitoringValue = 10000
	q.InstallationQty = 10
	q.InstallationValue = 5000
	if mutate != nil {
		mutate(&q)
	}
	return document.Build(q, quote.Compute(q), document.DefaultCompany, logo, palette.Default)
}

func render(t *testing.T, d document.Document) string {
	t.Helper()
	out, err := RenderBytes(d)
	require.NoError(t, err)
	return string(out)
}

func TestRenderBasicQuote(t *testing.T) {
	html := render(t, buildDoc(nil, nil))

	for _, want := range []string{
		"COTIZACIÓN",
		"Número: 2041",
		"Nombre Cliente",
		"17-10-2026",
		"Plan Básico",
		"Servicio de Monitoreo (GPS Tracker X1)",
		"Servicio de Instalación (GPS Tracker X1)",
		"*Valor Unitario ()",
		"200.000",
		"Monto Neto (CLP)",
		"$250.000",
		"IVA (19%) (CLP)",
		"$47.500",
		"TOTAL (CLP)",
		"$297.500",
		"Razón Social: Directa Spa",
		"RUT: 77.497.401-6",
		"*Valores no incluyen IVA",
		"**Válido solo por 15 días",
		"No incluye tarja digital",
		"--primary-color: #4f46e5",
	} {
		assert.Contains(t, html, want)
	}
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "Incluye Tarja Digital")
}

func TestRenderContactLinesAreOptional(t *testing.T) {
	html := render(t, buildDoc(func(q *quote.Quote) {
		q.Client = quote.Client{ID: "c1", Name: "Agrotrac"}
		q.Contact = quote.Contact{ID: "k1", Name: "Ana Pérez", Email: "ana@agrotrac.cl"}
	}, nil))

	assert.Contains(t, html, "Agrotrac")
	assert.Contains(t, html, "Ana Pérez")
	assert.Contains(t, html, "ana@agrotrac.cl")
	assert.NotContains(t, html, "Nombre Cliente")
	// quote number line plus two contact lines; the empty phone is skipped
	assert.Equal(t, 3, strings.Count(html, `<p class="muted">`))
}

func TestRenderForeignCurrencyAndFullPlan(t *testing.T) {
	html := render(t, buildDoc(func(q *quote.Quote) {
		q.Currency = quote.UF
		q.UFValue = 37000
		q.Plan = quote.PlanFull
		q.MonitoringQty = 2
		q.MonitoringValue = 1.25
		q.InstallationQty = 1
		q.InstallationValue = 0.5
	}, nil))

	assert.Contains(t, html, "*Valor Unitario (UF)")
	assert.Contains(t, html, "<td class=\"r\">1,25</td>")
	assert.Contains(t, html, "<td class=\"r\">2,5</td>")
	assert.Contains(t, html, "$132.090")
	assert.Contains(t, html, "Incluye Tarja Digital")
}

func TestRenderLogo(t *testing.T) {
	html := render(t, buildDoc(nil, &document.Logo{Data: []byte("png"), ContentType: "image/png"}))

	assert.Contains(t, html, `src="data:image/png;base64,cG5n"`)
}

func TestRenderEscapesInput(t *testing.T) {
	html := render(t, buildDoc(func(q *quote.Quote) {
		q.Client.Name = "<script>alert(1)</script>"
	}, nil))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
