package gofpdf

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"

	"directa/cotizador/internal/domain/picture"
	"directa/cotizador/internal/domain/quote/document"
	"directa/cotizador/internal/domain/quote/pdf"
)

const (
	pad      = 40.0
	logoMaxH = 60.0
	logoMaxW = 160.0
	family   = "DejaVu"
)

//go:embed fonts/*.ttf
var fonts embed.FS

var fontFiles = []struct{ style, file string }{
	{"", "fonts/DejaVuSansCondensed.ttf"},
	{"B", "fonts/DejaVuSansCondensed-Bold.ttf"},
	{"I", "fonts/DejaVuSansCondensed-Oblique.ttf"},
	{"BI", "fonts/DejaVuSansCondensed-BoldOblique.ttf"},
}

func addFonts(doc *gofpdf.Fpdf) error {
	for _, f := range fontFiles {
		b, err := fonts.ReadFile(f.file)
		if err != nil {
			return fmt.Errorf("load font %s: %w", f.file, err)
		}
		doc.AddUTF8FontFromBytes(family, f.style, b)
	}
	return doc.Error()
}

type Generator struct {
	// Compress toggles stream compression; on by default.
	Compress bool
}

func New() *Generator { return &Generator{Compress: true} }

func (g *Generator) Generate(d document.Document) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetTitle(d.Title+" "+d.Number, true)
	doc.SetCreator("cotizador", false)
	doc.SetCompression(g.Compress)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	if err := addFonts(doc); err != nil {
		return nil, err
	}
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	lg := registerLogo(doc, d.Logo)

	measure := &canvas{}
	contentH := layout(measure, d, pageW, lg)

	_, _, w, _ := pdf.FitToPage(pageW, contentH, pageW, pageH)
	scale := w / pageW
	paint := &canvas{pdf: doc, paint: true}
	if scale < 1 {
		log.Printf("quote pdf: content height=%.0f exceeds page, scale=%.3f", contentH, scale)
		doc.TransformBegin()
		doc.TransformScale(scale*100, scale*100, pageW/2, 0)
	}
	layout(paint, d, pageW, lg)
	if scale < 1 {
		doc.TransformEnd()
	}

	if err := doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	log.Printf("quote pdf: generated number=%s size=%s", d.Number, humanize.Bytes(uint64(buf.Len())))
	return buf.Bytes(), nil
}

type logo struct {
	name string
	w, h float64
}

// registerLogo re-encodes the upload as an 8-bit PNG, the form gofpdf reads
// reliably, and registers it with the document.
func registerLogo(doc *gofpdf.Fpdf, l *document.Logo) *logo {
	if l == nil || len(l.Data) == 0 {
		return nil
	}
	src, format, err := picture.Decode(l.Data)
	if err != nil {
		log.Printf("quote pdf: logo skipped: %v", err)
		return nil
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		log.Printf("quote pdf: logo skipped: encode %s: %v", format, err)
		return nil
	}

	const name = "logo"
	doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if !doc.Ok() {
		return nil
	}
	ratio := float64(b.Dx()) / float64(b.Dy())
	h := logoMaxH
	w := h * ratio
	if w > logoMaxW {
		w = logoMaxW
		h = w / ratio
	}
	return &logo{name: name, w: w, h: h}
}

// canvas draws only when paint is set; otherwise layout just measures.
type canvas struct {
	pdf   *gofpdf.Fpdf
	paint bool
}

func (c *canvas) font(style string, size float64, r, g, b int) {
	if !c.paint {
		return
	}
	c.pdf.SetFont(family, style, size)
	c.pdf.SetTextColor(r, g, b)
}

func (c *canvas) text(x, y, w, h float64, s, align string) {
	if !c.paint {
		return
	}
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, s, "", 0, align, false, 0, "")
}

func (c *canvas) box(x, y, w, h float64, r, g, b int) {
	if !c.paint {
		return
	}
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *canvas) rule(x1, x2, y, width float64, r, g, b int) {
	if !c.paint {
		return
	}
	c.pdf.SetDrawColor(r, g, b)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y, x2, y)
}

func (c *canvas) image(l *logo, x, y float64) {
	if !c.paint || l == nil {
		return
	}
	c.pdf.ImageOptions(l.name, x, y, l.w, l.h, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// layout walks the document top to bottom and returns its height.
func layout(c *canvas, d document.Document, pageW float64, lg *logo) float64 {
	inner := pageW - 2*pad
	y := pad

	pr, pg, pb := d.Palette.PrimaryRGB()

	// header
	c.box(pad, y, 5, 32, pr, pg, pb)
	c.font("B", 28, 17, 24, 39)
	c.text(pad+12, y, inner*2/3, 32, d.Title, "L")
	c.font("", 11, 55, 65, 81)
	c.text(pad+12, y+36, inner*2/3, 16, "Número: "+d.Number, "L")
	head := 56.0
	if lg != nil {
		c.image(lg, pageW-pad-lg.w, y)
		if lg.h > head {
			head = lg.h
		}
	}
	y += head + 16
	c.rule(pad, pageW-pad, y, 1.5, 229, 231, 235)
	y += 20

	// client and date
	col := inner / 2
	left := y
	c.font("B", 9, 75, 85, 99)
	c.text(pad, left, col, 14, "CLIENTE", "L")
	left += 16
	c.font("B", 11, 17, 24, 39)
	c.text(pad, left, col, 16, d.ClientName, "L")
	left += 18
	c.font("", 10, 55, 65, 81)
	for _, s := range d.ContactLines {
		c.text(pad, left, col, 14, s, "L")
		left += 15
	}
	right := y
	for _, kv := range [][2]string{{"FECHA", d.Date}, {"PLAN", d.Plan}} {
		c.font("B", 9, 75, 85, 99)
		c.text(pad+col, right, col, 14, kv[0], "R")
		right += 16
		c.font("B", 11, 17, 24, 39)
		c.text(pad+col, right, col, 16, kv[1], "R")
		right += 22
	}
	if right > left {
		left = right
	}
	y = left + 18

	// line items
	widths := []float64{inner * 0.44, inner * 0.12, inner * 0.22, inner * 0.22}
	aligns := []string{"L", "C", "R", "R"}
	heads := []string{
		"Descripción",
		"Cantidad",
		fmt.Sprintf("*Valor Unitario (%s)", d.CurrencySymbol),
		fmt.Sprintf("Subtotal (%s)", d.CurrencySymbol),
	}
	c.box(pad, y, inner, 24, 55, 65, 81)
	c.font("B", 8.5, 255, 255, 255)
	x := pad
	for i, h := range heads {
		c.text(x+6, y, widths[i]-12, 24, h, aligns[i])
		x += widths[i]
	}
	y += 24
	c.font("", 10, 17, 24, 39)
	for _, ln := range d.Lines {
		x = pad
		for i, s := range []string{ln.Description, ln.Qty, ln.UnitValue, ln.Subtotal} {
			c.text(x+6, y, widths[i]-12, 24, s, aligns[i])
			x += widths[i]
		}
		y += 24
		c.rule(pad, pageW-pad, y, 0.5, 243, 244, 246)
	}
	y += 24

	// totals
	tx := pad + col
	for _, kv := range [][2]string{
		{"Monto Neto (" + d.BaseLabel + ")", d.Net},
		{d.TaxLabel + " (" + d.BaseLabel + ")", d.Tax},
	} {
		c.font("", 10, 55, 65, 81)
		c.text(tx, y, col, 22, kv[0], "L")
		c.font("B", 10, 17, 24, 39)
		c.text(tx, y, col, 22, kv[1], "R")
		y += 22
		c.rule(tx, pageW-pad, y, 0.5, 229, 231, 235)
	}
	y += 6
	c.box(tx, y, col, 30, 243, 244, 246)
	c.font("B", 13, 17, 24, 39)
	c.text(tx+8, y, col-16, 30, "TOTAL ("+d.BaseLabel+")", "L")
	c.text(tx+8, y, col-16, 30, d.Total, "R")
	y += 30 + 36

	// footer
	c.rule(pad, pageW-pad, y, 1.5, 229, 231, 235)
	y += 16
	c.font("B", 9, 75, 85, 99)
	c.text(pad, y, inner, 13, "Datos para Transferencia:", "L")
	y += 13
	c.font("", 9, 75, 85, 99)
	for _, s := range d.CompanyLines() {
		c.text(pad, y, inner, 13, s, "L")
		y += 13
	}
	y += 8
	c.font("I", 9, 75, 85, 99)
	for _, s := range d.Notes {
		c.text(pad, y, inner, 13, s, "L")
		y += 13
	}
	c.font("BI", 9, 75, 85, 99)
	c.text(pad, y, inner, 13, d.PlanNote, "L")
	y += 13

	return y + pad
}
