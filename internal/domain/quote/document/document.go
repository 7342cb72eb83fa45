// Package document turns a quote and its totals into the display strings that
// both the HTML preview and the PDF export print.
package document

import (
	"fmt"
	"math"

	"directa/cotizador/internal/domain/palette"
	"directa/cotizador/internal/domain/quote"
)

type Company struct {
	Name    string
	RUT     string
	Account string
	Bank    string
	Email   string
}

var DefaultCompany = Company{
	Name:    "Directa Spa",
	RUT:     "77.497.401-6",
	Account: "86106442",
	Bank:    "Santander",
	Email:   "finanzas@agrotrac.cl",
}

const (
	NoteNoTax     = "*Valores no incluyen IVA"
	NoteValidity  = "**Válido solo por 15 días"
	NoteFullPlan  = "Incluye Tarja Digital"
	NoteBasicPlan = "No incluye tarja digital"

	ClientPlaceholder = "Nombre Cliente"
)

type Logo struct {
	Data        []byte
	ContentType string
}

type Line struct {
	Description string
	Qty         string
	UnitValue   string
	Subtotal    string
}

type Document struct {
	Title    string
	Number   string
	FileName string

	ClientName   string
	ContactLines []string
	Date         string
	Plan         string

	CurrencySymbol string
	Lines          []Line

	Net   string
	Tax   string
	Total string

	TaxLabel  string
	BaseLabel string
	Company   Company
	Notes     []string
	PlanNote  string
	Logo      *Logo
	Palette   palette.Palette
}

// Build projects q onto printable strings. It holds no state; the same input
// always yields the same document.
func Build(q quote.Quote, t quote.Totals, company Company, logo *Logo, pal palette.Palette) Document {
	d := Document{
		Title:          "COTIZACIÓN",
		Number:         q.Number,
		FileName:       quote.ExportFileName(q),
		ClientName:     q.Client.Name,
		Date:           quote.FormatDate(q.Date),
		Plan:           string(q.Plan),
		CurrencySymbol: quote.CurrencySymbol(q.Currency),
		Net:            quote.FormatBase(t.NetBase),
		Tax:            quote.FormatBase(t.Tax),
		Total:          quote.FormatBase(t.Total),
		TaxLabel:       fmt.Sprintf("IVA (%d%%)", int(math.Round(quote.TaxRate*100))),
		BaseLabel:      string(quote.BaseCurrency),
		Company:        company,
		Notes:          []string{NoteNoTax, NoteValidity},
		PlanNote:       NoteBasicPlan,
		Logo:           logo,
		Palette:        pal,
	}
	if d.ClientName == "" {
		d.ClientName = ClientPlaceholder
	}
	for _, s := range []string{q.Contact.Name, q.Contact.Phone, q.Contact.Email} {
		if s != "" {
			d.ContactLines = append(d.ContactLines, s)
		}
	}
	if q.Plan == quote.PlanFull {
		d.PlanNote = NoteFullPlan
	}

	d.Lines = []Line{
		{
			Description: fmt.Sprintf("Servicio de Monitoreo (%s)", q.DeviceType),
			Qty:         fmt.Sprintf("%d", q.MonitoringQty),
			UnitValue:   quote.FormatAmount(q.Currency, q.MonitoringValue),
			Subtotal:    quote.FormatAmount(q.Currency, t.MonitoringSubtotal),
		},
		{
			Description: fmt.Sprintf("Servicio de Instalación (%s)", q.DeviceType),
			Qty:         fmt.Sprintf("%d", q.InstallationQty),
			UnitValue:   quote.FormatAmount(q.Currency, q.InstallationValue),
			Subtotal:    quote.FormatAmount(q.Currency, t.InstallationSubtotal),
		},
	}
	return d
}

func (d Document) CompanyLines() []string {
	return []string{
		"Razón Social: " + d.Company.Name,
		"RUT: " + d.Company.RUT,
		"Cuenta Corriente: " + d.Company.Account,
		"Banco: " + d.Company.Bank,
		"Correo: " + d.Company.Email,
	}
}
