package quote

import (
	"math"
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	chilean = message.NewPrinter(language.MustParse("es-CL"))
	german  = message.NewPrinter(language.German)
)

// FormatBase renders a base-currency amount rounded to whole pesos, e.g. "$29.750".
func FormatBase(v float64) string {
	return "$" + chilean.Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// FormatAmount renders a line amount in the quote currency without a symbol
// and without rounding to whole units.
func FormatAmount(cur Currency, v float64) string {
	p := german
	if cur == CLP {
		p = chilean
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatDate uses the Chilean short date form, dd-mm-yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// CurrencySymbol is the column label for line amounts; CLP lines carry none.
func CurrencySymbol(cur Currency) string {
	if cur == CLP {
		return ""
	}
	return string(cur)
}

var whitespace = regexp.MustCompile(`\s`)

// ExportFileName builds Cotizacion_<number>_<client>_<date>.pdf.
func ExportFileName(q Quote) string {
	client := whitespace.ReplaceAllString(q.Client.Name, "_")
	return "Cotizacion_" + q.Number + "_" + client + "_" + FormatDate(q.Date) + ".pdf"
}
