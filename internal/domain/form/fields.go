package form

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"directa/cotizador/internal/domain/quote"
)

// Field names a single editable attribute of the quote.
type Field string

const (
	FieldQuoteNumber       Field = "quoteNumber"
	FieldQuoteDate         Field = "quoteDate"
	FieldPlanType          Field = "planType"
	FieldCurrency          Field = "currency"
	FieldMonitoringQty     Field = "monitoringQty"
	FieldMonitoringValue   Field = "monitoringValue"
	FieldInstallationQty   Field = "installationQty"
	FieldInstallationValue Field = "installationValue"
	FieldUFValue           Field = "ufValue"
	FieldUSDValue          Field = "usdValue"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

const dateLayout = "2006-01-02"

// apply writes raw into exactly one field of q, leaving every other field alone.
// Numeric input follows form semantics: unparsable text reads as 0 and
// negatives are clamped to 0.
func apply(q *quote.Quote, f Field, raw string) error {
	switch f {
	case FieldQuoteNumber:
		q.Number = raw
	case FieldQuoteDate:
		d, err := time.Parse(dateLayout, strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, f, err)
		}
		q.Date = d
	case FieldPlanType:
		p, err := quote.ParsePlanType(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		q.Plan = p
	case FieldCurrency:
		c, err := quote.ParseCurrency(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		q.Currency = c
	case FieldMonitoringQty:
		q.MonitoringQty = parseQty(raw)
	case FieldMonitoringValue:
		q.MonitoringValue = parseAmount(raw)
	case FieldInstallationQty:
		q.InstallationQty = parseQty(raw)
	case FieldInstallationValue:
		q.InstallationValue = parseAmount(raw)
	case FieldUFValue:
		q.UFValue = parseAmount(raw)
	case FieldUSDValue:
		q.USDValue = parseAmount(raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// parseQty reads the leading integer of raw, so "12abc" is 12 and "3.9" is 3.
func parseQty(raw string) int {
	n, err := strconv.Atoi(intPrefix.FindString(strings.TrimSpace(raw)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseAmount reads the leading decimal number of raw, so "2.5 UF" is 2.5.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(floatPrefix.FindString(strings.TrimSpace(raw)), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
