package quote

// TaxRate is the IVA applied to the base-currency net amount.
const TaxRate = 0.19

type Totals struct {
	MonitoringSubtotal   float64 `json:"monitoringSubtotal"`
	InstallationSubtotal float64 `json:"installationSubtotal"`
	NetSelected          float64 `json:"netAmountInSelectedCurrency"`
	NetBase              float64 `json:"netAmountBase"`
	Tax                  float64 `json:"tax"`
	Total                float64 `json:"total"`
}

// Compute derives subtotals, tax and total. Nothing is rounded here; rounding
// belongs to display formatting.
func Compute(q Quote) Totals {
	var t Totals
	t.MonitoringSubtotal = float64(q.MonitoringQty) * q.MonitoringValue
	t.InstallationSubtotal = float64(q.InstallationQty) * q.InstallationValue
	t.NetSelected = t.MonitoringSubtotal + t.InstallationSubtotal
	t.NetBase = ToBase(t.NetSelected, q.Currency, q.UFValue, q.USDValue)
	t.Tax = t.NetBase * TaxRate
	t.Total = t.NetBase + t.Tax
	return t
}

// ToBase converts an amount in cur to the base currency.
func ToBase(amount float64, cur Currency, ufValue, usdValue float64) float64 {
	switch cur {
	case UF:
		return amount * ufValue
	case USD:
		return amount * usdValue
	default:
		return amount
	}
}
