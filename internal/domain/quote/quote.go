package quote

import (
	"fmt"
	"strings"
	"time"
)

// PendingID marks a client or contact that is being created but not saved yet.
const PendingID = "new"

// PendingDevice marks the "add new device type" mode of the device selector.
const PendingDevice = "new"

type Currency string

const (
	CLP Currency = "CLP"
	USD Currency = "USD"
	UF  Currency = "UF"
)

// BaseCurrency is the currency of net, tax and total.
const BaseCurrency = CLP

var Currencies = []Currency{CLP, USD, UF}

func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CLP:
		return CLP, nil
	case USD:
		return USD, nil
	case UF:
		return UF, nil
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

type PlanType string

const (
	PlanBasic PlanType = "Plan Básico"
	PlanFull  PlanType = "Plan Full"
)

var PlanTypes = []PlanType{PlanBasic, PlanFull}

// ParsePlanType accepts the display label or the short tier name.
func ParsePlanType(s string) (PlanType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "plan ")
	switch v {
	case "básico", "basico":
		return PlanBasic, nil
	case "full":
		return PlanFull, nil
	}
	return "", fmt.Errorf("unknown plan type %q", s)
}

type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Client struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Contacts []Contact `json:"contacts"`
}

// Clone returns a copy that shares no memory with c.
func (c Client) Clone() Client {
	out := c
	out.Contacts = append([]Contact(nil), c.Contacts...)
	if out.Contacts == nil {
		out.Contacts = []Contact{}
	}
	return out
}

// Saved reports whether the client exists in a registry.
func (c Client) Saved() bool {
	return c.ID != "" && c.ID != PendingID
}

func (c Client) FindContact(id string) (Contact, bool) {
	for _, ct := range c.Contacts {
		if ct.ID == id {
			return ct, true
		}
	}
	return Contact{}, false
}

// Quote is the record behind one estimate. Client and Contact are snapshots
// taken at selection time, not links into a registry.
type Quote struct {
	Number   string    `json:"quoteNumber"`
	Client   Client    `json:"client"`
	Contact  Contact   `json:"contact"`
	Date     time.Time `json:"quoteDate"`
	Plan     PlanType  `json:"planType"`
	Currency Currency  `json:"currency"`

	MonitoringQty     int     `json:"monitoringQty"`
	MonitoringValue   float64 `json:"monitoringValue"`
	InstallationQty   int     `json:"installationQty"`
	InstallationValue float64 `json:"installationValue"`

	DeviceType string  `json:"deviceType"`
	UFValue    float64 `json:"ufValue"`
	USDValue   float64 `json:"usdValue"`
}

const DefaultDeviceType = "GPS Tracker X1"

// New returns the quote a fresh session starts with.
func New(now time.Time) Quote {
	return Quote{
		Number:          "1001",
		Client:          Client{Contacts: []Contact{}},
		Date:            now,
		Plan:            PlanBasic,
		Currency:        CLP,
		MonitoringQty:   1,
		InstallationQty: 1,
		DeviceType:      DefaultDeviceType,
	}
}

func (q Quote) Clone() Quote {
	out := q
	out.Client = q.Client.Clone()
	return out
}
