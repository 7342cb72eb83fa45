// Package form holds one user's editing session: the quote being built, the
// client and device registries it draws from, the exchange-rate lookup state
// and the theme derived from an uploaded logo.
package form

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"directa/cotizador/internal/domain/palette"
	"directa/cotizador/internal/domain/quote"
	"directa/cotizador/internal/domain/quote/document"
	"directa/cotizador/internal/domain/rates"
	"directa/cotizador/internal/domain/registry"
)

// ErrLookupInFlight is returned when a rate refresh is requested while one is running.
var ErrLookupInFlight = errors.New("rate lookup already in flight")

type LookupState string

const (
	LookupIdle     LookupState = "idle"
	LookupInFlight LookupState = "in_flight"
	LookupDone     LookupState = "done"
)

// RateSource returns current conversion values. Implementations report
// failure as zero values rather than an error.
type RateSource interface {
	Fetch(ctx context.Context) rates.Values
}

type Workspace struct {
	mu sync.Mutex

	quote   quote.Quote
	clients *registry.Clients
	devices *registry.DeviceTypes

	rates     RateSource
	lookup    LookupState
	lastRates *rates.Values

	logo    *document.Logo
	palette palette.Palette
}

func New(src RateSource, now time.Time) *Workspace {
	return &Workspace{
		quote:   quote.New(now),
		clients: registry.NewClients(),
		devices: registry.NewDeviceTypes(registry.DefaultDeviceTypes...),
		rates:   src,
		lookup:  LookupIdle,
		palette: palette.Default,
	}
}

// State is a consistent copy of the workspace.
type State struct {
	Quote       quote.Quote     `json:"quote"`
	Totals      quote.Totals    `json:"totals"`
	Clients     []quote.Client  `json:"clients"`
	DeviceTypes []string        `json:"deviceTypes"`
	Lookup      LookupState     `json:"lookup"`
	LastRates   *rates.Values   `json:"lastRates,omitempty"`
	Palette     palette.Palette `json:"palette"`
	HasLogo     bool            `json:"hasLogo"`
}

func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := State{
		Quote:       w.quote.Clone(),
		Totals:      quote.Compute(w.quote),
		Clients:     w.clients.List(),
		DeviceTypes: w.devices.List(),
		Lookup:      w.lookup,
		Palette:     w.palette,
		HasLogo:     w.logo != nil,
	}
	if w.lastRates != nil {
		v := *w.lastRates
		s.LastRates = &v
	}
	return s
}

// Printable is the quote, its totals and the document built from them, all
// taken under one lock.
type Printable struct {
	Quote    quote.Quote
	Totals   quote.Totals
	Document document.Document
}

func (w *Workspace) Printable(company document.Company) Printable {
	w.mu.Lock()
	defer w.mu.Unlock()
	q := w.quote.Clone()
	t := quote.Compute(q)
	return Printable{Quote: q, Totals: t, Document: document.Build(q, t, company, w.logo, w.palette)}
}

// Document projects the current quote for preview or export.
func (w *Workspace) Document(company document.Company) document.Document {
	return w.Printable(company).Document
}

func (w *Workspace) Quote() quote.Quote {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.quote.Clone()
}

func (w *Workspace) SetField(f Field, raw string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.quote
	if err := apply(&next, f, raw); err != nil {
		return err
	}
	w.quote = next
	return nil
}

// SelectClient picks a saved client by id, or enters new-client mode for
// quote.PendingID. The selected contact is always cleared.
func (w *Workspace) SelectClient(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch id {
	case quote.PendingID:
		w.quote.Client = quote.Client{ID: quote.PendingID, Contacts: []quote.Contact{}}
	default:
		cl, ok := w.clients.Get(id)
		if !ok {
			cl = quote.Client{Contacts: []quote.Contact{}}
		}
		w.quote.Client = cl
	}
	w.quote.Contact = quote.Contact{}
}

// CommitClient saves a new client and selects it. Blank names are ignored.
func (w *Workspace) CommitClient(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	cl, ok := w.clients.Add(name)
	if !ok {
		return false
	}
	w.quote.Client = cl
	w.quote.Contact = quote.Contact{}
	log.Printf("form: client added id=%s clients=%d", cl.ID, w.clients.Len())
	return true
}

// SelectContact picks a contact of the selected client, or enters new-contact
// mode for quote.PendingID when a saved client is selected.
func (w *Workspace) SelectContact(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id == quote.PendingID {
		if !w.quote.Client.Saved() {
			return false
		}
		w.quote.Contact = quote.Contact{ID: quote.PendingID}
		return true
	}
	ct, _ := w.quote.Client.FindContact(id)
	w.quote.Contact = ct
	return true
}

// CommitContact saves a contact under the selected client and selects it.
func (w *Workspace) CommitContact(name, phone, email string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.quote.Client.Saved() {
		return false
	}
	cl, ct, ok := w.clients.AddContact(w.quote.Client.ID, quote.Contact{Name: name, Phone: phone, Email: email})
	if !ok {
		return false
	}
	w.quote.Client = cl
	w.quote.Contact = ct
	log.Printf("form: contact added client=%s contacts=%d", cl.ID, len(cl.Contacts))
	return true
}

// SelectDevice picks a registered device label or enters new-device mode.
func (w *Workspace) SelectDevice(label string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if label != quote.PendingDevice && !w.devices.Contains(label) {
		return false
	}
	w.quote.DeviceType = label
	return true
}

// CommitDevice registers a new device label and selects it. Blank or already
// registered labels leave registry and selection untouched.
func (w *Workspace) CommitDevice(label string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	added, ok := w.devices.Add(label)
	if !ok {
		return false
	}
	w.quote.DeviceType = added
	return true
}

func (w *Workspace) Lookup() LookupState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lookup
}

// RefreshRates runs one exchange-rate lookup. Only one may be outstanding per
// workspace; both rates are written together from the same response.
func (w *Workspace) RefreshRates(ctx context.Context) (rates.Values, error) {
	w.mu.Lock()
	if w.lookup == LookupInFlight {
		w.mu.Unlock()
		return rates.Values{}, ErrLookupInFlight
	}
	w.lookup = LookupInFlight
	w.mu.Unlock()

	v := w.rates.Fetch(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.quote.UFValue = v.UF
	w.quote.USDValue = v.USD
	w.lastRates = &v
	w.lookup = LookupDone
	return v, nil
}

// ApplyLogo installs an uploaded logo and the palette derived from it.
func (w *Workspace) ApplyLogo(logo document.Logo, p palette.Palette) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logo = &logo
	w.palette = p
}

// ResetTheme drops the logo and restores the default palette.
func (w *Workspace) ResetTheme() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logo = nil
	w.palette = palette.Default
}
