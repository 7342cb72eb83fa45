package registry

import (
	"strings"

	"github.com/google/uuid"

	"directa/cotizador/internal/domain/quote"
)

// Clients is an ordered, grow-only list of clients and their contacts.
// It is not safe for concurrent use; the owning workspace serialises access.
type Clients struct {
	items []quote.Client
	newID func() string
}

func NewClients() *Clients {
	return &Clients{newID: uuid.NewString}
}

// Add appends a client named by the trimmed name. An empty name is ignored.
func (c *Clients) Add(name string) (quote.Client, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return quote.Client{}, false
	}
	cl := quote.Client{ID: c.freshID(), Name: name, Contacts: []quote.Contact{}}
	c.items = append(c.items, cl)
	return cl.Clone(), true
}

// AddContact appends a contact to a saved client and returns the updated
// client together with the stored contact.
func (c *Clients) AddContact(clientID string, ct quote.Contact) (quote.Client, quote.Contact, bool) {
	ct.Name = strings.TrimSpace(ct.Name)
	if ct.Name == "" {
		return quote.Client{}, quote.Contact{}, false
	}
	i := c.index(clientID)
	if i < 0 {
		return quote.Client{}, quote.Contact{}, false
	}
	ct.ID = c.freshID()
	c.items[i].Contacts = append(c.items[i].Contacts, ct)
	return c.items[i].Clone(), ct, true
}

func (c *Clients) Get(id string) (quote.Client, bool) {
	i := c.index(id)
	if i < 0 {
		return quote.Client{}, false
	}
	return c.items[i].Clone(), true
}

func (c *Clients) List() []quote.Client {
	out := make([]quote.Client, len(c.items))
	for i, cl := range c.items {
		out[i] = cl.Clone()
	}
	return out
}

func (c *Clients) Len() int { return len(c.items) }

func (c *Clients) index(id string) int {
	if id == "" || id == quote.PendingID {
		return -1
	}
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// freshID draws ids until one is unused by any client or contact.
func (c *Clients) freshID() string {
	for {
		id := c.newID()
		if id != "" && id != quote.PendingID && !c.used(id) {
			return id
		}
	}
}

func (c *Clients) used(id string) bool {
	for _, cl := range c.items {
		if cl.ID == id {
			return true
		}
		if _, ok := cl.FindContact(id); ok {
			return true
		}
	}
	return false
}
