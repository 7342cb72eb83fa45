package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directa/cotizador/internal/domain/quote"
)

func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		if i < len(ids) {
			i++
			return ids[i-1]
		}
		i++
		return fmt.Sprintf("gen-%d", i)
	}
}

func TestClientsAdd(t *testing.T) {
	c := NewClients()

	cl, ok := c.Add("  Agrotrac  ")
	require.True(t, ok)
	assert.Equal(t, "Agrotrac", cl.Name)
	assert.NotEmpty(t, cl.ID)
	assert.Empty(t, cl.Contacts)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, ok := c.Add(name)
		assert.False(t, ok, "%q", name)
	}
	assert.Equal(t, 1, c.Len())
}

func TestClientsIDsAreUnique(t *testing.T) {
	c := NewClients()
	c.newID = sequentialIDs("a", "a", "new", "b", "a", "c")

	first, _ := c.Add("one")
	second, _ := c.Add("two")
	_, ct, ok := c.AddContact(first.ID, quote.Contact{Name: "Ana"})
	require.True(t, ok)

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
	assert.Equal(t, "c", ct.ID)
}

func TestClientsAddContact(t *testing.T) {
	c := NewClients()
	cl, _ := c.Add("Agrotrac")

	updated, ct, ok := c.AddContact(cl.ID, quote.Contact{Name: " Ana ", Phone: "+56 9 1234", Email: "ana@x.cl"})
	require.True(t, ok)
	assert.Equal(t, "Ana", ct.Name)
	require.Len(t, updated.Contacts, 1)
	assert.Equal(t, ct, updated.Contacts[0])

	_, _, ok = c.AddContact(cl.ID, quote.Contact{Name: "  "})
	assert.False(t, ok)
	_, _, ok = c.AddContact("missing", quote.Contact{Name: "Bob"})
	assert.False(t, ok)
	_, _, ok = c.AddContact(quote.PendingID, quote.Contact{Name: "Bob"})
	assert.False(t, ok)

	got, _ := c.Get(cl.ID)
	assert.Len(t, got.Contacts, 1)
}

func TestClientsReturnCopies(t *testing.T) {
	c := NewClients()
	cl, _ := c.Add("Agrotrac")
	c.AddContact(cl.ID, quote.Contact{Name: "Ana"})

	got, _ := c.Get(cl.ID)
	got.Contacts[0].Name = "mutated"
	got.Name = "mutated"

	again, _ := c.Get(cl.ID)
	assert.Equal(t, "Agrotrac", again.Name)
	assert.Equal(t, "Ana", again.Contacts[0].Name)
}

func TestDeviceTypes(t *testing.T) {
	d := NewDeviceTypes(DefaultDeviceTypes...)
	assert.Equal(t, DefaultDeviceTypes, d.List())

	label, ok := d.Add("  Sensor de Puerta ")
	require.True(t, ok)
	assert.Equal(t, "Sensor de Puerta", label)

	_, ok = d.Add("GPS Tracker X1")
	assert.False(t, ok)
	_, ok = d.Add("   ")
	assert.False(t, ok)

	_, ok = d.Add("gps tracker x1")
	assert.True(t, ok, "matching is case-sensitive")
	assert.Len(t, d.List(), 5)
}
