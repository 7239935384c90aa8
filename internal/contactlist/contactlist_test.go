package contactlist

import (
	"fmt"
	"strings"
	"testing"

	"contactup/internal/models"
	"contactup/internal/styles"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList() Model {
	return New(styles.For(models.ThemeLight))
}

func TestEmptyCollectionRendersOnePlaceholder(t *testing.T) {
	m := newList()
	m.SetContacts([]models.Contact{})

	assert.Equal(t, 0, m.Count())
	assert.Empty(t, m.Rows())

	msg, ok := m.Placeholder()
	require.True(t, ok)
	assert.Equal(t, EmptyMessage, msg)
	assert.Equal(t, 1, strings.Count(m.View(), EmptyMessage))
	assert.Contains(t, m.Header(), "0")
}

func TestRowsNumberedInOrder(t *testing.T) {
	contacts := []models.Contact{
		{Name: "Zed", Phone: "333333333", CountryCode: "+34"},
		{Name: "Alice", Phone: "111111111", CountryCode: "+1"},
		{Name: "Bob", Phone: "222222222", CountryCode: "+44"},
	}

	m := newList()
	m.SetContacts(contacts)

	assert.Equal(t, 3, m.Count())
	want := []table.Row{
		{"1", "Zed", "+34333333333"},
		{"2", "Alice", "+1111111111"},
		{"3", "Bob", "+44222222222"},
	}
	assert.Equal(t, want, m.Rows())

	_, ok := m.Placeholder()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), EmptyMessage)
	assert.Contains(t, m.Header(), "3")
}

func TestSetContactsReplacesPreviousBody(t *testing.T) {
	m := newList()
	m.SetContacts([]models.Contact{{Name: "Old", Phone: "999999999", CountryCode: "+1"}})
	m.SetContacts([]models.Contact{
		{Name: "New1", Phone: "111111111", CountryCode: "+1"},
		{Name: "New2", Phone: "222222222", CountryCode: "+1"},
	})

	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "New1", m.Rows()[0][1])

	m.SetContacts(nil)
	assert.Equal(t, 0, m.Count())
	_, ok := m.Placeholder()
	assert.True(t, ok)
}

func TestSetContactsCopiesInput(t *testing.T) {
	in := []models.Contact{{Name: "Alice", Phone: "111111111", CountryCode: "+1"}}
	m := newList()
	m.SetContacts(in)
	in[0].Name = "Mallory"
	assert.Equal(t, "Alice", m.Contacts()[0].Name)
}

func TestManyRows(t *testing.T) {
	var contacts []models.Contact
	for i := 0; i < 25; i++ {
		contacts = append(contacts, models.Contact{Name: fmt.Sprintf("c%d", i), Phone: "123456789", CountryCode: "+1"})
	}
	m := newList()
	m.SetSize(80, 10)
	m.SetContacts(contacts)

	rows := m.Rows()
	require.Len(t, rows, 25)
	for i, r := range rows {
		assert.Equal(t, fmt.Sprint(i+1), r[0])
	}
}
