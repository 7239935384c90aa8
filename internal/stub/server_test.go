package stub

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactup/internal/api"
	"contactup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, seed ...models.Contact) (*api.Client, *Store) {
	t.Helper()
	store := NewStore(seed...)
	srv := httptest.NewServer(NewHandler(store, nil))
	t.Cleanup(srv.Close)
	return api.New(srv.URL), store
}

func TestRoundTripThroughClient(t *testing.T) {
	client, _ := newServer(t)
	ctx := context.Background()

	list, err := client.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	exists, err := client.CheckContact(ctx, "123456789", "+1")
	require.NoError(t, err)
	assert.False(t, exists)

	alice := models.Contact{Name: "Alice", Phone: "123456789", CountryCode: "+1"}
	require.NoError(t, client.Upload(ctx, alice))

	exists, err = client.CheckContact(ctx, "123456789", "+1")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same phone under another country code is a different contact.
	exists, err = client.CheckContact(ctx, "123456789", "+44")
	require.NoError(t, err)
	assert.False(t, exists)

	list, err = client.ListContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Contact{alice}, list)
}

func TestUploadDuplicateRejected(t *testing.T) {
	alice := models.Contact{Name: "Alice", Phone: "123456789", CountryCode: "+1"}
	client, store := newServer(t, alice)

	err := client.Upload(context.Background(), models.Contact{Name: "Alice Again", Phone: "123456789", CountryCode: "+1"})
	var se *api.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.StatusCode)
	assert.Equal(t, "Contact already exists", se.Message)
	assert.Len(t, store.List(), 1)
}

func TestUploadValidation(t *testing.T) {
	client, store := newServer(t)

	for _, c := range []models.Contact{
		{Name: "", Phone: "123456789", CountryCode: "+1"},
		{Name: "Bob", Phone: "12345", CountryCode: "+1"},
		{Name: "Bob", Phone: "123456789", CountryCode: ""},
	} {
		err := client.Upload(context.Background(), c)
		var se *api.ServerError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadRequest, se.StatusCode)
		assert.NotEmpty(t, se.Message)
	}
	assert.Empty(t, store.List())
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(NewHandler(NewStore(), nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/check-contact", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	for i, name := range []string{"c", "a", "b"} {
		require.True(t, store.Insert(models.Contact{Name: name, Phone: fmt.Sprintf("12345678%d", i), CountryCode: "+1"}))
	}
	got := store.List()
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "b", got[2].Name)
}
