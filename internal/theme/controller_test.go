package theme

import (
	"errors"
	"testing"

	"contactup/internal/db"
	"contactup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
	writes int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.writes++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func dark() bool  { return true }
func light() bool { return false }

func TestInitPrefersPersistedValue(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "light"

	c := NewController(store, dark, nil)
	assert.Equal(t, models.ThemeLight, c.Init())
	assert.Equal(t, models.ThemeLight, c.Current())
}

func TestInitFallsBackToSystemSignal(t *testing.T) {
	tests := []struct {
		name   string
		store  Store
		system func() bool
		want   models.Theme
	}{
		{name: "empty store dark system", store: newMemStore(), system: dark, want: models.ThemeDark},
		{name: "empty store light system", store: newMemStore(), system: light, want: models.ThemeLight},
		{name: "nil store", store: nil, system: dark, want: models.ThemeDark},
		{name: "nil signal", store: newMemStore(), system: nil, want: models.ThemeLight},
		{name: "read error", store: &memStore{getErr: errors.New("disk gone")}, system: dark, want: models.ThemeDark},
		{name: "garbage value", store: &memStore{values: map[string]string{PreferenceKey: "sepia"}}, system: light, want: models.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.store, tt.system, nil)
			assert.Equal(t, tt.want, c.Init())
		})
	}
}

func TestInitDoesNotPersist(t *testing.T) {
	store := newMemStore()
	c := NewController(store, dark, nil)
	c.Init()
	assert.Zero(t, store.writes)
}

func TestToggleTwiceRestoresAppliedAndPersisted(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "dark"

	c := NewController(store, light, nil)
	original := c.Init()

	assert.Equal(t, models.ThemeLight, c.Toggle())
	assert.Equal(t, "light", store.values[PreferenceKey])

	assert.Equal(t, original, c.Toggle())
	assert.Equal(t, "dark", store.values[PreferenceKey])
	assert.Equal(t, 2, store.writes)
}

func TestToggleAppliesEvenWhenPersistFails(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("read-only")

	c := NewController(store, light, nil)
	c.Init()
	assert.Equal(t, models.ThemeDark, c.Toggle())
	assert.Equal(t, models.ThemeDark, c.Current())
}

func TestControllerWithSQLiteSettings(t *testing.T) {
	conn, err := db.OpenContactupDB(t.TempDir())
	require.NoError(t, err)
	defer conn.Close()

	first := NewController(db.Settings{DB: conn}, light, nil)
	require.Equal(t, models.ThemeLight, first.Init())
	first.Toggle()

	second := NewController(db.Settings{DB: conn}, light, nil)
	assert.Equal(t, models.ThemeDark, second.Init(), "preference should survive a restart")
}
