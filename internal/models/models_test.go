package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeLight.Toggle().Toggle())
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	_, err = ParseTheme("solarized")
	assert.Error(t, err)

	_, err = ParseTheme("")
	assert.Error(t, err)
}

func TestContactFullPhone(t *testing.T) {
	c := Contact{Name: "Alice", Phone: "123456789", CountryCode: "+1"}
	assert.Equal(t, "+1123456789", c.FullPhone())
}
