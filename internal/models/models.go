package models

import "fmt"

// Contact is a single entry in the remote contact collection.
// Duplicate detection keys on (Phone, CountryCode).
type Contact struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

// FullPhone is the phone number as displayed in the list, country code first.
func (c Contact) FullPhone() string {
	return c.CountryCode + c.Phone
}

// Theme is the visual mode of the client.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme. Anything that is not dark flips to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Alert is a transient notification. At most one is visible at a time.
type Alert struct {
	ID   uint64
	Text string
	Kind AlertKind
}
