// Package submission validates contact form input and names the submission states.
package submission

import (
	"errors"
	"regexp"
	"strings"

	"contactup/internal/api"
	"contactup/internal/models"
)

// User-facing outcome texts.
const (
	MsgMissingFields  = "Please fill in all fields"
	MsgInvalidPhone   = "Phone number must be exactly 9 digits (without country code)"
	MsgDuplicate      = "This contact already exists in the system"
	MsgAdded          = "Contact added successfully!"
	MsgUploadRejected = "Failed to add contact"
	MsgGenericFailure = "Failed to add contact. Please try again."
)

var phoneRE = regexp.MustCompile(`^\d{9}$`)

// State is where a submission currently is.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCheckingExistence
	StateSubmitting
	StateDoneSuccess
	StateDoneError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateCheckingExistence:
		return "checking existence"
	case StateSubmitting:
		return "submitting"
	case StateDoneSuccess:
		return "done (success)"
	case StateDoneError:
		return "done (error)"
	}
	return "unknown"
}

// InFlight reports whether a network call is outstanding in this state.
func (s State) InFlight() bool {
	return s == StateCheckingExistence || s == StateSubmitting
}

type Field int

const (
	FieldName Field = iota
	FieldCountryCode
	FieldPhone
)

// ValidationError is a client-side rejection. No network call follows one.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate trims the raw form values and checks them. Empty fields are reported
// before the phone format.
func Validate(name, countryCode, phone string) (models.Contact, error) {
	c := models.Contact{
		Name:        strings.TrimSpace(name),
		CountryCode: strings.TrimSpace(countryCode),
		Phone:       strings.TrimSpace(phone),
	}

	switch {
	case c.Name == "":
		return models.Contact{}, &ValidationError{Field: FieldName, Message: MsgMissingFields}
	case c.CountryCode == "":
		return models.Contact{}, &ValidationError{Field: FieldCountryCode, Message: MsgMissingFields}
	case c.Phone == "":
		return models.Contact{}, &ValidationError{Field: FieldPhone, Message: MsgMissingFields}
	}

	if !phoneRE.MatchString(c.Phone) {
		return models.Contact{}, &ValidationError{Field: FieldPhone, Message: MsgInvalidPhone}
	}
	return c, nil
}

// IsPhoneFormat reports whether err is the phone-format rejection, which moves focus to the phone field.
func IsPhoneFormat(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Message == MsgInvalidPhone
}

// UploadFailureMessage picks the text shown when the upload step fails.
func UploadFailureMessage(err error) string {
	var se *api.ServerError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return MsgUploadRejected
	}
	return MsgGenericFailure
}

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
