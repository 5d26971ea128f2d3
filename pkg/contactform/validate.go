// Package contactform implements the contact form shared between the
// website client and the API server: the field validation rules, the
// submission HTTP client, and the client-side form controller.
//
// The validation rules here are the single source of truth. The server
// runs them as the authoritative gate before persistence; the client runs
// the same rules before submitting, purely for instant feedback.
package contactform

import (
	"regexp"
	"strings"
)

// Field names of the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Kind identifies a validation failure.
type Kind string

const (
	KindNameTooShort    Kind = "name_too_short"
	KindInvalidEmail    Kind = "invalid_email"
	KindMessageTooShort Kind = "message_too_short"
)

// Message returns the human-readable message shown to the visitor for a
// validation failure.
func (k Kind) Message() string {
	switch k {
	case KindNameTooShort:
		return "Name must be at least 2 characters"
	case KindInvalidEmail:
		return "Please provide a valid email address"
	case KindMessageTooShort:
		return "Message must be at least 10 characters"
	default:
		return "Invalid input"
	}
}

// emailRe is deliberately permissive: one or more non-whitespace non-@
// characters, an @, a domain part containing at least one dot. Not RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fields is a candidate contact message as typed by the visitor, before
// any normalization.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks every field rule independently and returns a map of
// field name to failure kind. An empty map means the candidate is valid.
// Fields are trimmed before checking; subject never fails.
//
// This is the client behavior: all violations are reported at once so the
// whole form can be marked up in a single pass.
func Validate(f Fields) map[string]Kind {
	errs := make(map[string]Kind)
	if len([]rune(strings.TrimSpace(f.Name))) < 2 {
		errs[FieldName] = KindNameTooShort
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		errs[FieldEmail] = KindInvalidEmail
	}
	if len([]rune(strings.TrimSpace(f.Message))) < 10 {
		errs[FieldMessage] = KindMessageTooShort
	}
	return errs
}

// First checks the rules in field order name → email → message and returns
// the first failure. ok is false when the candidate is valid.
//
// This is the server behavior: the endpoint responds with a single
// field-specific error per request.
func First(f Fields) (kind Kind, field string, ok bool) {
	errs := Validate(f)
	for _, name := range []string{FieldName, FieldEmail, FieldMessage} {
		if k, found := errs[name]; found {
			return k, name, true
		}
	}
	return "", "", false
}
