package contactform

import "context"

// State is the submission lifecycle state of a Form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// fallbackError is shown when the server response is unusable or the
// network call itself fails.
const fallbackError = "Failed to send message. Please try again."

// Form is the client-side form controller. It holds the editable field
// values, the per-field validation errors, and the submission state, and
// moves between states only through SetField and Submit.
//
// A Form is driven by a single UI event loop and is not safe for
// concurrent use.
type Form struct {
	submitter Submitter

	fields Fields
	errors map[string]Kind
	state  State
	status string
}

// NewForm creates an idle Form that submits through the given Submitter.
func NewForm(s Submitter) *Form {
	return &Form{
		submitter: s,
		errors:    make(map[string]Kind),
		state:     StateIdle,
	}
}

// SetField records an edit to one field. Editing clears that field's
// error immediately and returns the form to idle, so a visitor can
// correct and resubmit after a success or error outcome.
// Editing is ignored while a submission is in flight.
func (f *Form) SetField(name, value string) {
	if f.state == StateSubmitting {
		return
	}
	switch name {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return
	}
	delete(f.errors, name)
	f.state = StateIdle
	f.status = ""
}

// Submit runs client-side validation and, on pass, issues exactly one
// network call. Invalid input populates the field error map and stays
// idle without touching the network. Submit is a no-op while a
// submission is already in flight.
func (f *Form) Submit(ctx context.Context) {
	if f.state == StateSubmitting {
		return
	}

	if errs := Validate(f.fields); len(errs) > 0 {
		f.errors = errs
		f.state = StateIdle
		return
	}

	f.state = StateSubmitting
	f.status = ""

	resp, err := f.submitter.Submit(ctx, f.fields)
	if err != nil {
		// Fields are retained so the visitor can resubmit.
		f.state = StateError
		f.status = fallbackError
		return
	}

	if !resp.Success {
		f.state = StateError
		f.status = resp.Error
		if f.status == "" {
			f.status = fallbackError
		}
		return
	}

	f.state = StateSuccess
	f.status = resp.Message
	f.fields = Fields{}
	f.errors = make(map[string]Kind)
}

// State returns the current submission lifecycle state.
func (f *Form) State() State { return f.state }

// Fields returns the current field values.
func (f *Form) Fields() Fields { return f.fields }

// FieldError returns the validation failure recorded for a field, if any.
func (f *Form) FieldError(name string) (Kind, bool) {
	k, ok := f.errors[name]
	return k, ok
}

// StatusMessage returns the confirmation or error text from the last
// completed submission, empty while idle or submitting.
func (f *Form) StatusMessage() string { return f.status }
