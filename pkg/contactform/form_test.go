package contactform

import (
	"context"
	"errors"
	"testing"
)

// stubSubmitter is a func-field stub for the Submitter interface.
type stubSubmitter struct {
	submitFunc func(ctx context.Context, f Fields) (*SubmitResponse, error)
	calls      int
}

func (s *stubSubmitter) Submit(ctx context.Context, f Fields) (*SubmitResponse, error) {
	s.calls++
	if s.submitFunc != nil {
		return s.submitFunc(ctx, f)
	}
	return &SubmitResponse{Success: true, Message: "ok"}, nil
}

func fillValid(f *Form) {
	f.SetField(FieldName, "Jo")
	f.SetField(FieldEmail, "jo@example.com")
	f.SetField(FieldMessage, "Hello there, checking in.")
}

func TestForm_StartsIdle(t *testing.T) {
	f := NewForm(&stubSubmitter{})
	if f.State() != StateIdle {
		t.Errorf("expected idle, got %s", f.State())
	}
}

// TestForm_InvalidSubmit_StaysIdle verifies that an invalid submit
// populates the error map and issues no network call.
func TestForm_InvalidSubmit_StaysIdle(t *testing.T) {
	stub := &stubSubmitter{}
	f := NewForm(stub)
	f.SetField(FieldName, "J")
	f.SetField(FieldEmail, "nope")
	f.SetField(FieldMessage, "Hi")

	f.Submit(context.Background())

	if f.State() != StateIdle {
		t.Errorf("expected idle after invalid submit, got %s", f.State())
	}
	if stub.calls != 0 {
		t.Errorf("expected no network call, got %d", stub.calls)
	}
	for _, field := range []string{FieldName, FieldEmail, FieldMessage} {
		if _, ok := f.FieldError(field); !ok {
			t.Errorf("expected field error for %s", field)
		}
	}
}

// TestForm_SuccessfulSubmit verifies success clears fields and records
// the server confirmation.
func TestForm_SuccessfulSubmit(t *testing.T) {
	stub := &stubSubmitter{
		submitFunc: func(ctx context.Context, fields Fields) (*SubmitResponse, error) {
			return &SubmitResponse{Success: true, Message: "Thanks!"}, nil
		},
	}
	f := NewForm(stub)
	fillValid(f)

	f.Submit(context.Background())

	if f.State() != StateSuccess {
		t.Fatalf("expected success, got %s", f.State())
	}
	if f.StatusMessage() != "Thanks!" {
		t.Errorf("expected confirmation message, got %q", f.StatusMessage())
	}
	if f.Fields() != (Fields{}) {
		t.Errorf("expected fields cleared on success, got %+v", f.Fields())
	}
	if stub.calls != 1 {
		t.Errorf("expected exactly one network call, got %d", stub.calls)
	}
}

// TestForm_ServerFailure_RetainsFields verifies the error state keeps
// field values so the visitor can correct and resubmit.
func TestForm_ServerFailure_RetainsFields(t *testing.T) {
	stub := &stubSubmitter{
		submitFunc: func(ctx context.Context, fields Fields) (*SubmitResponse, error) {
			return &SubmitResponse{Success: false, Error: "Name must be at least 2 characters"}, nil
		},
	}
	f := NewForm(stub)
	fillValid(f)

	f.Submit(context.Background())

	if f.State() != StateError {
		t.Fatalf("expected error state, got %s", f.State())
	}
	if f.StatusMessage() != "Name must be at least 2 characters" {
		t.Errorf("expected server error surfaced, got %q", f.StatusMessage())
	}
	if f.Fields().Name != "Jo" {
		t.Errorf("expected fields retained, got %+v", f.Fields())
	}
}

// TestForm_NetworkFailure_FallbackMessage verifies a transport error
// produces the generic fallback message.
func TestForm_NetworkFailure_FallbackMessage(t *testing.T) {
	stub := &stubSubmitter{
		submitFunc: func(ctx context.Context, fields Fields) (*SubmitResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	f := NewForm(stub)
	fillValid(f)

	f.Submit(context.Background())

	if f.State() != StateError {
		t.Fatalf("expected error state, got %s", f.State())
	}
	if f.StatusMessage() != fallbackError {
		t.Errorf("expected fallback message, got %q", f.StatusMessage())
	}
}

// TestForm_EmptyServerError_FallbackMessage verifies a failure envelope
// without an error string still shows something useful.
func TestForm_EmptyServerError_FallbackMessage(t *testing.T) {
	stub := &stubSubmitter{
		submitFunc: func(ctx context.Context, fields Fields) (*SubmitResponse, error) {
			return &SubmitResponse{Success: false}, nil
		},
	}
	f := NewForm(stub)
	fillValid(f)

	f.Submit(context.Background())

	if f.StatusMessage() != fallbackError {
		t.Errorf("expected fallback message, got %q", f.StatusMessage())
	}
}

// TestForm_EditReturnsToIdle verifies editing any field after an outcome
// returns to idle and clears that field's error.
func TestForm_EditReturnsToIdle(t *testing.T) {
	stub := &stubSubmitter{
		submitFunc: func(ctx context.Context, fields Fields) (*SubmitResponse, error) {
			return &SubmitResponse{Success: false, Error: "nope"}, nil
		},
	}
	f := NewForm(stub)
	fillValid(f)
	f.Submit(context.Background())
	if f.State() != StateError {
		t.Fatalf("expected error state, got %s", f.State())
	}

	f.SetField(FieldMessage, "A different message entirely.")
	if f.State() != StateIdle {
		t.Errorf("expected idle after edit, got %s", f.State())
	}
	if f.StatusMessage() != "" {
		t.Errorf("expected status cleared after edit, got %q", f.StatusMessage())
	}
}

func TestForm_EditClearsThatFieldError(t *testing.T) {
	f := NewForm(&stubSubmitter{})
	f.SetField(FieldName, "J")
	f.SetField(FieldEmail, "nope")
	f.SetField(FieldMessage, "Hi")
	f.Submit(context.Background())

	f.SetField(FieldName, "Joanna")
	if _, ok := f.FieldError(FieldName); ok {
		t.Error("expected name error cleared on edit")
	}
	if _, ok := f.FieldError(FieldEmail); !ok {
		t.Error("expected email error untouched by a name edit")
	}
}

func TestForm_UnknownFieldIgnored(t *testing.T) {
	f := NewForm(&stubSubmitter{})
	f.SetField("favorite_color", "teal")
	if f.Fields() != (Fields{}) {
		t.Errorf("expected unknown field ignored, got %+v", f.Fields())
	}
}
