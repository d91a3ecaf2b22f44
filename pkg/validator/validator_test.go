package validator

import "testing"

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,numeric,max=20"`
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "abc", Phone: "12ab"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"email":    "email must be a valid email address",
		"password": "password must be at least 6 characters",
		"phone":    "phone must contain digits only",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(got), len(want), got)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&signupRequest{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	if got := NewValidator().FormatValidationErrors(nil); len(got) != 0 {
		t.Errorf("expected no errors, got %v", got)
	}
}
