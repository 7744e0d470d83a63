package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("format", "unknown")

	if got := err.Error(); got != "validation: format: unknown" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "theme", Message: "required"},
		{Field: "format", Message: "unknown"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestErrLexiconUnavailable_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load wordnet: %w", ErrLexiconUnavailable)
	if !errors.Is(err, ErrLexiconUnavailable) {
		t.Fatal("wrapped ErrLexiconUnavailable not detected")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("adapter failure must not look like a lookup miss")
	}
}
