package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "domain error", err: Invalid("op", "bad input"), want: EINVALID},
		{name: "wrapped domain error", err: fmt.Errorf("outer: %w", NotFound("op", "page", "x")), want: ENOTFOUND},
		{name: "plain error", err: errors.New("boom"), want: EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage_HidesInternalDetails(t *testing.T) {
	err := Internal(errors.New("connection refused"), "catalog.fetch", "failed to fetch catalog")

	msg := ErrorMessage(err)
	if msg != "An internal error occurred. Please try again later." {
		t.Errorf("internal details leaked: %q", msg)
	}

	if msg := ErrorMessage(Invalid("op", "width must be positive")); msg != "width must be positive" {
		t.Errorf("expected user-facing message, got %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("timeout")
	err := Internal(underlying, "catalog.fetch", "failed to fetch catalog")

	if !errors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestParseSortMode(t *testing.T) {
	for _, valid := range []string{"relevance", "price_asc", "price_desc", "top_rated"} {
		if _, err := ParseSortMode(valid); err != nil {
			t.Errorf("ParseSortMode(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseSortMode("cheapest"); ErrorCode(err) != EINVALID {
		t.Errorf("expected EINVALID for unknown mode, got %v", err)
	}
}
