package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindMatching(t *testing.T) {
	base := E(KindUnknownFood, "catalog.Get", fmt.Errorf("id %q", "f-404"))
	wrapped := fmt.Errorf("aggregate day: %w", base)

	if !errors.Is(wrapped, ErrUnknownFood) {
		t.Error("wrapped unknown_food error should match ErrUnknownFood")
	}
	if errors.Is(wrapped, ErrInvalidTarget) {
		t.Error("unknown_food error must not match ErrInvalidTarget")
	}
	if got := KindOf(wrapped); got != KindUnknownFood {
		t.Errorf("KindOf = %q, want %q", got, KindUnknownFood)
	}
}

func TestKindOf_ForeignAndNil(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %q, want %q", got, KindInternal)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
}

func TestWithCorrelation(t *testing.T) {
	id := "4f5c0a47-bd3e-4c32-8b0a-1f2d3e4a5b6c"

	t.Run("stamps typed error", func(t *testing.T) {
		err := WithCorrelation(E(KindInvalidTarget, "summary.Daily", nil), id)
		if got := CorrelationIDOf(err); got != id {
			t.Errorf("CorrelationIDOf = %q, want %q", got, id)
		}
		if !errors.Is(err, ErrInvalidTarget) {
			t.Error("stamping must not change the kind")
		}
	})

	t.Run("wraps foreign error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := WithCorrelation(cause, id)
		if got := CorrelationIDOf(err); got != id {
			t.Errorf("CorrelationIDOf = %q, want %q", got, id)
		}
		if !errors.Is(err, cause) {
			t.Error("original cause must remain reachable via errors.Is")
		}
		if got := KindOf(err); got != KindInternal {
			t.Errorf("foreign error wrapped as %q, want %q", got, KindInternal)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := WithCorrelation(nil, id); err != nil {
			t.Errorf("WithCorrelation(nil) = %v, want nil", err)
		}
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidPortion, 400},
		{KindInvalidPortionIndex, 400},
		{KindInvalidTarget, 400},
		{KindValidation, 400},
		{KindUnauthorized, 401},
		{KindUnknownFood, 404},
		{KindNotFound, 404},
		{KindConflict, 409},
		{KindSyncUnavailable, 503},
		{KindStorage, 500},
		{KindInternal, 500},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.kind); got != tt.want {
			t.Errorf("HTTPStatus(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
