package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{E(KindInvalidInput, "bad"), http.StatusBadRequest},
		{E(KindNotFound, "missing"), http.StatusNotFound},
		{E(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{E(KindUnknown, "?"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", E(KindNotFound, "missing")), http.StatusNotFound},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("ctx: %w", EK(KindNotFound, " error.carousel.session_not_found ", "no session"))
	if got := LocalizationKey(err); got != "error.carousel.session_not_found" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(stderrors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q", got)
	}
}
