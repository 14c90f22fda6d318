package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWrapChain(t *testing.T) {
	cause := stderrs.New("socket closed")
	err := fmt.Errorf("load session: %w", Wrap(cause, ErrorCodeUnavailable, "session store unavailable"))

	if CodeOf(err) != ErrorCodeUnavailable || HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("code = %d status = %d", CodeOf(err), HTTPStatus(err))
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	w := WireFrom(err)
	if w.Message != "session store unavailable" {
		t.Fatalf("wire message leaked cause: %q", w.Message)
	}
	if got := err.Error(); got != "load session: session store unavailable: socket closed" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := InvalidArgf("bad domain")
	withF := WithField(base, "domain")

	if e, _ := As(base); e.Field() != "" {
		t.Fatal("original mutated")
	}
	if WireFrom(withF).Field != "domain" {
		t.Fatalf("field = %q", WireFrom(withF).Field)
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign {
		t.Fatal("foreign errors should pass through")
	}
	if WireFrom(foreign).Code != ErrorCodeUnknown {
		t.Fatal("foreign errors are unknown on the wire")
	}
}

func TestErrorsIsSentinel(t *testing.T) {
	err := fmt.Errorf("%w: session 42", ErrNotFound)
	if !stderrs.Is(err, ErrNotFound) || !IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("sentinel lost: %v", err)
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatal("nil error should give zero wire")
	}
}
