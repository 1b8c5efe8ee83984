package whatsyour

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", newError(KindNotFound, 404, nil, "resource not found"))

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound match")
	}
	if !errors.Is(err, ErrSDK) {
		t.Fatalf("expected every sdk error to match ErrSDK")
	}
	for _, other := range []error{ErrAuthentication, ErrValidation, ErrRateLimit, ErrDecode} {
		if errors.Is(err, other) {
			t.Fatalf("not found error unexpectedly matched %v", other)
		}
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := newError(KindSDK, 0, cause, "request failed")

	if got, want := err.Error(), "whatsyour: request failed: connection refused"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
}

func TestOutcomeFor(t *testing.T) {
	cases := map[string]error{
		outcomeOK:        nil,
		outcomeNotFound:  newError(KindNotFound, 404, nil, "x"),
		outcomeAuth:      newError(KindAuthentication, 401, nil, "x"),
		outcomeDecode:    newError(KindDecode, 200, nil, "x"),
		outcomeTransport: newError(KindSDK, 0, errors.New("eof"), "x"),
		outcomeHTTPError: newError(KindSDK, 500, nil, "x"),
	}
	for want, err := range cases {
		if got := outcomeFor(err); got != want {
			t.Errorf("outcomeFor(%v) = %s, want %s", err, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindNotFound.String() != "not_found" {
		t.Fatalf("unexpected %s", KindNotFound)
	}
	if Kind(99).String() != "unknown(99)" {
		t.Fatalf("unexpected %s", Kind(99))
	}
}
