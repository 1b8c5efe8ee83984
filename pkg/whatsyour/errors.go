package whatsyour

import (
	"errors"
	"fmt"
)

// Kind classifies SDK failures.
type Kind int

const (
	// KindSDK is the generic failure: transport errors and unexpected statuses.
	KindSDK Kind = iota
	// KindAuthentication covers a missing API key and HTTP 401.
	KindAuthentication
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindValidation is reserved; no current call produces it.
	KindValidation
	// KindRateLimit is reserved; no current call produces it.
	KindRateLimit
	// KindDecode means a successful response did not have the expected shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindSDK:
		return "sdk"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the single error type returned by the client.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("whatsyour: %s: %v", e.Message, e.Err)
	}
	return "whatsyour: " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the package sentinels by kind. Every *Error matches ErrSDK.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	switch t {
	case ErrSDK:
		return true
	case ErrAuthentication, ErrNotFound, ErrValidation, ErrRateLimit, ErrDecode:
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for use with errors.Is.
var (
	ErrSDK            = &Error{Kind: KindSDK, Message: "sdk error"}
	ErrAuthentication = &Error{Kind: KindAuthentication, Message: "authentication failed"}
	ErrNotFound       = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrValidation     = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrRateLimit      = &Error{Kind: KindRateLimit, Message: "rate limit exceeded"}
	ErrDecode         = &Error{Kind: KindDecode, Message: "unexpected response shape"}
)

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuthentication reports whether err is an authentication error.
func IsAuthentication(err error) bool { return errors.Is(err, ErrAuthentication) }

func newError(kind Kind, status int, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
		Err:        cause,
	}
}
