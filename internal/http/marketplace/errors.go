package marketplace

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorKind classifies a failed marketplace operation. Kinds are
// transport-agnostic: local precondition checks and remote rejections
// produce the same kinds.
type ErrorKind string

const (
	// KindUnauthorized: the actor lacks permission for the requested
	// transition. Not retryable.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindForbidden: the actor's relationship to the entity disallows the
	// action irrespective of state. Not retryable.
	KindForbidden ErrorKind = "forbidden"
	// KindConflict: entity state changed between read and write.
	// Recoverable by refetch and retry.
	KindConflict ErrorKind = "conflict"
	// KindNotFound: the referenced entity no longer exists.
	KindNotFound ErrorKind = "not_found"
	// KindNetworkFailure: no authoritative response was received.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindUnknown: an authoritative response that fits no other kind,
	// e.g. a server-side 500.
	KindUnknown ErrorKind = "unknown"
)

// APIError is the error every client call and service precondition check
// returns on failure. Detail carries the server's human-readable message
// when one was received.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("marketplace: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("marketplace: %s", e.Kind)
}

// Retryable reports whether retry-after-refetch can recover the failure.
func (e *APIError) Retryable() bool {
	return e.Kind == KindConflict || e.Kind == KindNetworkFailure
}

func newError(kind ErrorKind, detail string) *APIError {
	return &APIError{Kind: kind, Detail: detail}
}

func kindFromStatus(code int) ErrorKind {
	switch code {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusBadRequest, http.StatusConflict:
		// The marketplace signals lost races (group filled, duplicate
		// conversation, already a member) as 400s.
		return KindConflict
	case http.StatusNotFound:
		return KindNotFound
	}
	return KindUnknown
}

// KindOf extracts the kind from any error returned by this package,
// unwrapping as needed. Errors from elsewhere report KindUnknown.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsForbidden(err error) bool { return KindOf(err) == KindForbidden }
func IsConflict(err error) bool { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
func IsNetworkFailure(err error) bool { return KindOf(err) == KindNetworkFailure }
