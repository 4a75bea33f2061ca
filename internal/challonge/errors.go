// Package challonge is a typed client for the Challonge REST API (v1).
//
// The interesting part is not the HTTP plumbing but the wire format:
// every response nests the real fields one level under a singular key
// ("tournament", "match", ...), most values may be null even when the key
// is always present, scores come as "3-1,3-2" strings and the point
// configuration floats arrive as strings. The decoders in this package
// absorb all of that and hand back plain structs.
package challonge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cerr is a lightweight comparable error kind.
// Using constants of this type allows errors.Is to work as expected.
type cerr string

func (e cerr) Error() string { return string(e) }

var (
	// ErrTransport matches any network/connection failure from the HTTP client.
	ErrTransport = cerr("transport failure")
	// ErrStatus matches any non-2xx response (validation failures included).
	ErrStatus = cerr("non-success status")
	// ErrSyntax matches a response body that is not valid JSON at all.
	ErrSyntax = cerr("malformed json")
	// ErrDecode matches valid JSON that does not have the expected shape.
	ErrDecode = cerr("decode failure")
	// ErrValidation matches a structured validation rejection from the service.
	ErrValidation = cerr("validation rejected")
)

// TransportError wraps the error the HTTP client returned. Never retried
// here beyond the single reconnect attempt in the client.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string        { return "challonge: transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error        { return e.Err }
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// StatusError is a non-2xx response the service did not explain further.
// Body keeps the raw payload so the caller can inspect it.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("challonge: status %d: %s", e.Code, e.Body)
}
func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// ValidationError is a non-2xx response carrying the service's
// {"errors": [...]} shape. It still matches ErrStatus, so callers that only
// care about "the call failed" don't need a second branch.
type ValidationError struct {
	Code   int
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("challonge: validation (%d): %s", e.Code, strings.Join(e.Errors, "; "))
}
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == ErrStatus
}

// SyntaxError wraps the json unmarshalling error for an unparseable body.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string        { return "challonge: bad json: " + e.Err.Error() }
func (e *SyntaxError) Unwrap() error        { return e.Err }
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// DecodeError names the structural expectation that failed and echoes the
// offending value, which is the only way to debug against an undocumented
// schema that drifts.
type DecodeError struct {
	Desc  string
	Value any
}

func (e *DecodeError) Error() string {
	v, err := json.Marshal(e.Value)
	if err != nil {
		return fmt.Sprintf("challonge: decode: %s (%v)", e.Desc, e.Value)
	}
	return fmt.Sprintf("challonge: decode: %s (%s)", e.Desc, v)
}
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func decodeErr(desc string, value any) error {
	return &DecodeError{Desc: desc, Value: value}
}
