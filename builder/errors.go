// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Per-record context is attached with %w in Rejection.Err.

package builder

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord indicates a record with a missing field, an unparsable or
// non-positive number, or identical endpoints.
// Usage: if errors.Is(rej.Err, ErrMalformedRecord) { /* fix source row */ }.
var ErrMalformedRecord = errors.New("builder: malformed record")

// ErrUnresolvedStation indicates a connection endpoint absent from the coordinate mapping.
// Usage: if errors.Is(rej.Err, ErrUnresolvedStation) { /* station outside the zone */ }.
var ErrUnresolvedStation = errors.New("builder: unresolved station")

// ErrUnknownPolicy indicates an UnresolvedPolicy value outside the declared set.
var ErrUnknownPolicy = errors.New("builder: unknown unresolved-station policy")

// malformedf wraps ErrMalformedRecord with a formatted reason.
func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

// unresolvedf wraps ErrUnresolvedStation with the missing names.
func unresolvedf(names ...string) error {
	return fmt.Errorf("%w: %q", ErrUnresolvedStation, names)
}
