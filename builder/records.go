// SPDX-License-Identifier: MIT
//
// records.go: raw input records and the rejection Report.

package builder

import (
	"errors"
	"fmt"
)

// StationRecord is one row of the coordinate table, fields as text.
type StationRecord struct {
	Name string
	Zone string
	X    string
	Y    string
}

// ConnectionRecord is one row of the connection table, fields as text.
type ConnectionRecord struct {
	From     string
	To       string
	Distance string
	Line     string
}

// String renders the record the way it appears in rejection logs.
func (r ConnectionRecord) String() string {
	return fmt.Sprintf("%q -> %q (%s km, %q)", r.From, r.To, r.Distance, r.Line)
}

// RejectKind classifies a dropped record.
type RejectKind int

const (
	// KindMalformed marks records rejected with ErrMalformedRecord.
	KindMalformed RejectKind = iota
	// KindUnresolved marks records rejected with ErrUnresolvedStation.
	KindUnresolved
)

// String returns the kind name.
func (k RejectKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("RejectKind(%d)", int(k))
	}
}

// Rejection describes one dropped record.
type Rejection struct {
	// Index is the zero-based position of the record in the input slice.
	Index int
	Kind  RejectKind
	Err   error
}

// Report summarises one Coordinates or Build pass.
type Report struct {
	// Admitted counts records that made it into the output.
	Admitted int

	// Filtered counts station records skipped by the zone filter (not errors).
	Filtered int

	// Defaulted lists stations created without a coordinate under DefaultToOrigin, sorted.
	Defaulted []string

	// Rejected lists dropped records in input order.
	Rejected []Rejection
}

// Count returns how many rejections have the given kind.
func (r *Report) Count(kind RejectKind) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, rej := range r.Rejected {
		if rej.Kind == kind {
			n++
		}
	}

	return n
}

// reject appends a rejection, deriving the kind from the wrapped sentinel.
func (r *Report) reject(index int, err error) {
	kind := KindMalformed
	if errors.Is(err, ErrUnresolvedStation) {
		kind = KindUnresolved
	}
	r.Rejected = append(r.Rejected, Rejection{Index: index, Kind: kind, Err: err})
}
