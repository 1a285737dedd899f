// SPDX-License-Identifier: MIT

// Package builder turns raw station and connection records into a sealed
// network.Network.
//
// Pipeline:
//
//	coords, cr := builder.Coordinates(stationRecords, "1")      // zone filter
//	net, rep, err := builder.Build(coords, connectionRecords)  // admission
//
// Admission policy (strict and explicit):
//   - A connection record is admitted only if both endpoint names exist in the
//     coordinate mapping. Otherwise it is dropped and reported as
//     ErrUnresolvedStation (DropUnresolved, the default).
//   - WithUnresolvedPolicy(DefaultToOrigin) admits such records instead and creates
//     the missing stations without a coordinate (they render at the origin). The
//     two policies are never mixed inside one Build.
//   - Distance text must parse as a finite positive number; otherwise the record is
//     dropped as ErrMalformedRecord. Missing fields and self-connections are
//     malformed as well.
//   - Every admitted record becomes its own Connection; the same station pair on
//     several lines yields parallel connections, never an overwrite.
//
// Rejections never fail the build: they are collected in a Report so callers can
// log or display them. Build returns an error only when the options are unusable.
//
// Errors:
//
//	ErrMalformedRecord   – missing field, bad number, self-connection.
//	ErrUnresolvedStation – endpoint absent from the coordinate mapping.
package builder
