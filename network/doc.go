// SPDX-License-Identifier: MIT

// Package network provides the in-memory transit Network: named Stations,
// undirected line-tagged Connections and a precomputed Station → Connection index.
//
// The Network N = (S,C) is a multigraph:
//
//   - Stations are identified by exact name (case and whitespace sensitive).
//   - A Station may carry a Coordinate; stations without one report the origin.
//   - Connections are undirected, carry a positive Distance (km) and a Line name.
//   - Several Connections may join the same Station pair (one per line, or even
//     several per line); they are never merged or overwritten.
//   - Connection IDs ("c1", "c2", …) follow admission order and are stable.
//
// Lifecycle:
//
//	n := network.New()
//	n.AddStation("Green Park", network.WithCoordinate(network.Coordinate{X: -0.1428, Y: 51.5067}))
//	n.AddStation("Piccadilly Circus")
//	n.AddConnection("Green Park", "Piccadilly Circus", 0.5, "Piccadilly")
//	n.Seal() // read-only from here on; further mutation returns ErrSealed
//
// Query methods:
//
//	Station(name) (Station, bool)           // O(1), copy
//	Stations() []Station                    // sorted by name
//	Connections() []*Connection             // admission (ID) order
//	Incident(name) []*Connection            // O(1) index lookup, ID order
//	ConnectionsBetween(a, b) []*Connection  // parallel lines between a pair
//	Lines() / LinesAt(name) / IsInterchange(name)
//	MatchLines(names...) []string           // user-typed names to stored line names
//	Position(name) (Coordinate, bool)       // origin fallback for missing coordinates
//
// All methods are safe for concurrent use; a sealed Network never changes, so
// readers never contend with writers.
//
// Errors:
//
//	ErrEmptyStationName  – zero-length station name.
//	ErrStationNotFound   – a connection endpoint is not a known station.
//	ErrSelfConnection    – from == to.
//	ErrBadDistance       – distance is NaN, infinite or not positive.
//	ErrEmptyLine         – zero-length line name.
//	ErrSealed            – mutation after Seal.
package network
