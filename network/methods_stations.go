// SPDX-License-Identifier: MIT
//
// File: methods_stations.go
// Role: Station lifecycle and queries: AddStation/HasStation/Station/Stations/StationCount/Position.
// Determinism:
//   - Stations() returns stations sorted by name asc.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package network

import (
	"fmt"
	"sort"
)

// StationOption configures a station when it is added.
type StationOption func(*Station)

// WithCoordinate attaches a known position to the station.
func WithCoordinate(c Coordinate) StationOption {
	return func(s *Station) {
		s.Coord = c
		s.HasCoord = true
	}
}

// AddStation inserts a station named name.
//
// Adding a name that already exists is a no-op: the first registration wins and
// its coordinate is kept.
//
// Errors: ErrEmptyStationName, ErrSealed.
// Complexity: O(1) amortized.
func (n *Network) AddStation(name string, opts ...StationOption) error {
	if name == "" {
		return ErrEmptyStationName
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sealed {
		return fmt.Errorf("%w: add station %q", ErrSealed, name)
	}
	if _, exists := n.stations[name]; exists {
		return nil
	}

	s := &Station{Name: name}
	for _, opt := range opts {
		opt(s)
	}
	n.stations[name] = s

	return nil
}

// HasStation reports whether a station with this exact name exists.
// Complexity: O(1).
func (n *Network) HasStation(name string) bool {
	if name == "" {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.stations[name]

	return ok
}

// Station returns a copy of the named station.
// Complexity: O(1).
func (n *Network) Station(name string) (Station, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s, ok := n.stations[name]
	if !ok {
		return Station{}, false
	}

	return *s, true
}

// Stations returns copies of all stations sorted by name asc.
// Complexity: O(S log S).
func (n *Network) Stations() []Station {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Station, 0, len(n.stations))
	for _, s := range n.stations {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// StationNames returns all station names sorted asc.
func (n *Network) StationNames() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.stations))
	for name := range n.stations {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// StationCount returns the number of stations.
// Complexity: O(1).
func (n *Network) StationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.stations)
}

// Position returns the coordinate used to place the station on a map.
//
// Stations without a known coordinate report Origin; the bool result is false in
// that case and also when the station does not exist.
func (n *Network) Position(name string) (Coordinate, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s, ok := n.stations[name]
	if !ok || !s.HasCoord {
		return Origin, false
	}

	return s.Coord, true
}
