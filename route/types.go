// SPDX-License-Identifier: MIT

// Package route defines the Route result, the UnknownStation error and the
// functional options of the least-distance route finder.
//
// Options:
//
//	– WithMaxDistance(km): stations farther than km are treated as unreachable.
//	– WithAvoidLines(lines...): connections on these lines are impassable.
//
// Errors (sentinel):
//
//	– ErrNilNetwork      if the network pointer is nil.
//	– ErrUnknownStation  if a queried station is not in the network; the concrete
//	                     value is *UnknownStationError listing every missing name.
//	– ErrBadMaxDistance  (panic) if WithMaxDistance receives a negative or NaN value.
package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the route finder.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("route: network is nil")

	// ErrUnknownStation indicates that a queried station is not part of the network.
	ErrUnknownStation = errors.New("route: unknown station")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("route: MaxDistance must be non-negative")
)

// UnknownStationError names every queried station absent from the network.
// errors.Is(err, ErrUnknownStation) holds for it.
type UnknownStationError struct {
	Names []string
}

func (e *UnknownStationError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return fmt.Sprintf("%s: %s", ErrUnknownStation.Error(), strings.Join(quoted, ", "))
}

// Is reports ErrUnknownStation as a match.
func (e *UnknownStationError) Is(target error) bool { return target == ErrUnknownStation }

// Unreachable reports whether a returned distance is the no-path sentinel (+Inf).
func Unreachable(d float64) bool { return math.IsInf(d, 1) }

// Hop is one step of a Route, travelled on a single Connection.
type Hop struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Distance     float64 `json:"distance"`
	Line         string  `json:"line"`
	ConnectionID string  `json:"connection"`
}

// Route is an ordered station sequence from start to end.
//
// Stations has len(Hops)+1 entries. Distance is the sum of hop distances; for
// a start == end query it is 0 and Hops is empty.
type Route struct {
	Stations []string `json:"stations"`
	Hops     []Hop    `json:"hops"`
	Distance float64  `json:"distance"`
}

// Start returns the first station.
func (r *Route) Start() string { return r.Stations[0] }

// End returns the last station.
func (r *Route) End() string { return r.Stations[len(r.Stations)-1] }

// Lines returns the lines travelled, in order, without consecutive repeats.
// A line left and later re-entered appears twice.
func (r *Route) Lines() []string {
	var out []string
	for _, h := range r.Hops {
		if len(out) == 0 || out[len(out)-1] != h.Line {
			out = append(out, h.Line)
		}
	}

	return out
}

// Options configures a route query.
//
// MaxDistance – cap on explored distance; default +Inf (no cap).
// AvoidLines  – set of line names whose connections are skipped.
type Options struct {
	MaxDistance float64
	AvoidLines  map[string]struct{}
}

// Option represents a functional option for route queries.
type Option func(*Options)

// WithMaxDistance caps the explored distance in kilometres. Panics on a negative or NaN cap.
func WithMaxDistance(km float64) Option {
	if km < 0 || math.IsNaN(km) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = km }
}

// WithAvoidLines marks lines as impassable for this query. Names must match exactly.
func WithAvoidLines(lines ...string) Option {
	return func(o *Options) {
		if o.AvoidLines == nil {
			o.AvoidLines = make(map[string]struct{}, len(lines))
		}
		for _, l := range lines {
			o.AvoidLines[l] = struct{}{}
		}
	}
}

// DefaultOptions returns the defaults: no cap, no avoided lines.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
