// SPDX-License-Identifier: MIT

// Package reach provides options, results and errors for stop-count
// (breadth-first) traversal of a network.Network.
package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("reach: network is nil")

	// ErrStationNotFound is returned when the start station is absent.
	ErrStationNotFound = errors.New("reach: start station not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNotReached is returned by PathTo for a station the walk never reached.
	ErrNotReached = errors.New("reach: station not reached")
)

// Option configures Walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters for a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxStops, if > 0, stops exploring beyond this many stops from the start.
	// 0 means no limit.
	MaxStops int

	// AvoidLines marks lines whose connections are not travelled.
	AvoidLines map[string]struct{}

	err error
}

// DefaultOptions returns background context, no stop limit, no avoided lines.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStops limits the walk to stations at most n stops away.
//
//	n > 0: limit to n stops
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithAvoidLines skips connections on the named lines. Names must match exactly.
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

// Result holds the outcome of a walk:
//   - Order: stations in visit sequence.
//   - Stops: station → number of connections travelled from the start.
//   - Parent: station → predecessor in the walk tree.
type Result struct {
	Order  []string
	Stops  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-stops path from the start station to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Stops[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
