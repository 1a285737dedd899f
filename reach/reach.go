// SPDX-License-Identifier: MIT

package reach

import (
	"sort"

	"github.com/katalvlaran/tubemap/network"
)

type queueItem struct {
	name   string
	stops  int
	parent string // empty for the start station
}

// walker encapsulates mutable walk state.
type walker struct {
	network *network.Network
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk explores n from start in increasing number of stops. Neighbours are
// taken from the incident index in connection ID order, so Order and Parent
// are deterministic. Parallel connections count as one stop.
//
// Errors: ErrNilNetwork, ErrStationNotFound, ErrOptionViolation, or the
// context error on cancellation.
func Walk(n *network.Network, start string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasStation(start) {
		return nil, ErrStationNotFound
	}

	size := n.StationCount()
	w := &walker{
		network: n,
		opts:    o,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &Result{
			Order:  make([]string, 0, size),
			Stops:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(name string, stops int, parent string) {
	w.visited[name] = true
	w.res.Stops[name] = stops
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, stops: stops, parent: parent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.name)

		next := item.stops + 1
		if w.opts.MaxStops > 0 && next > w.opts.MaxStops {
			continue
		}
		for _, c := range w.network.Incident(item.name) {
			if _, avoid := w.opts.AvoidLines[c.Line]; avoid {
				continue
			}
			if nbr := c.Other(item.name); !w.visited[nbr] {
				w.enqueue(nbr, next, item.name)
			}
		}
	}

	return nil
}

// Components partitions the stations of n into connected components. Each
// component is sorted by name; components are ordered by their first name.
// Isolated stations form singleton components.
func Components(n *network.Network) [][]string {
	if n == nil {
		return nil
	}
	seen := make(map[string]bool, n.StationCount())
	var out [][]string
	for _, name := range n.StationNames() {
		if seen[name] {
			continue
		}
		res, err := Walk(n, name)
		if err != nil {
			continue
		}
		comp := append([]string(nil), res.Order...)
		for _, s := range comp {
			seen[s] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}
