// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: FindBestRoute and Distances over a network.Network (lazy-decrease-key Dijkstra).
// Determinism:
//   - The heap orders entries by (distance, station name).
//   - A station's distance is replaced only by a strictly smaller one, and incident
//     connections are scanned in ID order. The predecessor of every station is
//     therefore the first settled station, in (distance, name) order, that offers
//     the minimum; among equal parallel connections the lowest ID wins.
// Concurrency:
//   - Read-only on the Network; every call owns its state, so concurrent calls are safe.

package route

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/tubemap/network"
)

// FindBestRoute computes the least-distance route from start to end.
//
// Returns:
//   - (*Route, distance, nil) when a route exists; start == end yields a
//     single-station route with distance 0.
//   - (nil, +Inf, nil) when both stations exist but are disconnected (or the
//     only routes exceed MaxDistance / use avoided lines). Check with Unreachable.
//   - (nil, +Inf, err) with err an *UnknownStationError naming every missing
//     station, or ErrNilNetwork.
//
// Parallel connections are relaxed individually, so the cheapest line between
// two stations is the one used.
//
// Complexity: O((S + C) log S) time, O(S + C) space.
func FindBestRoute(n *network.Network, start, end string, opts ...Option) (*Route, float64, error) {
	if n == nil {
		return nil, math.Inf(1), ErrNilNetwork
	}
	if err := checkStations(n, start, end); err != nil {
		return nil, math.Inf(1), err
	}
	if start == end {
		return &Route{Stations: []string{start}, Distance: 0}, 0, nil
	}

	r := newRunner(n, start, end, opts)
	r.run()

	if _, ok := r.dist[end]; !ok || !r.settled[end] {
		return nil, math.Inf(1), nil
	}

	best := r.path(end)

	return best, best.Distance, nil
}

// Distances computes the least distance from source to every station of n.
// Unreachable stations map to +Inf.
//
// Errors: ErrNilNetwork, *UnknownStationError.
// Complexity: O((S + C) log S).
func Distances(n *network.Network, source string, opts ...Option) (map[string]float64, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if err := checkStations(n, source); err != nil {
		return nil, err
	}

	r := newRunner(n, source, "", opts)
	r.run()

	names := n.StationNames()
	out := make(map[string]float64, len(names))
	for _, name := range names {
		if r.settled[name] {
			out[name] = r.dist[name]
		} else {
			out[name] = math.Inf(1)
		}
	}

	return out, nil
}

// checkStations returns an *UnknownStationError listing missing names once each, in argument order.
func checkStations(n *network.Network, names ...string) error {
	var missing []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if !n.HasStation(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &UnknownStationError{Names: missing}
	}

	return nil
}

// runner holds the mutable state of one query.
type runner struct {
	n       *network.Network
	options Options
	source  string
	target  string                         // "" explores everything reachable
	dist    map[string]float64             // best known distance; absent = +Inf
	via     map[string]*network.Connection // connection used to reach a station
	settled map[string]bool                // distance is final
	pq      nodePQ
}

func newRunner(n *network.Network, source, target string, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		n:       n,
		options: cfg,
		source:  source,
		target:  target,
		dist:    map[string]float64{source: 0},
		via:     make(map[string]*network.Connection),
		settled: make(map[string]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{name: source, dist: 0})

	return r
}

// run pops stations in (distance, name) order until the heap is empty, the
// target is settled, or the next distance exceeds MaxDistance.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.name] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.name] = true
		if item.name == r.target {
			return
		}
		r.relax(item.name)
	}
}

// relax tries every incident connection of u, parallel ones included.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, c := range r.n.Incident(u) {
		if _, avoid := r.options.AvoidLines[c.Line]; avoid {
			continue
		}
		v := c.Other(u)
		if r.settled[v] {
			continue
		}
		nd := du + c.Distance
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[v]; ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.via[v] = c
		heap.Push(&r.pq, &nodeItem{name: v, dist: nd})
	}
}

// path walks the via links back from end and returns the Route in travel order.
// Distance is recomputed from the hops rather than taken from dist.
func (r *runner) path(end string) *Route {
	var hops []Hop
	for cur := end; cur != r.source; {
		c := r.via[cur]
		prev := c.Other(cur)
		hops = append(hops, Hop{From: prev, To: cur, Distance: c.Distance, Line: c.Line, ConnectionID: c.ID})
		cur = prev
	}

	route := &Route{
		Stations: make([]string, 0, len(hops)+1),
		Hops:     make([]Hop, 0, len(hops)),
		Distance: total(hops),
	}
	route.Stations = append(route.Stations, r.source)
	for i := len(hops) - 1; i >= 0; i-- {
		route.Hops = append(route.Hops, hops[i])
		route.Stations = append(route.Stations, hops[i].To)
	}

	return route
}

// total sums hop distances smallest first, so a route and its reverse report
// bit-identical totals.
func total(hops []Hop) float64 {
	ds := make([]float64, len(hops))
	for i, h := range hops {
		ds[i] = h.Distance
	}
	sort.Float64s(ds)
	var sum float64
	for _, d := range ds {
		sum += d
	}

	return sum
}

// nodeItem is a heap entry: a station and the distance it was pushed with.
type nodeItem struct {
	name string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, name). Stale entries are
// skipped on pop via runner.settled.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].name < pq[j].name
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
