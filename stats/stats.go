// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Aggregate connection distances: total, mean and sample standard deviation.
//   - Report the same figures per line for legends and line tables.
//
// Exposed API:
//   - Compute(distances) -> Summary          // pure kernel over a slice
//   - OfNetwork(n)       -> Summary          // every connection, parallel ones included
//   - ByLine(n)          -> []LineSummary    // per-line summaries sorted by line name
//
// Determinism:
//   - Summation runs in input order (connection ID order for OfNetwork), so results
//     are bit-identical for a fixed input.
//   - Mean is NaN for n = 0; StdDev is NaN for n < 2 (n−1 divisor undefined).

package stats

import (
	"math"

	"github.com/katalvlaran/tubemap/network"
)

// Summary holds aggregate distance figures in kilometres.
type Summary struct {
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// LineSummary is a Summary for one line.
type LineSummary struct {
	Line string `json:"line"`
	Summary
}

// Compute returns the Summary of distances.
//
// Implementation:
//   - Stage 1: one pass for the total.
//   - Stage 2: mean = total / n.
//   - Stage 3: second pass over squared deviations, divided by n−1.
//
// Two passes avoid the cancellation of the naive Σx² − n·mean² formula.
// Complexity: O(n) time, O(1) space.
func Compute(distances []float64) Summary {
	s := Summary{Count: len(distances), Mean: math.NaN(), StdDev: math.NaN()}
	if s.Count == 0 {
		return s
	}

	for _, d := range distances {
		s.Total += d
	}
	s.Mean = s.Total / float64(s.Count)

	if s.Count < 2 {
		return s
	}
	var ss, dev float64
	for _, d := range distances {
		dev = d - s.Mean
		ss += dev * dev
	}
	s.StdDev = math.Sqrt(ss / float64(s.Count-1))

	return s
}

// OfNetwork summarises every connection of n in ID order. Parallel connections
// each count once, so a pair served by two lines contributes both distances.
func OfNetwork(n *network.Network) Summary {
	return Compute(distancesOf(n.Connections()))
}

// ByLine summarises each line separately, sorted by line name.
func ByLine(n *network.Network) []LineSummary {
	lines := n.Lines()
	out := make([]LineSummary, 0, len(lines))
	for _, line := range lines {
		out = append(out, LineSummary{
			Line:    line,
			Summary: Compute(distancesOf(n.ConnectionsOnLine(line))),
		})
	}

	return out
}

func distancesOf(conns []*network.Connection) []float64 {
	out := make([]float64, len(conns))
	for i, c := range conns {
		out[i] = c.Distance
	}

	return out
}
