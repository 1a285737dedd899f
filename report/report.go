// SPDX-License-Identifier: MIT

// Package report renders route and statistics results as human-readable text.
//
// Route output:
//
//	Best route from CHANCERY LANE to OLD STREET:
//	CHANCERY LANE -> ST. PAULS: 0.9 Kms
//	...
//	Total distance: 2.67 Kms
//
// or "No path found from A to B" when the stations are disconnected.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/katalvlaran/tubemap/route"
	"github.com/katalvlaran/tubemap/stats"
)

// Route writes the hop-by-hop description of r, or the no-path message when r is nil.
func Route(w io.Writer, start, end string, r *route.Route) error {
	if r == nil {
		_, err := fmt.Fprintf(w, "No path found from %s to %s\n", start, end)
		return err
	}

	if _, err := fmt.Fprintf(w, "Best route from %s to %s:\n", start, end); err != nil {
		return err
	}
	for _, h := range r.Hops {
		if _, err := fmt.Fprintf(w, "%s -> %s: %g Kms\n", h.From, h.To, h.Distance); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total distance: %.2f Kms\n", r.Distance)

	return err
}

// Stats writes the network totals in the order the map legend shows them.
func Stats(w io.Writer, s stats.Summary) error {
	_, err := fmt.Fprintf(w, "Total Length: %s Kms\nAverage Distance: %s Kms\nStandard Deviation: %s Kms\n",
		km(s.Total), km(s.Mean), km(s.StdDev))

	return err
}

// Legend writes the Stats figures followed by the best route distance, as shown
// beside a rendered map. An unreachable best distance prints "n/a".
func Legend(w io.Writer, s stats.Summary, best float64) error {
	if err := Stats(w, s); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Best Distance: %s Kms\n", km(best))

	return err
}

// Lines writes one aligned row per line: name, colour, segments, total and mean.
func Lines(w io.Writer, lines []stats.LineSummary, p Palette) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tCOLOUR\tSEGMENTS\tTOTAL (Kms)\tMEAN (Kms)")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", l.Line, p.Colour(l.Line), l.Count, km(l.Total), km(l.Mean))
	}

	return tw.Flush()
}

// km formats a kilometre figure with two decimals; undefined values print "n/a".
func km(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", v)
}
