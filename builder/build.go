// SPDX-License-Identifier: MIT
//
// build.go: Coordinates (zone-filtered coordinate mapping) and Build (network admission).

package builder

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/tubemap/network"
)

// Coordinates builds the station → coordinate mapping from coordinate-table rows.
//
// Rows whose Zone differs from zone are skipped and counted in Report.Filtered;
// an empty zone keeps every row. Rows with an empty name or unparsable X/Y are
// rejected as ErrMalformedRecord. When a name repeats, the later row wins.
//
// Complexity: O(R).
func Coordinates(records []StationRecord, zone string) (map[string]network.Coordinate, *Report) {
	out := make(map[string]network.Coordinate, len(records))
	rep := &Report{}

	for i, rec := range records {
		if zone != "" && rec.Zone != zone {
			rep.Filtered++
			continue
		}
		if rec.Name == "" {
			rep.reject(i, malformedf("station name is empty"))
			continue
		}
		x, err := parseFloat(rec.X)
		if err != nil {
			rep.reject(i, malformedf("station %q x: %v", rec.Name, err))
			continue
		}
		y, err := parseFloat(rec.Y)
		if err != nil {
			rep.reject(i, malformedf("station %q y: %v", rec.Name, err))
			continue
		}
		out[rec.Name] = network.Coordinate{X: x, Y: y}
		rep.Admitted++
	}

	return out, rep
}

// Build admits connection records into a new, sealed Network.
//
// Steps:
//  1. Resolve options; reject an unknown policy.
//  2. With WithIsolatedStations, add every coordinate station (sorted by name).
//  3. For each record in order: validate fields and distance, resolve endpoints
//     under the policy, create missing stations, add one Connection.
//  4. Seal the Network and log a summary.
//
// Record order is preserved, so Connection IDs follow input order.
//
// Errors: ErrUnknownPolicy only. Bad records end up in Report.Rejected.
// Complexity: O(R + S log S).
func Build(coords map[string]network.Coordinate, records []ConnectionRecord, opts ...Option) (*network.Network, *Report, error) {
	cfg := newBuildConfig(opts...)
	if cfg.policy != DropUnresolved && cfg.policy != DefaultToOrigin {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, cfg.policy)
	}

	n := network.New()
	rep := &Report{}
	defaulted := make(map[string]struct{})

	if cfg.isolated {
		names := make([]string, 0, len(coords))
		for name := range coords {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := n.AddStation(name, network.WithCoordinate(coords[name])); err != nil {
				return nil, nil, fmt.Errorf("builder: add isolated station: %w", err)
			}
		}
	}

	for i, rec := range records {
		distance, err := parseConnection(rec)
		if err != nil {
			rep.reject(i, err)
			cfg.logger.Debug("connection rejected", zap.Int("index", i), zap.Stringer("record", rec), zap.Error(err))
			continue
		}

		if missing := missingEndpoints(coords, rec); len(missing) > 0 && cfg.policy == DropUnresolved {
			err = unresolvedf(missing...)
			rep.reject(i, err)
			cfg.logger.Debug("connection rejected", zap.Int("index", i), zap.Stringer("record", rec), zap.Error(err))
			continue
		}

		if err = ensureStation(n, coords, rec.From, defaulted); err != nil {
			rep.reject(i, malformedf("%v", err))
			continue
		}
		if err = ensureStation(n, coords, rec.To, defaulted); err != nil {
			rep.reject(i, malformedf("%v", err))
			continue
		}
		if _, err = n.AddConnection(rec.From, rec.To, distance, rec.Line); err != nil {
			rep.reject(i, malformedf("%v", err))
			continue
		}
		rep.Admitted++
	}

	if len(defaulted) > 0 {
		rep.Defaulted = make([]string, 0, len(defaulted))
		for name := range defaulted {
			rep.Defaulted = append(rep.Defaulted, name)
		}
		sort.Strings(rep.Defaulted)
	}

	n.Seal()

	cfg.logger.Info("network built",
		zap.String("policy", cfg.policy.String()),
		zap.Int("stations", n.StationCount()),
		zap.Int("connections", n.ConnectionCount()),
		zap.Int("malformed", rep.Count(KindMalformed)),
		zap.Int("unresolved", rep.Count(KindUnresolved)),
		zap.Int("defaulted", len(rep.Defaulted)),
	)

	return n, rep, nil
}

// parseConnection validates one record and returns its distance.
func parseConnection(rec ConnectionRecord) (float64, error) {
	if rec.From == "" || rec.To == "" {
		return 0, malformedf("missing station name")
	}
	if rec.Line == "" {
		return 0, malformedf("missing line for %q -> %q", rec.From, rec.To)
	}
	if rec.From == rec.To {
		return 0, malformedf("connection from %q to itself", rec.From)
	}
	d, err := parseFloat(rec.Distance)
	if err != nil {
		return 0, malformedf("distance: %v", err)
	}
	if d <= 0 {
		return 0, malformedf("distance %v is not positive", d)
	}

	return d, nil
}

// parseFloat parses trimmed text as a finite float64.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}

	return v, nil
}

// missingEndpoints lists endpoints absent from coords, From first.
func missingEndpoints(coords map[string]network.Coordinate, rec ConnectionRecord) []string {
	var missing []string
	if _, ok := coords[rec.From]; !ok {
		missing = append(missing, rec.From)
	}
	if _, ok := coords[rec.To]; !ok {
		missing = append(missing, rec.To)
	}

	return missing
}

// ensureStation adds name with its coordinate, or without one (recorded in defaulted).
func ensureStation(n *network.Network, coords map[string]network.Coordinate, name string, defaulted map[string]struct{}) error {
	if n.HasStation(name) {
		return nil
	}
	if c, ok := coords[name]; ok {
		return n.AddStation(name, network.WithCoordinate(c))
	}
	defaulted[name] = struct{}{}

	return n.AddStation(name)
}
