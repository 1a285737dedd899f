// SPDX-License-Identifier: MIT

package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/tubemap/builder"
	"github.com/katalvlaran/tubemap/internal/config"
	"github.com/katalvlaran/tubemap/loader"
	"github.com/katalvlaran/tubemap/network"
	"github.com/katalvlaran/tubemap/reach"
	"github.com/katalvlaran/tubemap/report"
	"github.com/katalvlaran/tubemap/route"
	"github.com/katalvlaran/tubemap/stats"
)

// Session is a loaded network with its precomputed statistics.
type Session struct {
	Network *network.Network
	Summary stats.Summary
	Lines   []stats.LineSummary
	Palette report.Palette

	// Components lists the connected parts of the network. More than one means
	// some station pairs have no route.
	Components [][]string

	// Stations reports the coordinate table filtering, Connections the admission.
	Stations    *builder.Report
	Connections *builder.Report
}

// NewSession builds a Session from already-read records.
func NewSession(stations []builder.StationRecord, connections []builder.ConnectionRecord, zone string, opts ...builder.Option) (*Session, error) {
	coords, stationReport := builder.Coordinates(stations, zone)
	n, connReport, err := builder.Build(coords, connections, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		Network:     n,
		Summary:     stats.OfNetwork(n),
		Lines:       stats.ByLine(n),
		Palette:     report.DefaultPalette(),
		Components:  reach.Components(n),
		Stations:    stationReport,
		Connections: connReport,
	}, nil
}

// Load reads both tables named by cfg and builds a Session.
func Load(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	cs, err := cfg.CoordinateSystem()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.UnresolvedPolicy()
	if err != nil {
		return nil, err
	}

	stations, err := loader.LoadStations(cfg.Data.Stations, cfg.Data.Encoding, loader.ColumnsFor(cs))
	if err != nil {
		return nil, fmt.Errorf("app: stations: %w", err)
	}
	connections, err := loader.LoadConnections(cfg.Data.Connections, cfg.Data.Encoding, loader.DefaultConnectionColumns)
	if err != nil {
		return nil, fmt.Errorf("app: connections: %w", err)
	}
	logger.Debug("tables read",
		zap.Int("stations", len(stations)),
		zap.Int("connections", len(connections)),
	)

	opts := []builder.Option{builder.WithUnresolvedPolicy(policy), builder.WithLogger(logger)}
	if cfg.Network.Isolated {
		opts = append(opts, builder.WithIsolatedStations())
	}
	s, err := NewSession(stations, connections, cfg.Data.Zone, opts...)
	if err != nil {
		return nil, fmt.Errorf("app: build: %w", err)
	}
	s.Palette = s.Palette.Merge(cfg.Lines)

	logger.Info("network loaded",
		zap.String("zone", cfg.Data.Zone),
		zap.Int("coordinates", s.Stations.Admitted),
		zap.Int("filtered", s.Stations.Filtered),
		zap.Int("components", len(s.Components)),
		zap.Float64("total_km", s.Summary.Total),
	)

	return s, nil
}

// Route finds the best route between two stations, skipping the avoided lines.
// Line names are matched ignoring surrounding whitespace.
func (s *Session) Route(from, to string, avoid ...string) (*route.Route, float64, error) {
	var opts []route.Option
	if lines := s.Network.MatchLines(avoid...); len(lines) > 0 {
		opts = append(opts, route.WithAvoidLines(lines...))
	}

	return route.FindBestRoute(s.Network, from, to, opts...)
}
