// SPDX-License-Identifier: MIT
// Package route_test verifies least-distance routing over multigraph networks:
// validation, parallel lines, disconnected components, tie-breaking and options.

package route_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tubemap/network"
	"github.com/katalvlaran/tubemap/route"
)

const tol = 1e-9

// edge is a test fixture row: from, to, distance, line.
type edge struct {
	from, to string
	km       float64
	line     string
}

func build(t *testing.T, edges ...edge) *network.Network {
	t.Helper()
	n := network.New()
	for _, e := range edges {
		require.NoError(t, n.AddStation(e.from))
		require.NoError(t, n.AddStation(e.to))
		_, err := n.AddConnection(e.from, e.to, e.km, e.line)
		require.NoError(t, err)
	}
	n.Seal()

	return n
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindBestRoute_NilNetwork(t *testing.T) {
	r, d, err := route.FindBestRoute(nil, "A", "B")
	require.ErrorIs(t, err, route.ErrNilNetwork)
	require.Nil(t, r)
	require.True(t, route.Unreachable(d))
}

func TestFindBestRoute_UnknownStation(t *testing.T) {
	n := build(t, edge{"P", "Q", 1.0, "Central"})

	r, _, err := route.FindBestRoute(n, "X", "Q")
	require.Nil(t, r)
	require.ErrorIs(t, err, route.ErrUnknownStation)
	var use *route.UnknownStationError
	require.True(t, errors.As(err, &use))
	require.Equal(t, []string{"X"}, use.Names)
	require.Contains(t, err.Error(), `"X"`)

	_, _, err = route.FindBestRoute(n, "X", "Y")
	require.True(t, errors.As(err, &use))
	require.Equal(t, []string{"X", "Y"}, use.Names, "every missing station is named")

	_, _, err = route.FindBestRoute(n, "X", "X")
	require.True(t, errors.As(err, &use))
	require.Equal(t, []string{"X"}, use.Names)

	_, _, err = route.FindBestRoute(n, "p", "Q")
	require.ErrorIs(t, err, route.ErrUnknownStation, "names are case-sensitive")
}

// ------------------------------------------------------------------------
// 2. Core behaviour
// ------------------------------------------------------------------------

// RouteSuite runs queries against the P–Q–R triangle with a parallel S–T pair
// attached through R, plus a disjoint component {C, D}.
type RouteSuite struct {
	suite.Suite
	n *network.Network
}

func (s *RouteSuite) SetupTest() {
	s.n = build(s.T(),
		edge{"P", "Q", 1.0, "Victoria"},
		edge{"Q", "R", 0.5, "Central"},
		edge{"P", "R", 2.0, "Jubilee"},
		edge{"S", "T", 0.3, "Circle"},
		edge{"S", "T", 0.7, "District"},
		edge{"R", "S", 1.0, "Central"},
		edge{"C", "D", 1.0, "DLR"},
	)
}

func (s *RouteSuite) TestTwoHopsBeatDirectEdge() {
	r, d, err := route.FindBestRoute(s.n, "P", "R")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"P", "Q", "R"}, r.Stations)
	require.InDelta(s.T(), 1.5, d, tol)
	require.Equal(s.T(), d, r.Distance)
	require.Equal(s.T(), []string{"Victoria", "Central"}, r.Lines())
	require.Equal(s.T(), "P", r.Start())
	require.Equal(s.T(), "R", r.End())
}

func (s *RouteSuite) TestCheapestParallelLineIsUsed() {
	r, d, err := route.FindBestRoute(s.n, "S", "T")
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.3, d, tol)
	require.Len(s.T(), r.Hops, 1)
	require.Equal(s.T(), "Circle", r.Hops[0].Line)
	require.Equal(s.T(), "c4", r.Hops[0].ConnectionID)

	// Same choice when approaching from the other side.
	r, d, err = route.FindBestRoute(s.n, "T", "S")
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.3, d, tol)
	require.Equal(s.T(), "Circle", r.Hops[0].Line)
	require.Equal(s.T(), route.Hop{From: "T", To: "S", Distance: 0.3, Line: "Circle", ConnectionID: "c4"}, r.Hops[0])
}

func (s *RouteSuite) TestSelfRoute() {
	for _, name := range s.n.StationNames() {
		r, d, err := route.FindBestRoute(s.n, name, name)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{name}, r.Stations)
		require.Empty(s.T(), r.Hops)
		require.Zero(s.T(), d)
	}
}

func (s *RouteSuite) TestDisconnectedComponents() {
	r, d, err := route.FindBestRoute(s.n, "P", "C")
	require.NoError(s.T(), err, "no path is a result, not an error")
	require.Nil(s.T(), r)
	require.True(s.T(), math.IsInf(d, 1))
	require.True(s.T(), route.Unreachable(d))
}

func (s *RouteSuite) TestSymmetry() {
	names := s.n.StationNames()
	for _, a := range names {
		for _, b := range names {
			_, dab, err := route.FindBestRoute(s.n, a, b)
			require.NoError(s.T(), err)
			_, dba, err := route.FindBestRoute(s.n, b, a)
			require.NoError(s.T(), err)
			if route.Unreachable(dab) {
				require.True(s.T(), route.Unreachable(dba), "%s/%s", a, b)
				continue
			}
			require.Equal(s.T(), dab, dba, "%s/%s", a, b)
		}
	}
}

func TestFindBestRoute_ReverseTotalIsBitIdentical(t *testing.T) {
	n := build(t,
		edge{"A", "B", 0.1, "Central"},
		edge{"B", "C", 0.2, "Central"},
		edge{"C", "D", 0.3, "Central"},
	)

	forward, dad, err := route.FindBestRoute(n, "A", "D")
	require.NoError(t, err)
	backward, dda, err := route.FindBestRoute(n, "D", "A")
	require.NoError(t, err)

	require.Equal(t, dad, dda)
	require.Equal(t, dad, forward.Distance)
	require.Equal(t, dda, backward.Distance)
	require.Equal(t, []string{"D", "C", "B", "A"}, backward.Stations)
}

func (s *RouteSuite) TestNeverLongerThanDirectConnection() {
	for _, c := range s.n.Connections() {
		_, d, err := route.FindBestRoute(s.n, c.From, c.To)
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), d, c.Distance, "connection %s", c.ID)
	}
}

func (s *RouteSuite) TestHopsSumToDistance() {
	r, d, err := route.FindBestRoute(s.n, "P", "T")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"P", "Q", "R", "S", "T"}, r.Stations)
	var sum float64
	for i, h := range r.Hops {
		require.Equal(s.T(), r.Stations[i], h.From)
		require.Equal(s.T(), r.Stations[i+1], h.To)
		sum += h.Distance
	}
	require.InDelta(s.T(), d, sum, tol)
	require.InDelta(s.T(), 2.8, d, tol)
	require.Equal(s.T(), []string{"Victoria", "Central", "Circle"}, r.Lines())
}

func (s *RouteSuite) TestAvoidLines() {
	r, d, err := route.FindBestRoute(s.n, "P", "R", route.WithAvoidLines("Victoria"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"P", "R"}, r.Stations)
	require.InDelta(s.T(), 2.0, d, tol)

	r, d, err = route.FindBestRoute(s.n, "S", "T", route.WithAvoidLines("Circle"))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.7, d, tol)
	require.Equal(s.T(), "District", r.Hops[0].Line)

	r, d, err = route.FindBestRoute(s.n, "S", "T", route.WithAvoidLines("Circle", "District", "Central"))
	require.NoError(s.T(), err)
	require.Nil(s.T(), r)
	require.True(s.T(), route.Unreachable(d))
}

func (s *RouteSuite) TestMaxDistance() {
	_, d, err := route.FindBestRoute(s.n, "P", "R", route.WithMaxDistance(1.5))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.5, d, tol, "cap is inclusive")

	r, d, err := route.FindBestRoute(s.n, "P", "R", route.WithMaxDistance(1.2))
	require.NoError(s.T(), err)
	require.Nil(s.T(), r)
	require.True(s.T(), route.Unreachable(d))

	require.Panics(s.T(), func() { route.WithMaxDistance(-1) })
}

func (s *RouteSuite) TestDistances() {
	dist, err := route.Distances(s.n, "P")
	require.NoError(s.T(), err)
	require.Len(s.T(), dist, s.n.StationCount())
	require.Zero(s.T(), dist["P"])
	require.InDelta(s.T(), 1.0, dist["Q"], tol)
	require.InDelta(s.T(), 1.5, dist["R"], tol)
	require.InDelta(s.T(), 2.5, dist["S"], tol)
	require.InDelta(s.T(), 2.8, dist["T"], tol)
	require.True(s.T(), route.Unreachable(dist["C"]))
	require.True(s.T(), route.Unreachable(dist["D"]))

	_, err = route.Distances(s.n, "Z")
	require.ErrorIs(s.T(), err, route.ErrUnknownStation)
}

func (s *RouteSuite) TestNetworkIsNotMutated() {
	before := s.n.Connections()
	_, _, err := route.FindBestRoute(s.n, "P", "T", route.WithAvoidLines("Jubilee"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, s.n.Connections())
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

// ------------------------------------------------------------------------
// 3. Tie-breaking and concurrency
// ------------------------------------------------------------------------

func TestFindBestRoute_TieBreakIsStable(t *testing.T) {
	// A square where both A→B→D and A→C→D cost 2.
	n := build(t,
		edge{"A", "B", 1, "L1"},
		edge{"B", "D", 1, "L1"},
		edge{"A", "C", 1, "L2"},
		edge{"C", "D", 1, "L2"},
	)
	for i := 0; i < 20; i++ {
		r, d, err := route.FindBestRoute(n, "A", "D")
		require.NoError(t, err)
		require.Equal(t, 2.0, d)
		require.Equal(t, []string{"A", "B", "D"}, r.Stations, "B settles before C by name")
	}

	r, _, err := route.FindBestRoute(n, "D", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"D", "B", "A"}, r.Stations)
}

func TestFindBestRoute_EqualParallelLinesKeepLowestID(t *testing.T) {
	n := build(t,
		edge{"S", "T", 0.5, "Hammersmith & City"},
		edge{"S", "T", 0.5, "Circle"},
	)
	r, _, err := route.FindBestRoute(n, "S", "T")
	require.NoError(t, err)
	require.Equal(t, "Hammersmith & City", r.Hops[0].Line)
	require.Equal(t, "c1", r.Hops[0].ConnectionID)
}

func TestFindBestRoute_ConcurrentQueries(t *testing.T) {
	n := build(t,
		edge{"P", "Q", 1.0, "Victoria"},
		edge{"Q", "R", 0.5, "Central"},
		edge{"P", "R", 2.0, "Jubilee"},
	)
	const workers = 32
	var wg sync.WaitGroup
	got := make([]float64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, d, err := route.FindBestRoute(n, "P", "R")
			if err != nil {
				got[i] = -1
				return
			}
			got[i] = d
		}(i)
	}
	wg.Wait()
	for _, d := range got {
		require.InDelta(t, 1.5, d, tol)
	}
}
