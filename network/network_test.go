// SPDX-License-Identifier: MIT
// Package network_test verifies Network lifecycle, parallel connections and index queries.

package network_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tubemap/network"
)

// Station names used across network tests.
const (
	StationGreenPark  = "Green Park"
	StationPiccadilly = "Piccadilly Circus"
	StationLeicester  = "Leicester Square"
	StationBank       = "Bank"
)

// NetworkSuite exercises a small three-station fixture with a parallel pair.
type NetworkSuite struct {
	suite.Suite
	n *network.Network
}

// SetupTest builds Green Park - Piccadilly Circus (two lines) - Leicester Square.
func (s *NetworkSuite) SetupTest() {
	s.n = network.New()
	require.NoError(s.T(), s.n.AddStation(StationGreenPark, network.WithCoordinate(network.Coordinate{X: -0.1428, Y: 51.5067})))
	require.NoError(s.T(), s.n.AddStation(StationPiccadilly, network.WithCoordinate(network.Coordinate{X: -0.1337, Y: 51.5098})))
	require.NoError(s.T(), s.n.AddStation(StationLeicester))

	_, err := s.n.AddConnection(StationGreenPark, StationPiccadilly, 0.5, "Piccadilly")
	require.NoError(s.T(), err)
	_, err = s.n.AddConnection(StationPiccadilly, StationGreenPark, 0.7, "Jubilee")
	require.NoError(s.T(), err)
	_, err = s.n.AddConnection(StationPiccadilly, StationLeicester, 0.1, "Piccadilly")
	require.NoError(s.T(), err)
}

func (s *NetworkSuite) TestCounts() {
	require.Equal(s.T(), 3, s.n.StationCount())
	require.Equal(s.T(), 3, s.n.ConnectionCount(), "parallel connections are not merged")
}

func (s *NetworkSuite) TestConnectionIDsFollowAdmissionOrder() {
	var ids []string
	for _, c := range s.n.Connections() {
		ids = append(ids, c.ID)
	}
	require.Equal(s.T(), []string{"c1", "c2", "c3"}, ids)
}

func (s *NetworkSuite) TestConnectionsBetweenKeepsParallelLines() {
	between := s.n.ConnectionsBetween(StationGreenPark, StationPiccadilly)
	require.Len(s.T(), between, 2)
	require.Equal(s.T(), "Piccadilly", between[0].Line)
	require.Equal(s.T(), "Jubilee", between[1].Line)

	// Direction of the query does not matter.
	require.Len(s.T(), s.n.ConnectionsBetween(StationPiccadilly, StationGreenPark), 2)
	require.Empty(s.T(), s.n.ConnectionsBetween(StationGreenPark, StationLeicester))
}

func (s *NetworkSuite) TestIncidentIndex() {
	inc := s.n.Incident(StationPiccadilly)
	require.Len(s.T(), inc, 3)
	require.Equal(s.T(), "c1", inc[0].ID)
	require.Equal(s.T(), StationGreenPark, inc[0].Other(StationPiccadilly))
	require.Equal(s.T(), StationLeicester, inc[2].Other(StationPiccadilly))
	require.Equal(s.T(), "", inc[2].Other(StationBank))

	require.Nil(s.T(), s.n.Incident(StationBank))
}

func (s *NetworkSuite) TestLines() {
	require.Equal(s.T(), []string{"Jubilee", "Piccadilly"}, s.n.Lines())
	require.Equal(s.T(), []string{"Jubilee", "Piccadilly"}, s.n.LinesAt(StationGreenPark))
	require.Equal(s.T(), []string{"Piccadilly"}, s.n.LinesAt(StationLeicester))
	require.True(s.T(), s.n.IsInterchange(StationPiccadilly))
	require.False(s.T(), s.n.IsInterchange(StationLeicester))
	require.Len(s.T(), s.n.ConnectionsOnLine("Piccadilly"), 2)
}

func (s *NetworkSuite) TestMatchLines() {
	require.Equal(s.T(), []string{"Jubilee"}, s.n.MatchLines(" Jubilee "))
	require.Equal(s.T(), []string{"Elizabeth", "Piccadilly"}, s.n.MatchLines("Piccadilly", "Elizabeth", "Piccadilly"))
	require.Nil(s.T(), s.n.MatchLines())
}

func (s *NetworkSuite) TestPositionFallsBackToOrigin() {
	pos, ok := s.n.Position(StationGreenPark)
	require.True(s.T(), ok)
	require.Equal(s.T(), -0.1428, pos.X)

	pos, ok = s.n.Position(StationLeicester)
	require.False(s.T(), ok)
	require.Equal(s.T(), network.Origin, pos)

	pos, ok = s.n.Position(StationBank)
	require.False(s.T(), ok)
	require.Equal(s.T(), network.Origin, pos)
}

func (s *NetworkSuite) TestStationsSortedByName() {
	require.Equal(s.T(), []string{StationGreenPark, StationLeicester, StationPiccadilly}, s.n.StationNames())
	stations := s.n.Stations()
	require.Len(s.T(), stations, 3)
	require.Equal(s.T(), StationGreenPark, stations[0].Name)
	require.True(s.T(), stations[0].HasCoord)
}

func (s *NetworkSuite) TestAddStationIsIdempotent() {
	require.NoError(s.T(), s.n.AddStation(StationGreenPark, network.WithCoordinate(network.Coordinate{X: 9, Y: 9})))
	st, ok := s.n.Station(StationGreenPark)
	require.True(s.T(), ok)
	require.Equal(s.T(), -0.1428, st.Coord.X, "first registration wins")
	require.Equal(s.T(), 3, s.n.StationCount())
}

func (s *NetworkSuite) TestSealRejectsMutation() {
	s.n.Seal()
	require.True(s.T(), s.n.Sealed())

	require.ErrorIs(s.T(), s.n.AddStation(StationBank), network.ErrSealed)
	_, err := s.n.AddConnection(StationGreenPark, StationLeicester, 1, "Piccadilly")
	require.ErrorIs(s.T(), err, network.ErrSealed)
	require.Equal(s.T(), 3, s.n.ConnectionCount())
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestAddConnection_Validation(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddStation("A"))
	require.NoError(t, n.AddStation("B"))

	cases := []struct {
		name     string
		from, to string
		distance float64
		line     string
		want     error
	}{
		{"empty from", "", "B", 1, "L", network.ErrEmptyStationName},
		{"empty line", "A", "B", 1, "", network.ErrEmptyLine},
		{"self", "A", "A", 1, "L", network.ErrSelfConnection},
		{"zero", "A", "B", 0, "L", network.ErrBadDistance},
		{"negative", "A", "B", -0.4, "L", network.ErrBadDistance},
		{"nan", "A", "B", math.NaN(), "L", network.ErrBadDistance},
		{"inf", "A", "B", math.Inf(1), "L", network.ErrBadDistance},
		{"unknown endpoint", "A", "Z", 1, "L", network.ErrStationNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.AddConnection(tc.from, tc.to, tc.distance, tc.line)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
	require.Zero(t, n.ConnectionCount())
	require.ErrorIs(t, n.AddStation(""), network.ErrEmptyStationName)
}

func TestNetwork_ConcurrentReaders(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddStation("A"))
	require.NoError(t, n.AddStation("B"))
	_, err := n.AddConnection("A", "B", 1.5, "Central")
	require.NoError(t, err)
	n.Seal()

	const readers = 50
	var wg sync.WaitGroup
	counts := make([]int, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = len(n.Incident("A")) + len(n.ConnectionsBetween("B", "A"))
		}(i)
	}
	wg.Wait()
	for _, c := range counts {
		require.Equal(t, 2, c)
	}
}
