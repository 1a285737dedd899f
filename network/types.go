// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Station, Connection, Coordinate and Network declarations, sentinel errors, New.

package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyStationName indicates that a station name is the empty string.
	ErrEmptyStationName = errors.New("network: station name is empty")

	// ErrStationNotFound indicates an operation referenced a station that was never added.
	ErrStationNotFound = errors.New("network: station not found")

	// ErrSelfConnection indicates a connection whose endpoints are the same station.
	ErrSelfConnection = errors.New("network: connection endpoints must differ")

	// ErrBadDistance indicates a distance that is NaN, infinite, zero or negative.
	ErrBadDistance = errors.New("network: distance must be a positive finite number")

	// ErrEmptyLine indicates a connection without a line name.
	ErrEmptyLine = errors.New("network: line name is empty")

	// ErrSealed indicates a mutation attempted after Seal.
	ErrSealed = errors.New("network: network is sealed")
)

// Coordinate is a planar position. X/Y hold longitude/latitude or grid
// easting/northing depending on the source table.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the position reported for stations without a known coordinate.
var Origin = Coordinate{}

// Station is a named node of the Network.
type Station struct {
	// Name is the exact identity of the station.
	Name string

	// Coord is the station position; meaningful only when HasCoord is true.
	Coord Coordinate

	// HasCoord reports whether Coord came from the coordinate table.
	HasCoord bool
}

// Connection is one undirected line segment between two stations.
type Connection struct {
	// ID is stable and follows admission order ("c1", "c2", ...).
	ID string

	// From and To are the station names as given on admission.
	From string
	To   string

	// Distance is the segment length in kilometres.
	Distance float64

	// Line is the line name exactly as given in the source data.
	Line string
}

// Other returns the endpoint opposite to name, or "" if name is not an endpoint.
func (c *Connection) Other(name string) string {
	switch name {
	case c.From:
		return c.To
	case c.To:
		return c.From
	default:
		return ""
	}
}

// Joins reports whether c connects a and b in either direction.
func (c *Connection) Joins(a, b string) bool {
	return (c.From == a && c.To == b) || (c.From == b && c.To == a)
}

// Network is the station/connection multigraph.
//
// mu guards every field below it. stations and incident are keyed by station name;
// connections is kept in admission order so iteration never needs sorting.
type Network struct {
	mu sync.RWMutex

	sealed  bool
	nextSeq uint64

	stations    map[string]*Station
	connections []*Connection

	// incident[name] lists every connection touching name, in ID order.
	incident map[string][]*Connection
}

// New creates an empty, unsealed Network.
// Complexity: O(1).
func New() *Network {
	return &Network{
		stations: make(map[string]*Station),
		incident: make(map[string][]*Connection),
	}
}
