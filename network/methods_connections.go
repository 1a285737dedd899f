// SPDX-License-Identifier: MIT
//
// File: methods_connections.go
// Role: Connection lifecycle and queries: AddConnection/Connections/ConnectionCount/
//       ConnectionsBetween/Incident, plus Seal and connection ID generation.
// Determinism:
//   - Connections(), Incident() and ConnectionsBetween() return connections in ID (admission) order.
//   - nextConnectionID() is monotonic ("c" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package network

import (
	"fmt"
	"math"
	"strconv"
)

// connectionIDPrefix is the textual prefix of connection identifiers.
const connectionIDPrefix = 'c'

// AddConnection admits an undirected connection between two existing stations.
//
// Steps:
//  1. Validate names, line and distance.
//  2. Lock, reject if sealed, resolve both endpoints.
//  3. Assign the next ID, append to the catalog and to both incident lists.
//
// Parallel connections are always accepted: the same pair may be joined by any
// number of lines, each with its own distance.
//
// Errors: ErrEmptyStationName, ErrEmptyLine, ErrSelfConnection, ErrBadDistance,
// ErrStationNotFound (wrapped with the missing name), ErrSealed.
// Complexity: O(1) amortized.
func (n *Network) AddConnection(from, to string, distance float64, line string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyStationName
	}
	if line == "" {
		return "", ErrEmptyLine
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrSelfConnection, from)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return "", fmt.Errorf("%w: %v", ErrBadDistance, distance)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sealed {
		return "", fmt.Errorf("%w: add connection %q-%q", ErrSealed, from, to)
	}
	if _, ok := n.stations[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrStationNotFound, from)
	}
	if _, ok := n.stations[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrStationNotFound, to)
	}

	n.nextSeq++
	c := &Connection{
		ID:       nextConnectionID(n.nextSeq),
		From:     from,
		To:       to,
		Distance: distance,
		Line:     line,
	}
	n.connections = append(n.connections, c)
	n.incident[from] = append(n.incident[from], c)
	n.incident[to] = append(n.incident[to], c)

	return c.ID, nil
}

// Seal makes the Network read-only. Sealing twice is a no-op.
func (n *Network) Seal() {
	n.mu.Lock()
	n.sealed = true
	n.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (n *Network) Sealed() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.sealed
}

// Connections returns every connection in ID order.
// The returned pointers are shared with the Network and must be treated as read-only.
// Complexity: O(C).
func (n *Network) Connections() []*Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Connection, len(n.connections))
	copy(out, n.connections)

	return out
}

// ConnectionCount returns the number of connections, parallel ones included.
// Complexity: O(1).
func (n *Network) ConnectionCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.connections)
}

// Incident returns the connections touching name, in ID order.
// Unknown stations yield nil.
// Complexity: O(d) for the copy; the lookup itself is O(1).
func (n *Network) Incident(name string) []*Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	list := n.incident[name]
	if len(list) == 0 {
		return nil
	}
	out := make([]*Connection, len(list))
	copy(out, list)

	return out
}

// ConnectionsBetween returns every connection joining a and b in either
// direction, in ID order. Several results mean parallel lines.
// Complexity: O(d(a)).
func (n *Network) ConnectionsBetween(a, b string) []*Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var out []*Connection
	for _, c := range n.incident[a] {
		if c.Joins(a, b) {
			out = append(out, c)
		}
	}

	return out
}

// nextConnectionID renders a sequence number as "c<seq>" without fmt.
func nextConnectionID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, connectionIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
