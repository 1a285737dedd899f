// SPDX-License-Identifier: MIT
//
// File: methods_lines.go
// Role: Line-oriented views used by renderers: Lines, LinesAt, IsInterchange, ConnectionsOnLine, MatchLines.

package network

import (
	"sort"
	"strings"
)

// Lines returns the distinct line names present in the Network, sorted asc.
// Complexity: O(C log L).
func (n *Network) Lines() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, c := range n.connections {
		seen[c.Line] = struct{}{}
	}

	return sortedKeys(seen)
}

// LinesAt returns the distinct lines serving the station, sorted asc.
// Complexity: O(d log d) via the incident index.
func (n *Network) LinesAt(name string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	list := n.incident[name]
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		seen[c.Line] = struct{}{}
	}

	return sortedKeys(seen)
}

// IsInterchange reports whether more than one line serves the station.
func (n *Network) IsInterchange(name string) bool {
	return len(n.LinesAt(name)) > 1
}

// ConnectionsOnLine returns the connections of one line in ID order.
func (n *Network) ConnectionsOnLine(line string) []*Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var out []*Connection
	for _, c := range n.connections {
		if c.Line == line {
			out = append(out, c)
		}
	}

	return out
}

// MatchLines resolves user-typed line names to the names stored in the Network,
// ignoring surrounding whitespace on both sides ("Central" matches "Central ").
// Names matching no line are returned unchanged. Result is sorted and deduplicated.
func (n *Network) MatchLines(names ...string) []string {
	if len(names) == 0 {
		return nil
	}
	stored := n.Lines()
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		want := strings.TrimSpace(name)
		matched := false
		for _, line := range stored {
			if strings.TrimSpace(line) == want {
				out[line] = struct{}{}
				matched = true
			}
		}
		if !matched {
			out[name] = struct{}{}
		}
	}

	return sortedKeys(out)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
