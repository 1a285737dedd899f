// SPDX-License-Identifier: MIT

package report

import "strings"

// FallbackColour is used for lines without a palette entry.
const FallbackColour = "grey"

// RouteColour highlights the best route on a map.
const RouteColour = "gold"

// Palette maps line names to colour names. Lookups ignore surrounding whitespace,
// since source tables spell some lines with a trailing space ("Central ").
type Palette map[string]string

// DefaultPalette returns the London Underground colours.
func DefaultPalette() Palette {
	return Palette{
		"Bakerloo":        "brown",
		"Central":         "red",
		"Circle":          "yellow",
		"District":        "green",
		"Jubilee":         "grey",
		"Metropolitan":    "purple",
		"Northern":        "black",
		"Piccadilly":      "blue",
		"Victoria":        "lightblue",
		"H & C":           "pink",
		"Waterloo & City": "lightgreen",
		"DLR":             "orange",
	}
}

// Merge returns a new Palette with override entries layered over p.
func (p Palette) Merge(override map[string]string) Palette {
	out := make(Palette, len(p)+len(override))
	for k, v := range p {
		out[strings.TrimSpace(k)] = v
	}
	for k, v := range override {
		out[strings.TrimSpace(k)] = v
	}

	return out
}

// Colour returns the colour of line, or FallbackColour.
func (p Palette) Colour(line string) string {
	if c, ok := p[line]; ok {
		return c
	}
	if c, ok := p[strings.TrimSpace(line)]; ok {
		return c
	}

	return FallbackColour
}
