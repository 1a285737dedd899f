// SPDX-License-Identifier: MIT

// Package loader reads the station and connection tables (CSV with a header row)
// into builder records.
//
// Columns are located by header name, so column order in the file is free.
// Rows are passed through untouched as text: validation belongs to the builder,
// which reports bad rows instead of failing the whole load. A table without one
// of the required header names fails with ErrMissingColumn.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/katalvlaran/tubemap/builder"
)

// Sentinel errors for table loading.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("loader: missing column")

	// ErrEmptyTable indicates a file without a header row.
	ErrEmptyTable = errors.New("loader: table has no header")

	// ErrUnknownEncoding indicates an encoding name outside the supported set.
	ErrUnknownEncoding = errors.New("loader: unknown encoding")

	// ErrUnknownCoordinateSystem indicates a coordinate system name outside the supported set.
	ErrUnknownCoordinateSystem = errors.New("loader: unknown coordinate system")
)

// CoordinateSystem selects which coordinate columns of the station table are read.
type CoordinateSystem int

const (
	// Geographic reads Longitude (X) and Latitude (Y).
	Geographic CoordinateSystem = iota
	// OSGrid reads the Ordnance Survey easting "OS X" and northing "OS Y".
	OSGrid
)

// ParseCoordinateSystem maps "geographic" (or "") and "osgrid" to a CoordinateSystem.
func ParseCoordinateSystem(s string) (CoordinateSystem, error) {
	switch strings.ToLower(s) {
	case "", "geographic", "lonlat":
		return Geographic, nil
	case "osgrid", "os":
		return OSGrid, nil
	default:
		return Geographic, fmt.Errorf("%w: %q", ErrUnknownCoordinateSystem, s)
	}
}

// StationColumns names the station table headers.
type StationColumns struct {
	Name string
	Zone string
	X    string
	Y    string
}

// ColumnsFor returns the station headers for a coordinate system.
func ColumnsFor(cs CoordinateSystem) StationColumns {
	cols := StationColumns{Name: "Station", Zone: "Zone", X: "Longitude", Y: "Latitude"}
	if cs == OSGrid {
		cols.X, cols.Y = "OS X", "OS Y"
	}

	return cols
}

// ConnectionColumns names the connection table headers.
type ConnectionColumns struct {
	From     string
	To       string
	Distance string
	Line     string
}

// DefaultConnectionColumns are the headers of the inter-station distance table.
var DefaultConnectionColumns = ConnectionColumns{
	From:     "Station from (A)",
	To:       "Station to (B)",
	Distance: "Distance (Kms)",
	Line:     "Line",
}

// ReadStations reads station rows using cols.
func ReadStations(r io.Reader, cols StationColumns) ([]builder.StationRecord, error) {
	rows, idx, err := readTable(r, cols.Name, cols.Zone, cols.X, cols.Y)
	if err != nil {
		return nil, err
	}
	out := make([]builder.StationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, builder.StationRecord{
			Name: field(row, idx[0]),
			Zone: field(row, idx[1]),
			X:    field(row, idx[2]),
			Y:    field(row, idx[3]),
		})
	}

	return out, nil
}

// ReadConnections reads connection rows using cols.
func ReadConnections(r io.Reader, cols ConnectionColumns) ([]builder.ConnectionRecord, error) {
	rows, idx, err := readTable(r, cols.From, cols.To, cols.Distance, cols.Line)
	if err != nil {
		return nil, err
	}
	out := make([]builder.ConnectionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, builder.ConnectionRecord{
			From:     field(row, idx[0]),
			To:       field(row, idx[1]),
			Distance: field(row, idx[2]),
			Line:     field(row, idx[3]),
		})
	}

	return out, nil
}

// LoadStations opens path with the given encoding and reads station rows.
func LoadStations(path, encoding string, cols StationColumns) ([]builder.StationRecord, error) {
	f, err := Open(path, encoding)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ReadStations(f, cols)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return recs, nil
}

// LoadConnections opens path with the given encoding and reads connection rows.
func LoadConnections(path, encoding string, cols ConnectionColumns) ([]builder.ConnectionRecord, error) {
	f, err := Open(path, encoding)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ReadConnections(f, cols)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return recs, nil
}

// Open opens path and decodes it to UTF-8. Supported encodings: "" / "utf-8",
// "latin1" / "iso-8859-1", "windows-1252".
func Open(path, encoding string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open: %w", err)
	}
	r, err := Decode(f, encoding)
	if err != nil {
		f.Close()
		return nil, err
	}

	return readCloser{Reader: r, Closer: f}, nil
}

// Decode wraps r so that it yields UTF-8 for the given source encoding.
func Decode(r io.Reader, encoding string) (io.Reader, error) {
	dec, err := decoderFor(encoding)
	if err != nil {
		return nil, err
	}
	if dec == nil {
		return r, nil
	}

	return dec.NewDecoder().Reader(r), nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

func decoderFor(encoding string) (*charmap.Charmap, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "_", "-")) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}

// readTable parses the header, resolves the wanted columns and returns the data rows.
func readTable(r io.Reader, want ...string) ([][]string, []int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyTable
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loader: header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	idx := make([]int, len(want))
	for i, name := range want {
		p, ok := pos[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = p
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("loader: rows: %w", err)
	}

	return rows, idx, nil
}

// field returns row[i], or "" for short rows.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
