// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/katalvlaran/tubemap/network"
	"github.com/katalvlaran/tubemap/report"
	"github.com/katalvlaran/tubemap/route"
	"github.com/katalvlaran/tubemap/stats"
)

// km is a kilometre figure that encodes NaN and ±Inf as null.
type km float64

func (v km) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type summaryResponse struct {
	Count  int `json:"count"`
	Total  km  `json:"total"`
	Mean   km  `json:"mean"`
	StdDev km  `json:"stddev"`
}

func newSummary(s stats.Summary) summaryResponse {
	return summaryResponse{Count: s.Count, Total: km(s.Total), Mean: km(s.Mean), StdDev: km(s.StdDev)}
}

type lineResponse struct {
	Line   string `json:"line"`
	Colour string `json:"colour"`
	summaryResponse
}

// stationResponse carries the map position; Located is false when the
// position is the origin fallback.
type stationResponse struct {
	Name        string             `json:"name"`
	Coordinate  network.Coordinate `json:"coordinate"`
	Located     bool               `json:"located"`
	Lines       []string           `json:"lines"`
	Interchange bool               `json:"interchange"`
}

type connectionResponse struct {
	ID       string `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Distance km     `json:"distance"`
	Line     string `json:"line"`
	Colour   string `json:"colour"`
}

type networkResponse struct {
	Stations    []stationResponse    `json:"stations"`
	Connections []connectionResponse `json:"connections"`
	Summary     summaryResponse      `json:"summary"`
}

type routeResponse struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Found    bool        `json:"found"`
	Distance km          `json:"distance"`
	Stations []string    `json:"stations,omitempty"`
	Hops     []route.Hop `json:"hops,omitempty"`
	Lines    []string    `json:"lines,omitempty"`
	Colour   string      `json:"colour,omitempty"`
}

func newRouteResponse(from, to string, r *route.Route, d float64) routeResponse {
	resp := routeResponse{From: from, To: to, Distance: km(d)}
	if r == nil {
		return resp
	}
	resp.Found = true
	resp.Stations = r.Stations
	resp.Hops = r.Hops
	resp.Lines = r.Lines()
	resp.Colour = report.RouteColour

	return resp
}

type distanceResponse struct {
	Name     string `json:"name"`
	Distance km     `json:"distance"`
}

type reachResponse struct {
	Name  string `json:"name"`
	Stops int    `json:"stops"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
