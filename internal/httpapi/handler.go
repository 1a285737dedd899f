// SPDX-License-Identifier: MIT

// Package httpapi serves the loaded network, its statistics and route queries as JSON.
//
//	GET /healthz
//	GET /api/stations
//	GET /api/lines
//	GET /api/stats
//	GET /api/network
//	GET /api/route?from=A&to=B[&avoid=Line]...
//	GET /api/distances?from=A[&avoid=Line]...
//	GET /api/reachable?from=A[&stops=N][&avoid=Line]...
package httpapi

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/katalvlaran/tubemap/network"
	"github.com/katalvlaran/tubemap/reach"
	"github.com/katalvlaran/tubemap/report"
	"github.com/katalvlaran/tubemap/route"
	"github.com/katalvlaran/tubemap/stats"
)

// Handler answers API requests against one sealed network.
type Handler struct {
	network *network.Network
	summary stats.Summary
	lines   []stats.LineSummary
	parts   int
	palette report.Palette
	routes  *cache.Cache
	logger  *zap.Logger
}

// Option customizes NewHandler.
type Option func(*Handler)

// WithCacheTTL sets how long route results are cached. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(h *Handler) {
		if ttl <= 0 {
			h.routes = nil
			return
		}
		h.routes = cache.New(ttl, 2*ttl)
	}
}

// WithPalette sets the line colours reported with lines and connections.
func WithPalette(p report.Palette) Option {
	return func(h *Handler) { h.palette = p }
}

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler precomputes statistics for n. Defaults: five-minute route cache,
// DefaultPalette, no-op logger.
func NewHandler(n *network.Network, opts ...Option) *Handler {
	h := &Handler{
		network: n,
		summary: stats.OfNetwork(n),
		lines:   stats.ByLine(n),
		parts:   len(reach.Components(n)),
		palette: report.DefaultPalette(),
		routes:  cache.New(5*time.Minute, 10*time.Minute),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Router registers every endpoint on a gorilla/mux router wrapped in recovery and
// request logging.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(recovery(h.logger), requestLogger(h.logger))

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stations", h.Stations).Methods(http.MethodGet)
	api.HandleFunc("/lines", h.Lines).Methods(http.MethodGet)
	api.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	api.HandleFunc("/network", h.Network).Methods(http.MethodGet)
	api.HandleFunc("/route", h.Route).Methods(http.MethodGet)
	api.HandleFunc("/distances", h.Distances).Methods(http.MethodGet)
	api.HandleFunc("/reachable", h.Reachable).Methods(http.MethodGet)

	return r
}

// Health reports liveness together with the network size.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"stations":    h.network.StationCount(),
		"connections": h.network.ConnectionCount(),
		"components":  h.parts,
	})
}

// Stations lists stations sorted by name.
func (h *Handler) Stations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stations": h.stationList(),
	})
}

// Lines lists per-line statistics with each line's colour.
func (h *Handler) Lines(w http.ResponseWriter, _ *http.Request) {
	out := make([]lineResponse, 0, len(h.lines))
	for _, l := range h.lines {
		out = append(out, lineResponse{Line: l.Line, Colour: h.palette.Colour(l.Line), summaryResponse: newSummary(l.Summary)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lines": out,
	})
}

// Stats returns the network-wide distance summary.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newSummary(h.summary))
}

// Network returns everything a map renderer needs in one document.
func (h *Handler) Network(w http.ResponseWriter, _ *http.Request) {
	conns := h.network.Connections()
	out := networkResponse{
		Stations:    h.stationList(),
		Connections: make([]connectionResponse, 0, len(conns)),
		Summary:     newSummary(h.summary),
	}
	for _, c := range conns {
		out.Connections = append(out.Connections, connectionResponse{
			ID:       c.ID,
			From:     c.From,
			To:       c.To,
			Distance: km(c.Distance),
			Line:     c.Line,
			Colour:   h.palette.Colour(c.Line),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Route answers a best-route query. An unknown station is 404; a disconnected pair
// is 200 with found=false.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	avoid := h.network.MatchLines(splitList(q["avoid"])...)

	key := cacheKey("route", append([]string{from, to}, avoid...)...)
	if h.routes != nil {
		if cached, ok := h.routes.Get(key); ok {
			w.Header().Set("X-Cache", "HIT")
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	var opts []route.Option
	if len(avoid) > 0 {
		opts = append(opts, route.WithAvoidLines(avoid...))
	}
	best, d, err := route.FindBestRoute(h.network, from, to, opts...)
	if err != nil {
		var unknown *route.UnknownStationError
		if errors.As(err, &unknown) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Missing: unknown.Names})
			return
		}
		h.logger.Error("route query failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := newRouteResponse(from, to, best, d)
	if h.routes != nil {
		h.routes.SetDefault(key, resp)
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, resp)
}

// Distances returns the least distance from one station to every station,
// sorted by name. Unreachable stations carry a null distance.
func (h *Handler) Distances(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		writeError(w, http.StatusBadRequest, "from is required")
		return
	}
	var opts []route.Option
	if avoid := h.network.MatchLines(splitList(r.URL.Query()["avoid"])...); len(avoid) > 0 {
		opts = append(opts, route.WithAvoidLines(avoid...))
	}

	dist, err := route.Distances(h.network, from, opts...)
	if err != nil {
		var unknown *route.UnknownStationError
		if errors.As(err, &unknown) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Missing: unknown.Names})
			return
		}
		h.logger.Error("distance query failed", zap.String("from", from), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	names := make([]string, 0, len(dist))
	for name := range dist {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]distanceResponse, 0, len(names))
	for _, name := range names {
		out = append(out, distanceResponse{Name: name, Distance: km(dist[name])})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"from":      from,
		"distances": out,
	})
}

// Reachable lists the stations within a number of stops of from, nearest first.
func (h *Handler) Reachable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	if from == "" {
		writeError(w, http.StatusBadRequest, "from is required")
		return
	}
	opts := []reach.Option{reach.WithContext(r.Context())}
	if raw := q.Get("stops"); raw != "" {
		stops, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "stops must be an integer")
			return
		}
		opts = append(opts, reach.WithMaxStops(stops))
	}
	if avoid := h.network.MatchLines(splitList(q["avoid"])...); len(avoid) > 0 {
		opts = append(opts, reach.WithAvoidLines(avoid...))
	}

	res, err := reach.Walk(h.network, from, opts...)
	switch {
	case errors.Is(err, reach.ErrStationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Missing: []string{from}})
		return
	case errors.Is(err, reach.ErrOptionViolation):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Warn("reachability walk aborted", zap.String("from", from), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}

	out := make([]reachResponse, 0, len(res.Order))
	for _, name := range res.Order {
		out = append(out, reachResponse{Name: name, Stops: res.Stops[name]})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"from":     from,
		"stations": out,
	})
}

func (h *Handler) stationList() []stationResponse {
	stations := h.network.Stations()
	out := make([]stationResponse, 0, len(stations))
	for _, s := range stations {
		pos, located := h.network.Position(s.Name)
		out = append(out, stationResponse{
			Name:        s.Name,
			Coordinate:  pos,
			Located:     located,
			Lines:       h.network.LinesAt(s.Name),
			Interchange: h.network.IsInterchange(s.Name),
		})
	}

	return out
}

// splitList flattens repeated and comma-separated values, trimmed, deduplicated and sorted.
func splitList(values []string) []string {
	set := make(map[string]struct{})
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// cacheKey quotes every part so that separators inside station names cannot
// make two queries collide.
func cacheKey(prefix string, params ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, param := range params {
		b.WriteByte(':')
		b.WriteString(strconv.Quote(param))
	}

	return b.String()
}
