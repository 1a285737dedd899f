// Package tubemap loads a transit network from a station table and a
// connection table, computes network statistics and answers best-route queries.
//
// What is inside:
//
//	network  sealed undirected multigraph: stations, one connection per line
//	builder  record validation, zone filter and missing-coordinate policy
//	loader   CSV tables (utf-8 / latin-1) to builder records
//	stats    total, mean and sample standard deviation of connection distances
//	route    shortest route by distance with deterministic tie-breaking
//	reach    stop-count reachability and connected components
//	report   text output and the line colour palette
//
// The tubemap command (cmd/tubemap) answers one query from the command line or
// serves the JSON API in internal/httpapi.
//
// Quick start:
//
//	coords, _ := builder.Coordinates(stationRecords, "1")
//	n, rep, err := builder.Build(coords, connectionRecords)
//	r, d, err := route.FindBestRoute(n, "CHANCERY LANE", "OLD STREET")
//	sum := stats.OfNetwork(n)
//
// Every exported query is safe for concurrent use once the network is sealed.
package tubemap
