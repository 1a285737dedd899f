// SPDX-License-Identifier: MIT
// Package route_test provides runnable examples of route queries.
package route_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubemap/network"
	"github.com/katalvlaran/tubemap/route"
)

// ExampleFindBestRoute shows that two short hops beat a long direct connection.
func ExampleFindBestRoute() {
	n := network.New()
	for _, s := range []string{"Hyde Park Corner", "Green Park", "Piccadilly Circus"} {
		_ = n.AddStation(s)
	}
	_, _ = n.AddConnection("Hyde Park Corner", "Green Park", 1.0, "Piccadilly")
	_, _ = n.AddConnection("Green Park", "Piccadilly Circus", 0.5, "Piccadilly")
	_, _ = n.AddConnection("Hyde Park Corner", "Piccadilly Circus", 2.0, "Bus")
	n.Seal()

	r, d, err := route.FindBestRoute(n, "Hyde Park Corner", "Piccadilly Circus")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range r.Hops {
		fmt.Printf("%s -> %s: %g Kms\n", h.From, h.To, h.Distance)
	}
	fmt.Printf("Total distance: %.2f Kms\n", d)
	// Output:
	// Hyde Park Corner -> Green Park: 1 Kms
	// Green Park -> Piccadilly Circus: 0.5 Kms
	// Total distance: 1.50 Kms
}

// ExampleFindBestRoute_unknownStation shows the error for a station outside the network.
func ExampleFindBestRoute_unknownStation() {
	n := network.New()
	_ = n.AddStation("Bank")
	n.Seal()

	_, _, err := route.FindBestRoute(n, "Bank", "Atlantis")
	fmt.Println(errors.Is(err, route.ErrUnknownStation))
	fmt.Println(err)
	// Output:
	// true
	// route: unknown station: "Atlantis"
}
