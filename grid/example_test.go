// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/hoverlab/aeropath/grid"
)

// ExampleGrid_Move demonstrates the single-move cost rule: a step onto a
// taller building charges the climb to both time and battery, while lower
// terrain is overflown for the base cost of 1.
//
// Complexity: O(1) per move.
func ExampleGrid_Move() {
	// A 1×3 strip: start above elevation 0, a tower of 3, then flat ground.
	g, _ := grid.New([][]int64{{0, 3, 1}}, 9, 1, nil)

	s := g.Start()
	fmt.Printf("start:   battery=%d altitude=%d\n", s.Battery, s.Altitude)

	// Climb onto the tower: cost 1 + (3-0) = 4.
	s, cost, _ := g.Move(s, 0, 1)
	fmt.Printf("climb:   cost=%d battery=%d altitude=%d\n", cost, s.Battery, s.Altitude)

	// Fly over the lower cell at unchanged altitude: cost 1.
	s, cost, _ = g.Move(s, 0, 1)
	fmt.Printf("flyover: cost=%d battery=%d altitude=%d\n", cost, s.Battery, s.Altitude)

	// Output:
	// start:   battery=9 altitude=0
	// climb:   cost=4 battery=5 altitude=3
	// flyover: cost=1 battery=4 altitude=3
}
