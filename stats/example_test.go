package stats_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolate/stats"
)

// ExampleNew estimates the threshold on a 1×1 grid, where every trial opens
// its only site. The single-trial interval collapses onto the mean.
func ExampleNew() {
	s, _ := stats.New(1, 1, rand.New(rand.NewSource(1)))
	fmt.Println("mean:", s.Mean())
	fmt.Println("interval:", s.ConfidenceLo(), s.ConfidenceHi())

	// Output:
	// mean: 1
	// interval: 1 1
}
