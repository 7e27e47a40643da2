package percolation_test

import (
	"testing"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/stretchr/testify/require"
)

// snapshot reads the open state of every site into a 0-indexed matrix.
func snapshot(t *testing.T, p *percolation.Percolation) [][]bool {
	t.Helper()
	n := p.Size()
	grid := make([][]bool, n)
	for r := 1; r <= n; r++ {
		grid[r-1] = make([]bool, n)
		for c := 1; c <= n; c++ {
			ok, err := p.IsOpen(r, c)
			require.NoError(t, err)
			grid[r-1][c-1] = ok
		}
	}
	return grid
}

// reachableFromTop runs a BFS over open sites seeded with every open site in
// row 0. It is the slow reference the union-find answers are checked against.
// Time: O(N²), Memory: O(N²).
func reachableFromTop(grid [][]bool) [][]bool {
	n := len(grid)
	seen := make([][]bool, n)
	for r := range seen {
		seen[r] = make([]bool, n)
	}
	var queue [][2]int
	for c := 0; c < n; c++ {
		if grid[0][c] {
			seen[0][c] = true
			queue = append(queue, [2]int{0, c})
		}
	}
	offsets := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			r, c := u[0]+d[0], u[1]+d[1]
			if r < 0 || r >= n || c < 0 || c >= n || !grid[r][c] || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue = append(queue, [2]int{r, c})
		}
	}
	return seen
}

// pathExists reports whether the BFS reached any site in the last row.
func pathExists(grid [][]bool) bool {
	seen := reachableFromTop(grid)
	for _, ok := range seen[len(seen)-1] {
		if ok {
			return true
		}
	}
	return false
}
