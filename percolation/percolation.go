package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/unionfind"
)

// neighborOffsets lists the 4-connected (row, col) deltas: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Percolation is an N×N grid of sites, all blocked at construction.
type Percolation struct {
	n         int
	open      []bool // row-major, (row-1)*n + (col-1)
	openCount int
	uf        *unionfind.UnionFind
	top       int
	bottom    int
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n < 1 or if n²+2 elements do not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidArgument)
	}
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("New(%d): n²+2 overflows int: %w", n, ErrInvalidArgument)
	}
	uf, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", n, err)
	}

	return &Percolation{
		n:      n,
		open:   make([]bool, n*n),
		uf:     uf,
		top:    0,
		bottom: n*n + 1,
	}, nil
}

// Size returns the grid dimension N.
// Complexity: O(1).
func (p *Percolation) Size() int {
	return p.n
}

// NumberOfOpenSites returns how many distinct sites are open; reopening a
// site does not count twice.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.openCount
}

// Open opens site (row, col) and connects it to every open neighbor and,
// for border rows, to the virtual top or bottom. Opening an open site again
// leaves the observable state unchanged.
// Returns ErrIndexOutOfRange without mutating anything if (row, col) is
// outside the grid.
// Complexity: O(α(n²)) amortized, at most 6 unions.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return fmt.Errorf("Open: %w", err)
	}

	cell := (row-1)*p.n + (col - 1)
	if !p.open[cell] {
		p.open[cell] = true
		p.openCount++
	}

	site := p.index(row, col)
	if row == 1 {
		if err := p.uf.Union(site, p.top); err != nil {
			return fmt.Errorf("Open: %w", err)
		}
	}
	if row == p.n {
		if err := p.uf.Union(site, p.bottom); err != nil {
			return fmt.Errorf("Open: %w", err)
		}
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !p.inBounds(r, c) || !p.open[(r-1)*p.n+(c-1)] {
			continue
		}
		if err := p.uf.Union(p.index(r, c), site); err != nil {
			return fmt.Errorf("Open: %w", err)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrIndexOutOfRange if (row, col) is outside the grid.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, fmt.Errorf("IsOpen: %w", err)
	}

	return p.open[(row-1)*p.n+(col-1)], nil
}

// IsFull reports whether site (row, col) is connected to the top row through
// open sites. Blocked sites are never full.
// Returns ErrIndexOutOfRange if (row, col) is outside the grid; the
// union-find is not queried in that case.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, fmt.Errorf("IsFull: %w", err)
	}

	return p.uf.Connected(p.top, p.index(row, col))
}

// Percolates reports whether some open path joins the top row to the bottom row.
// It is a single query between the virtual top and bottom; no grid scan.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	// top and bottom are always valid elements.
	ok, _ := p.uf.Connected(p.top, p.bottom)
	return ok
}

// index maps a 1-indexed site to its union-find element in [1, n²].
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + col
}

func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

func (p *Percolation) validate(row, col int) error {
	if !p.inBounds(row, col) {
		return fmt.Errorf("site (%d,%d) not in [1,%d]: %w", row, col, p.n, ErrIndexOutOfRange)
	}

	return nil
}
