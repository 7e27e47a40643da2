package unionfind

import "fmt"

// UnionFind is a disjoint-set forest over 0..n-1.
// parent[i] == i marks a root; size[i] is only meaningful on roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint sets
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidArgument if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidArgument)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements n fixed at construction.
// Complexity: O(1).
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets. It starts at n and drops by
// one on every Union that merges two different sets.
// Complexity: O(1).
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing i and compresses the path
// from i so that every visited element points straight at that root.
// Returns ErrIndexOutOfRange if i ∉ [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(i int) (int, error) {
	if err := uf.validate(i); err != nil {
		return 0, fmt.Errorf("Find: %w", err)
	}

	return uf.find(i), nil
}

// Union merges the sets containing i and j. It is a no-op when they are
// already in the same set.
// Returns ErrIndexOutOfRange if either index is out of range; nothing is
// mutated in that case.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(i, j int) error {
	if err := uf.validate(i); err != nil {
		return fmt.Errorf("Union: %w", err)
	}
	if err := uf.validate(j); err != nil {
		return fmt.Errorf("Union: %w", err)
	}

	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return nil
	}
	// Smaller tree goes under the larger root; ties keep ri as the root.
	if uf.size[ri] < uf.size[rj] {
		ri, rj = rj, ri
	}
	uf.parent[rj] = ri
	uf.size[ri] += uf.size[rj]
	uf.count--

	return nil
}

// Connected reports whether i and j are in the same set.
// Returns ErrIndexOutOfRange if either index is out of range.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(i, j int) (bool, error) {
	if err := uf.validate(i); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	if err := uf.validate(j); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return uf.find(i) == uf.find(j), nil
}

// SizeOf returns the number of elements in the set containing i.
// Returns ErrIndexOutOfRange if i ∉ [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) SizeOf(i int) (int, error) {
	if err := uf.validate(i); err != nil {
		return 0, fmt.Errorf("SizeOf: %w", err)
	}

	return uf.size[uf.find(i)], nil
}

// find is the unchecked two-pass lookup: walk to the root, then repoint
// every element on the path directly at it.
func (uf *UnionFind) find(i int) int {
	root := i
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[i] != root {
		next := uf.parent[i]
		uf.parent[i] = root
		i = next
	}

	return root
}

func (uf *UnionFind) validate(i int) error {
	if i < 0 || i >= len(uf.parent) {
		return fmt.Errorf("index %d not in [0,%d): %w", i, len(uf.parent), ErrIndexOutOfRange)
	}

	return nil
}
