// Package percolate models random site percolation on an N×N grid and
// estimates its threshold by Monte Carlo simulation.
//
// Subpackages, leaf first:
//
//	unionfind/   — weighted union-find with path compression over 0..n-1
//	percolation/ — N×N site grid with virtual top/bottom elements; Open,
//	               IsOpen, IsFull and Percolates in near-constant amortized time
//	stats/       — independent trials, sample mean/stddev and 95% interval,
//	               optionally spread over worker goroutines
//	cmd/percstats — environment-configured driver that logs an estimate
//
// Quick ASCII example (□ open, ■ blocked):
//
//	■ □ ■
//	■ □ □    percolates: the open path runs from row 1 to row 3
//	■ ■ □
//
//	go get github.com/katalvlaran/percolate
package percolate
