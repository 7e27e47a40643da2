package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
)

// BenchmarkUnionConnected measures random unions followed by a query
// on 1e5 elements.
// Complexity: O(α(n)) per operation.
func BenchmarkUnionConnected(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf, _ := unionfind.New(n)
		for _, p := range pairs {
			_ = uf.Union(p[0], p[1])
		}
		_, _ = uf.Connected(0, n-1)
	}
}
