package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/unionfind"
)

// BenchmarkUnion_Chain unions a linear chain of N nodes, the worst case
// without path compression, then resolves every root.
func BenchmarkUnion_Chain(b *testing.B) {
	const N = 100000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := unionfind.New()
		for n := core.NodeID(0); n < N; n++ {
			u.Union(core.NewEdge(n, n+1))
		}
		for n := core.NodeID(0); n <= N; n++ {
			_ = u.Root(n)
		}
	}
}
