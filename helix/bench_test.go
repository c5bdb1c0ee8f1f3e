package helix_test

import (
	"testing"

	"github.com/katalvlaran/lvhelix/helix"
)

// benchmarkGenerate runs Generate for the reference layout of n strands.
func benchmarkGenerate(b *testing.B, n, segments int) {
	p := helix.DefaultParams(n)
	p.Segments = segments

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := helix.Generate(p); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Double benchmarks the Paired path.
func BenchmarkGenerate_Double(b *testing.B) { benchmarkGenerate(b, 2, 150) }

// BenchmarkGenerate_Dodeca benchmarks the Radial path at the largest page size.
func BenchmarkGenerate_Dodeca(b *testing.B) { benchmarkGenerate(b, 12, 150) }

// BenchmarkGenerate_DodecaFine benchmarks a high-resolution Radial helix.
func BenchmarkGenerate_DodecaFine(b *testing.B) { benchmarkGenerate(b, 12, 5000) }
