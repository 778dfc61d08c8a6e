// SPDX-License-Identifier: MIT

package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lumen/spectral"
)

// benchmarkTransform runs f over a seeded n-point signal b.N times.
func benchmarkTransform(b *testing.B, f transform, n int) {
	x := randomSignal(n, 1)
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := f(x); err != nil {
			b.Fatalf("transform failed: %v", err)
		}
	}
}

func BenchmarkFFTIterative_1024(b *testing.B) { benchmarkTransform(b, spectral.FFTIterative, 1024) }
func BenchmarkFFTRecursive_1024(b *testing.B) { benchmarkTransform(b, spectral.FFTRecursive, 1024) }
func BenchmarkFFTIterative_65536(b *testing.B) {
	benchmarkTransform(b, spectral.FFTIterative, 1<<16)
}

func BenchmarkDFT_256(b *testing.B) {
	benchmarkTransform(b, func(x []complex128) ([]complex128, error) {
		return spectral.DFT(x)
	}, 256)
}
