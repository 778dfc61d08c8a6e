// SPDX-License-Identifier: MIT

package cx_test

import (
	"testing"

	"github.com/katalvlaran/lumen/cx"
)

// Sinks keep the compiler from discarding benchmarked results.
var (
	sinkMat4 cx.Mat4
	sinkQuat cx.Quat
	sinkVec3 cx.Vec3
)

func BenchmarkMat4_Mul(b *testing.B) {
	rng := seeded(1)
	x, y := randomInvertible4(rng), randomInvertible4(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = x.Mul(y)
	}
}

func BenchmarkMat4_Inverse(b *testing.B) {
	m := randomInvertible4(seeded(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Inverse()
	}
}

func BenchmarkQuat_Slerp(b *testing.B) {
	p := cx.QuatFromAxisAngle(cx.Vec3UnitY, 0.3)
	q := cx.QuatFromAxisAngle(cx.Vec3{1, 1, 0}, 2.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkQuat = p.Slerp(q, 0.37)
	}
}

func BenchmarkQuat_RotateVec3(b *testing.B) {
	q := cx.QuatFromAxisAngle(cx.Vec3{1, 2, 3}, 0.9)
	v := cx.Vec3{4, 5, 6}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec3 = q.RotateVec3(v)
	}
}
