// SPDX-License-Identifier: MIT

// Package matrix is the general N×N dense companion of package cx.
//
// 🚀 What is matrix?
//
//	cx covers the fixed 2x2/3x3/4x4 cases with closed forms. matrix covers
//	everything else with a row-major *Dense and Gaussian elimination:
//	  • Dense: shape-checked At/Set, Clone, Identity
//	  • Kernels: Add, Sub, Scale, Mul, Transpose, MatVec
//	  • Factorization: LU with partial pivoting (PA = LU)
//	  • Solvers: Det, Inverse, Solve built on one LU
//
// ✨ Key properties:
//   - Every public function validates its inputs and returns sentinel errors
//     (errors.Is friendly); nothing panics on user input.
//   - Results are freshly allocated; inputs are never mutated.
//   - Pivoting is deterministic: the first row holding the largest |a[i][k]|
//     wins, so identical inputs give bit-identical outputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lumen/matrix"
//
//	a, _ := matrix.NewDenseFrom(3, 3, []float64{2, 1, 1, 1, 3, 2, 1, 0, 0})
//	det, _ := matrix.Det(a)
//	inv, _ := matrix.Inverse(a)
//	x, _ := matrix.Solve(a, []float64{4, 5, 6})
//
// Performance:
//
//   - LU, Det, Inverse: O(n³) time; Solve: O(n³) + O(n²).
//   - Memory: O(n²) for the factors.
package matrix
