// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lumen/cx"
	"github.com/katalvlaran/lumen/matrix"
)

// inverseTolerance bounds the relative disagreement reported as a warning.
const inverseTolerance = 1e-6

type inverseStats struct {
	checked, singular int
	maxRel            float64
	worst             cx.Mat4
	cxTime, luTime    time.Duration
}

// runInverse inverts random 4x4 matrices with the closed-form adjugate and
// with pivoted LU, and reports the largest relative difference.
func runInverse(w io.Writer, log *slog.Logger, rnd *rand.Rand, cfg config) error {
	var st inverseStats
	for i := 0; i < cfg.count; i++ {
		var m cx.Mat4
		for k := range m {
			m[k] = cx.Real(2*rnd.Float64() - 1)
		}
		if err := compareInverse(m, &st); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%10s  %12s\n", "method", "ns/op")
	fmt.Fprintf(w, "%10s  %12.1f\n", "adjugate", perOp(st.cxTime, st.checked))
	fmt.Fprintf(w, "%10s  %12.1f\n", "lu", perOp(st.luTime, st.checked))
	fmt.Fprintf(w, "checked=%d singular=%d max rel diff=%.3g\n", st.checked, st.singular, st.maxRel)

	if st.maxRel > inverseTolerance {
		log.Warn("inverse mismatch", slog.Float64("maxRel", st.maxRel), slog.String("matrix", st.worst.String()))
	}

	return nil
}

func compareInverse(m cx.Mat4, st *inverseStats) error {
	start := time.Now()
	inv, cxErr := m.InverseChecked()
	st.cxTime += time.Since(start)

	start = time.Now()
	dinv, luErr := matrix.Inverse(m.Dense())
	st.luTime += time.Since(start)

	if errors.Is(cxErr, cx.ErrSingular) || errors.Is(luErr, matrix.ErrSingular) {
		st.singular++
		return nil
	}
	if luErr != nil {
		return luErr
	}
	ref, err := cx.Mat4FromDense(dinv)
	if err != nil {
		return err
	}

	st.checked++
	if d := relDiff(inv, ref); d > st.maxRel {
		st.maxRel, st.worst = d, m
	}

	return nil
}

// relDiff returns max |a-b| / max(1, max |b|).
func relDiff(a, b cx.Mat4) float64 {
	var diff, scale float64 = 0, 1
	for i := range a {
		diff = math.Max(diff, math.Abs(float64(a[i]-b[i])))
		scale = math.Max(scale, math.Abs(float64(b[i])))
	}

	return diff / scale
}

func perOp(d time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}

	return float64(d.Nanoseconds()) / float64(n)
}
