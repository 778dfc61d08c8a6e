// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/katalvlaran/lumen/spectral"
)

type fftResult struct {
	method    string
	nsPerOp   float64
	roundTrip float64 // max |x - inverse(forward(x))|
}

type fftMethod struct {
	name    string
	forward func([]complex128) ([]complex128, error)
	inverse func([]complex128) ([]complex128, error)
	pow2    bool
}

var fftMethods = []fftMethod{
	{"iterative", spectral.FFTIterative, spectral.IFFTIterative, true},
	{"recursive", spectral.FFTRecursive, spectral.IFFTRecursive, true},
	{
		"dft",
		func(x []complex128) ([]complex128, error) { return spectral.DFT(x, spectral.WithNoSnap()) },
		func(x []complex128) ([]complex128, error) { return spectral.InverseDFT(x, spectral.WithNoSnap()) },
		false,
	},
}

func runFFT(w io.Writer, log *slog.Logger, rnd *rand.Rand, cfg config) error {
	fmt.Fprintf(w, "iters=%d warmup=%d\n", cfg.iters, cfg.warmup)
	fmt.Fprintf(w, "%8s  %10s  %12s  %12s\n", "size", "method", "ns/op", "roundtrip")

	for _, n := range cfg.sizes {
		if !spectral.IsPowerOfTwo(n) {
			log.Warn("skipping size", slog.Int("size", n), slog.String("reason", "not a power of two"))
			continue
		}
		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(2*rnd.Float64()-1, 2*rnd.Float64()-1)
		}

		results := make([]fftResult, 0, len(fftMethods))
		for _, m := range fftMethods {
			if !m.pow2 && n > cfg.dftMax {
				log.Debug("dft skipped", slog.Int("size", n), slog.Int("dftmax", cfg.dftMax))
				continue
			}
			res, err := benchmarkFFT(m, src, cfg.iters, cfg.warmup)
			if err != nil {
				return err
			}
			results = append(results, res)
		}

		sort.Slice(results, func(i, j int) bool {
			return results[i].nsPerOp < results[j].nsPerOp
		})

		for _, res := range results {
			fmt.Fprintf(w, "%8d  %10s  %12.1f  %12.3g\n", n, res.method, res.nsPerOp, res.roundTrip)
		}
		log.Debug("size done", slog.Int("size", n), slog.String("fastest", results[0].method))
	}

	return nil
}

func benchmarkFFT(m fftMethod, src []complex128, iters, warmup int) (fftResult, error) {
	freq, err := m.forward(src)
	if err != nil {
		return fftResult{}, err
	}
	back, err := m.inverse(freq)
	if err != nil {
		return fftResult{}, err
	}
	var maxErr float64
	for i := range src {
		if d := cmplx.Abs(src[i] - back[i]); d > maxErr {
			maxErr = d
		}
	}

	for i := 0; i < warmup; i++ {
		if _, err = m.forward(src); err != nil {
			return fftResult{}, err
		}
	}

	runtime.GC()

	start := time.Now()

	for i := 0; i < iters; i++ {
		if _, err = m.forward(src); err != nil {
			return fftResult{}, err
		}
	}

	elapsed := time.Since(start)

	var ns float64
	if iters > 0 {
		ns = float64(elapsed.Nanoseconds()) / float64(iters)
	}

	return fftResult{method: m.name, nsPerOp: ns, roundTrip: maxErr}, nil
}
