// SPDX-License-Identifier: MIT

// Command cxbench exercises the lumen kernels from the command line.
//
// Modes:
//
//	fft       time the FFT strategies (and the reference DFT for small sizes)
//	inverse   cross-check cx.Mat4.Inverse against the pivoted LU in package matrix
//	ode       compare Euler, RK2 and RK4 on y' = y over [0, 1]
//	features  print the CPU features reported by spectral.DetectFeatures
//	all       run every mode in the order above
//
// Usage:
//
//	cxbench -mode fft -sizes 256,1024,4096 -iters 100
//	cxbench -mode inverse -count 10000 -seed 7 -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
)

const (
	modeFFT      = "fft"
	modeInverse  = "inverse"
	modeODE      = "ode"
	modeFeatures = "features"
	modeAll      = "all"
)

var errUnknownMode = errors.New("cxbench: unknown mode")

// config is the parsed command line.
type config struct {
	mode    string
	sizes   []int
	iters   int
	warmup  int
	count   int
	seed    int64
	dftMax  int
	verbose bool
	quiet   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, configures logging and dispatches to the selected mode.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(stderr, cfg.verbose, cfg.quiet)
	rnd := rand.New(rand.NewSource(cfg.seed))

	modes, err := resolveModes(cfg.mode)
	if err != nil {
		return err
	}
	log.Debug("starting", slog.String("mode", cfg.mode), slog.Int64("seed", cfg.seed),
		slog.Any("sizes", cfg.sizes), slog.Int("iters", cfg.iters))

	for _, m := range modes {
		switch m {
		case modeFFT:
			err = runFFT(stdout, log, rnd, cfg)
		case modeInverse:
			err = runInverse(stdout, log, rnd, cfg)
		case modeODE:
			err = runODE(stdout, log)
		case modeFeatures:
			runFeatures(stdout, log)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("cxbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfg      config
		sizeList = fs.String("sizes", "64,256,1024,4096", "comma-separated FFT sizes (powers of two)")
	)
	fs.StringVar(&cfg.mode, "mode", modeAll, "mode: fft, inverse, ode, features, all")
	fs.IntVar(&cfg.iters, "iters", 50, "timed iterations per measurement")
	fs.IntVar(&cfg.warmup, "warmup", 5, "untimed warmup iterations")
	fs.IntVar(&cfg.count, "count", 1000, "random matrices for the inverse cross-check")
	fs.Int64Var(&cfg.seed, "seed", 1, "rng seed")
	fs.IntVar(&cfg.dftMax, "dftmax", 1024, "largest size also timed with the O(N²) DFT")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.quiet, "q", false, "disable logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.sizes = parseSizes(*sizeList)

	return cfg, nil
}

func resolveModes(mode string) ([]string, error) {
	switch strings.ToLower(mode) {
	case modeAll:
		return []string{modeFFT, modeInverse, modeODE, modeFeatures}, nil
	case modeFFT, modeInverse, modeODE, modeFeatures:
		return []string{strings.ToLower(mode)}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownMode, mode)
	}
}

// parseSizes keeps the positive integers of a comma-separated list.
func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
