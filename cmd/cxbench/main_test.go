// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Features(t *testing.T) {
	out, logs, err := runArgs(t, "-mode", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "arch="+runtime.GOARCH)
	assert.Contains(t, logs, "cpu features detected")

	_, logs, err = runArgs(t, "-mode", "features", "-q")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRun_FFT(t *testing.T) {
	out, logs, err := runArgs(t, "-mode", "fft", "-sizes", "8,12,64", "-iters", "2", "-warmup", "1", "-dftmax", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "iterative")
	assert.Contains(t, out, "recursive")
	assert.Equal(t, 1, strings.Count(out, "dft"), "dft runs only up to -dftmax")
	assert.Contains(t, logs, "skipping size")
	assert.Contains(t, logs, "size=12")
}

func TestRun_Inverse(t *testing.T) {
	out, logs, err := runArgs(t, "-mode", "inverse", "-count", "200", "-seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "adjugate")
	assert.Contains(t, out, "checked=200")
	assert.NotContains(t, logs, "inverse mismatch")
}

func TestRun_ODE(t *testing.T) {
	out, _, err := runArgs(t, "-mode", "ode", "-q")
	require.NoError(t, err)
	for _, name := range []string{"euler", "rk2", "rk4"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_VerboseAndErrors(t *testing.T) {
	_, logs, err := runArgs(t, "-mode", "features", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=DEBUG")

	_, _, err = runArgs(t, "-mode", "bogus")
	require.ErrorIs(t, err, errUnknownMode)

	_, _, err = runArgs(t, "-nope")
	require.Error(t, err)

	_, _, err = runArgs(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseSizes(t *testing.T) {
	assert.Equal(t, []int{8, 16, 3}, parseSizes(" 8, 16,,x,-4,0,3"))
	assert.Empty(t, parseSizes(""))
}

func TestResolveModes(t *testing.T) {
	m, err := resolveModes("ALL")
	require.NoError(t, err)
	assert.Equal(t, []string{modeFFT, modeInverse, modeODE, modeFeatures}, m)
	m, err = resolveModes("Inverse")
	require.NoError(t, err)
	assert.Equal(t, []string{modeInverse}, m)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, newLogger(&buf, true, true).Enabled(context.Background(), slog.LevelError))
	assert.False(t, newLogger(&buf, false, false).Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, newLogger(&buf, true, false).Enabled(context.Background(), slog.LevelDebug))
}
