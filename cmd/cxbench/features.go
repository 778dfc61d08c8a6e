// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lumen/spectral"
)

func runFeatures(w io.Writer, log *slog.Logger) {
	f := spectral.DetectFeatures()
	fmt.Fprintf(w, "arch=%s sse2=%t avx2=%t avx512=%t neon=%t\n",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasAVX512, f.HasNEON)
	log.Info("cpu features detected", slog.String("arch", f.Architecture))
}
