// Package render provides shared output-format conversion for the
// visualization sinks. SVG is the native format; PNG and PDF are produced
// from it with rsvg-convert.
package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"sync"

	"github.com/nilesh-iiita/hiveplot/pkg/errors"
)

// converterBin is the external SVG converter from librsvg.
const converterBin = "rsvg-convert"

// lookupConverter resolves the converter binary once per process.
var lookupConverter = sync.OnceValues(func() (string, error) {
	return exec.LookPath(converterBin)
})

// ToPDF converts SVG bytes to PDF.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given raster scale factor.
// A scale of 2.0 doubles the pixel dimensions.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func convert(svg []byte, format string, extra ...string) ([]byte, error) {
	bin, err := lookupConverter()
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(bin, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return nil, fmt.Errorf("%s %s: %w: %s", converterBin, format, err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", converterBin, format, err)
	}
	return out.Bytes(), nil
}
