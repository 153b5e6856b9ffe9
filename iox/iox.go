// Package iox provides I/O helpers for input selection and resource cleanup.
package iox

import (
	"io"
	"os"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// OpenInput opens path for reading. Stdio selects os.Stdin, which is
// returned wrapped so that closing it is a no-op.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// CreateOutput creates or truncates path for writing. Stdio selects
// os.Stdout, which is never closed.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// DiscardClose closes c and discards the error.
// Use in defer statements where close errors are unactionable:
//
//	defer iox.DiscardClose(f)
func DiscardClose(c io.Closer) { _ = c.Close() }

// DiscardErr calls fn and discards the returned error.
// Use for non-Close cleanup calls (e.g. Sync) where errors are unactionable:
//
//	defer iox.DiscardErr(logger.Sync)
func DiscardErr(fn func() error) { _ = fn() }
