package writers

import (
	"io"
	"os"
)

// StdoutName selects standard output instead of a file path.
const StdoutName = "-"

// LazyWriteCloser delays opening its destination until the first Write, so
// an aborted session never leaves an empty export behind.
type LazyWriteCloser struct {
	open   func() (io.WriteCloser, error)
	writer io.WriteCloser
}

// NewLazyWriteCloser calls open once, on the first Write.
func NewLazyWriteCloser(open func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{open: open}
}

// Open returns stdout for "-", otherwise a lazily created, truncated file.
func Open(path string) io.WriteCloser {
	if path == StdoutName {
		return nopCloser{os.Stdout}
	}
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	})
}

func (f *LazyWriteCloser) Write(p []byte) (int, error) {
	if f.writer == nil {
		w, err := f.open()
		if err != nil {
			return 0, err
		}
		f.writer = w
	}
	return f.writer.Write(p)
}

// Close closes the destination if it was ever opened.
func (f *LazyWriteCloser) Close() error {
	if f.writer != nil {
		return f.writer.Close()
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
