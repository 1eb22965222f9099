package writers

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

type recordingCloser struct {
	data   []byte
	closed bool
}

func (r *recordingCloser) Write(p []byte) (int, error) {
	r.data = append(r.data, p...)
	return len(p), nil
}

func (r *recordingCloser) Close() error {
	r.closed = true
	return nil
}

func TestLazyWriteCloserOpensOnFirstWrite(t *testing.T) {
	opens := 0
	dst := &recordingCloser{}
	w := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		opens++
		return dst, nil
	})
	if opens != 0 {
		t.Fatalf("opened before first write")
	}
	for _, s := range []string{"sheets:", "\n"} {
		if _, err := w.Write([]byte(s)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if opens != 1 {
		t.Fatalf("expected a single open, got %d", opens)
	}
	if string(dst.data) != "sheets:\n" || !dst.closed {
		t.Fatalf("unexpected destination state: %q closed=%v", dst.data, dst.closed)
	}
}

func TestOpenDoesNotCreateUnwrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := Open(path).Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file, stat returned %v", err)
	}

	w := Open(path)
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "ok" {
		t.Fatalf("expected file contents %q, got %q (%v)", "ok", got, err)
	}
}
