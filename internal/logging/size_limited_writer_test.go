package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSizeLimitedWriterRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.log")
	writer, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	defer writer.Close()

	chunk := make([]byte, 512*1024)
	for i := 0; i < 3; i++ {
		if _, err := writer.Write(chunk); err != nil {
			t.Fatalf("write chunk %d: %v", i, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() > 1024*1024 {
		t.Fatalf("expected log <= 1MB, got %d", info.Size())
	}
	prev, err := os.Stat(path + ".1")
	if err != nil {
		t.Fatalf("stat rotated log: %v", err)
	}
	if prev.Size() != 1024*1024 {
		t.Fatalf("rotated log size = %d, want %d", prev.Size(), 1024*1024)
	}
}

func TestSizeLimitedWriterReopensAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bingo.log")
	writer, err := newSizeLimitedWriter(path, 0)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if _, err := writer.Write([]byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := writer.Write([]byte("second\n")); err != nil {
		t.Fatalf("write after close: %v", err)
	}
	_ = writer.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "first\nsecond\n" {
		t.Fatalf("unexpected content %q", string(b))
	}
}
