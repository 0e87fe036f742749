package devicestore

import (
	"path/filepath"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v err %v", ok, err)
	}
	if err := kv.Set("mvbingo:v1:pub-x--2025-12-22", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set("mvbingo:v1:pub-x--2025-12-22", []byte(`{"version":2}`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	v, ok, err := kv.Get("mvbingo:v1:pub-x--2025-12-22")
	if err != nil || !ok {
		t.Fatalf("Get() ok %v err %v", ok, err)
	}
	if string(v) != `{"version":2}` {
		t.Fatalf("Get() = %q", string(v))
	}
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemoryKVCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	_ = m.Set("k", buf)
	buf[0] = 'z'
	v, _, _ := m.Get("k")
	if string(v) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", string(v))
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.db")
	kv, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	exerciseKV(t, kv)
	if err := kv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get("mvbingo:v1:pub-x--2025-12-22")
	if err != nil || !ok || string(v) != `{"version":2}` {
		t.Fatalf("value did not survive reopen: %q ok %v err %v", string(v), ok, err)
	}
}
