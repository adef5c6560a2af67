package kv_test

import (
	"os"
	"path/filepath"
	"testing"

	"leseheft/internal/platform/kv"
)

func TestFileStoreRoundTripAndRemove(t *testing.T) {
	t.Parallel()
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if _, ok, err := store.Get("stats"); err != nil || ok {
		t.Fatalf("expected absent record, got ok=%t err=%v", ok, err)
	}
	if err := store.Set("stats", `{"totalSessions":3}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get("stats")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%t err=%v", ok, err)
	}
	if value != `{"totalSessions":3}` {
		t.Fatalf("value did not round-trip: %s", value)
	}
	if err := store.Remove("stats"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get("stats"); ok {
		t.Fatalf("record still present after remove")
	}
	if err := store.Remove("stats"); err != nil {
		t.Fatalf("remove of absent key must be a no-op, got %v", err)
	}
}

func TestOpenFallsBackToMemoryWhenDirUnusable(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}

	// A path below a regular file can never become a directory.
	store := kv.Open(filepath.Join(blocker, "state"))
	if err := store.Set("sessions", "[]"); err != nil {
		t.Fatalf("memory fallback set: %v", err)
	}
	value, ok, err := store.Get("sessions")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("memory fallback get: %q ok=%t err=%v", value, ok, err)
	}
}
