package kv_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"inward/internal/platform/kv"
)

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir(), zap.NewNop())

	store.Set("sample", map[string]any{"answer": 42})
	raw, ok := store.Get("sample")
	if !ok {
		t.Fatalf("expected value after set")
	}
	decoded := map[string]int{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode stored value: %v", err)
	}
	if decoded["answer"] != 42 {
		t.Fatalf("expected 42, got %d", decoded["answer"])
	}
}

func TestGetReportsAbsenceForMissingAndCorruptKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := kv.NewFileStore(dir, zap.NewNop())

	if _, ok := store.Get("missing"); ok {
		t.Fatalf("missing key must report absence")
	}
	if err := os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, ok := store.Get("corrupt"); ok {
		t.Fatalf("corrupt value must report absence, not surface an error")
	}
}

func TestRemoveIsIdempotentAndClearTouchesOnlyGivenKeys(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir(), zap.NewNop())

	store.Remove("never-written")

	store.Set("owned-a", 1)
	store.Set("owned-b", 2)
	store.Set("foreign", 3)

	store.Clear("owned-a", "owned-b")
	if _, ok := store.Get("owned-a"); ok {
		t.Fatalf("owned-a must be cleared")
	}
	if _, ok := store.Get("owned-b"); ok {
		t.Fatalf("owned-b must be cleared")
	}
	if _, ok := store.Get("foreign"); !ok {
		t.Fatalf("clear must not touch keys it was not given")
	}
}
