package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileTokenStore(path)

	// Missing file means logged out, not an error.
	token, err := s.Load(ctx)
	if err != nil || token != "" {
		t.Fatalf("Load on missing file = (%q, %v), want empty", token, err)
	}

	if err := s.Save(ctx, "T1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if token, err = s.Load(ctx); err != nil || token != "T1" {
		t.Fatalf("Load = (%q, %v), want T1", token, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}

	if err := s.Save(ctx, "T2"); err != nil {
		t.Fatalf("overwrite Save returned error: %v", err)
	}
	if token, _ = s.Load(ctx); token != "T2" {
		t.Errorf("Load after overwrite = %q, want T2", token)
	}
}

func TestFileTokenStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	_ = s.Save(ctx, "T1")
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
	if token, _ := s.Load(ctx); token != "" {
		t.Errorf("Load after Clear = %q, want empty", token)
	}
}

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()

	if token, _ := s.Load(ctx); token != "" {
		t.Error("fresh store not empty")
	}
	_ = s.Save(ctx, "T1")
	if token, _ := s.Load(ctx); token != "T1" {
		t.Error("Save/Load mismatch")
	}
	_ = s.Clear(ctx)
	_ = s.Clear(ctx)
	if token, _ := s.Load(ctx); token != "" {
		t.Error("Clear left token behind")
	}
}
