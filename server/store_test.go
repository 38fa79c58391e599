package server

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveVideoPicksUniqueName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	first, err := store.SaveVideo("clip.mp4", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if first != "clip.mp4" {
		t.Errorf("expected clip.mp4, got %q", first)
	}

	second, err := store.SaveVideo("clip.mp4", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if second == first {
		t.Error("expected a distinct name for the colliding upload")
	}
	if !strings.HasPrefix(second, "clip_") || !strings.HasSuffix(second, ".mp4") {
		t.Errorf("unexpected collision name %q", second)
	}

	// the first upload was not overwritten
	data, err := os.ReadFile(filepath.Join(store.InputDir(), "clip.mp4"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one" {
		t.Errorf("first upload was clobbered: %q", data)
	}
}

func TestSaveVideoRejectsNonMP4(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := store.SaveVideo("clip.mov", strings.NewReader("x")); !errors.Is(err, ErrNotVideo) {
		t.Errorf("expected ErrNotVideo, got %v", err)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for _, name := range []string{"a.mp4", "b.mp4", "c.mp4"} {
		path := filepath.Join(dir, "input", name)
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		base = base.Add(time.Minute)
		if err := os.Chtimes(path, base, base); err != nil {
			t.Fatal(err)
		}
	}

	files, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if files[0] != "input/c.mp4" || files[1] != "input/b.mp4" {
		t.Errorf("expected newest first, got %v", files)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "output"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "input", "in.mp4"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(dir, "output", "out.mp4"), []byte("x"), 0o644)

	cases := []struct {
		name string
		want string
	}{
		{"in.mp4", filepath.Join(dir, "input", "in.mp4")},
		{"input/in.mp4", filepath.Join(dir, "input", "in.mp4")},
		{"output/out.mp4", filepath.Join(dir, "output", "out.mp4")},
		{"  in.mp4  ", filepath.Join(dir, "input", "in.mp4")},
	}
	for _, tc := range cases {
		got, err := store.Resolve(tc.name)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}

	if _, err := store.Resolve("missing.mp4"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := store.Resolve(""); err == nil {
		t.Error("expected error for empty name")
	}
}
