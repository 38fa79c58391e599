// Package server implements the companion endpoints for the
// VideoFirstLastFrame node: accepting .mp4 uploads into the host's input
// directory and listing recently touched videos from the input and output
// directories.
package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultRecentLimit caps the recent-files listing.
const DefaultRecentLimit = 50

// ErrNotVideo is returned for uploads that are not .mp4 files.
var ErrNotVideo = errors.New("only .mp4 supported")

// Store is the video library over ComfyUI-style input/output/temp
// directories.
type Store struct {
	inputDir  string
	outputDir string
	tempDir   string
}

// NewStore creates a Store rooted at dir, ensuring the input directory
// exists.  Output and temp are only read, never created.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		inputDir:  filepath.Join(dir, "input"),
		outputDir: filepath.Join(dir, "output"),
		tempDir:   filepath.Join(dir, "temp"),
	}
	if err := os.MkdirAll(s.inputDir, 0o755); err != nil {
		return nil, err
	}
	return s, nil
}

// InputDir returns the directory uploads are saved into.
func (s *Store) InputDir() string {
	return s.inputDir
}

// SaveVideo writes an uploaded .mp4 into the input directory and returns
// the name that was actually used.  The name is reduced to its base to
// prevent path traversal; if a file with that name already exists, a short
// unique suffix is inserted before the extension, so the returned name may
// differ from the one provided.
func (s *Store) SaveVideo(filename string, r io.Reader) (string, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".mp4") {
		return "", ErrNotVideo
	}

	safeName := filepath.Base(filename)
	path := filepath.Join(s.inputDir, safeName)
	if _, err := os.Stat(path); err == nil {
		ext := filepath.Ext(safeName)
		base := strings.TrimSuffix(safeName, ext)
		safeName = fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)
		path = filepath.Join(s.inputDir, safeName)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return safeName, nil
}

// Recent returns the most recently modified .mp4 files from the input and
// output directories, newest first, with each name carrying its directory
// prefix ("input/clip.mp4").  limit <= 0 means DefaultRecentLimit.
func (s *Store) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	type entry struct {
		mtime int64
		name  string
	}

	candidates := []struct {
		prefix string
		dir    string
	}{
		{"input", s.inputDir},
		{"output", s.outputDir},
	}

	entries := make([]entry, 0)
	for _, c := range candidates {
		dirents, err := os.ReadDir(c.dir)
		if err != nil {
			// output may simply not exist yet
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, de := range dirents {
			if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".mp4") {
				continue
			}
			var mtime int64
			if info, err := de.Info(); err == nil {
				mtime = info.ModTime().UnixNano()
			}
			entries = append(entries, entry{mtime: mtime, name: c.prefix + "/" + de.Name()})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].mtime > entries[j].mtime
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	files := make([]string, len(entries))
	for i, e := range entries {
		files[i] = e.name
	}
	return files, nil
}

// Resolve maps a widget value to an on-disk path.  Explicit "input/",
// "output/" and "temp/" prefixes are honored; a plain filename resolves
// against the input directory, which is where drag&drop uploads land.
func (s *Store) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("empty video name")
	}

	lowered := strings.ToLower(strings.ReplaceAll(name, "\\", "/"))
	prefixed := []struct {
		prefix string
		dir    string
	}{
		{"input/", s.inputDir},
		{"output/", s.outputDir},
		{"temp/", s.tempDir},
	}
	for _, p := range prefixed {
		if strings.HasPrefix(lowered, p.prefix) {
			candidate := filepath.Join(p.dir, name[len(p.prefix):])
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}

	candidate := filepath.Join(s.inputDir, name)
	if fileExists(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("video file not found: %s", name)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
