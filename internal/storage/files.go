// Package storage reads and writes Markdown documents on the local file system.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/markdowntoc/internal/apperr"
	"github.com/starford/markdowntoc/internal/checksum"
	"github.com/starford/markdowntoc/internal/models"
)

const markdownExt = ".md"

// Files loads documents from paths given on the command line and writes
// patched documents back in place.
type Files struct {
	logger *slog.Logger
}

// NewFiles creates a file-backed document source and sink.
func NewFiles(logger *slog.Logger) *Files {
	return &Files{logger: logger}
}

// IsMarkdown reports whether path has a .md extension (case-insensitive).
func IsMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), markdownExt)
}

// Documents reads every named Markdown file. Directories are expanded to the
// Markdown files beneath them. Non-Markdown and unreadable paths are logged
// and skipped.
func (f *Files) Documents(ctx context.Context, names []string) ([]models.Document, error) {
	var out []models.Document
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		paths, err := f.expand(name)
		if err != nil {
			f.logger.Warn("path cannot be read, ignoring",
				slog.String("path", name),
				slog.String("error", err.Error()))
			continue
		}

		for _, p := range paths {
			doc, err := f.Load(p)
			switch {
			case errors.Is(err, apperr.ErrUnsupported):
				f.logger.Warn("not a Markdown file, ignoring", slog.String("path", p))
			case err != nil:
				f.logger.Warn("file doesn't exist or cannot be read, ignoring",
					slog.String("path", p),
					slog.String("error", err.Error()))
			default:
				out = append(out, *doc)
			}
		}
	}
	return out, nil
}

// Load reads a single Markdown file into a Document.
func (f *Files) Load(path string) (*models.Document, error) {
	if !IsMarkdown(path) {
		return nil, fmt.Errorf("storage: load %s: %w", path, apperr.ErrUnsupported)
	}
	data, err := f.Read(path)
	if err != nil {
		return nil, err
	}
	return &models.Document{
		ID:       path,
		Name:     path,
		Text:     string(data),
		Checksum: checksum.Sum(data),
	}, nil
}

// Save writes text over the document's file. The summary has no place in a
// plain file and is ignored. If the file changed since it was loaded, Save
// returns apperr.ErrConflict and leaves it untouched.
func (f *Files) Save(_ context.Context, doc models.Document, text, _ string) error {
	if doc.Checksum != "" {
		current, err := f.Read(doc.ID)
		if err != nil {
			return err
		}
		if checksum.Sum(current) != doc.Checksum {
			return fmt.Errorf("storage: save %s: %w", doc.ID, apperr.ErrConflict)
		}
	}
	return f.Write(doc.ID, []byte(text))
}

// expand returns name itself, or the Markdown files under it if it is a
// directory.
func (f *Files) expand(name string) ([]string, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{name}, nil
	}
	return f.List(name)
}

// List walks dir and returns the path of every .md file, skipping hidden
// directories.
func (f *Files) List(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsMarkdown(d.Name()) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Read returns the raw bytes of a file.
func (f *Files) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename.
// An existing file keeps its permissions.
func (f *Files) Write(path string, content []byte) error {
	dir := filepath.Dir(path)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".markdowntoc-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("storage: chmod temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
