package internal

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/markdowntoc/internal/testutil"
)

func runApp(t *testing.T, cfg *Config, names ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg.App.LogLevel = slog.LevelError
	err := Run(context.Background(),
		WithConfig(cfg),
		WithNames(names...),
		WithOutput(&out),
		WithErrOutput(&errOut),
	)
	return out.String(), errOut.String(), err
}

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background(), WithNames("a.md")); err == nil {
		t.Fatal("expected error without config")
	}
}

func TestRun_RequiresNames(t *testing.T) {
	_, _, err := runApp(t, NewDefaultConfig())
	if !errors.Is(err, ErrNoNames) {
		t.Fatalf("error = %v, want ErrNoNames", err)
	}
}

func TestRun_WritesFiles(t *testing.T) {
	dir := testutil.MarkdownDir(t, map[string]string{
		"doc.md":      "Title\n# My Header\n### Deep\nBody\n",
		"has-toc.md":  "Title\n# Table of Contents\n# X y\n",
		"notes.txt":   "Title\n# Header\n",
		"no-heads.md": "Title\nplain\n",
	})
	names := []string{
		filepath.Join(dir, "doc.md"),
		filepath.Join(dir, "has-toc.md"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "no-heads.md"),
	}

	_, summary, err := runApp(t, NewDefaultConfig(), names...)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "doc.md"))
	want := "Title\n\n# Table of Contents\n* [My Header](#My-Header)\n\t* [Deep](#Deep)\n\n# My Header\n### Deep\nBody\n"
	if string(got) != want {
		t.Errorf("doc.md = %q, want %q", got, want)
	}
	untouched, _ := os.ReadFile(filepath.Join(dir, "has-toc.md"))
	if string(untouched) != "Title\n# Table of Contents\n# X y\n" {
		t.Errorf("has-toc.md was modified: %q", untouched)
	}
	if !strings.Contains(summary, "3 document(s): 1 written, 0 printed, 2 skipped") {
		t.Errorf("summary = %q", summary)
	}
}

func TestRun_NoWritePrints(t *testing.T) {
	dir := testutil.MarkdownDir(t, map[string]string{"doc.md": "Title\n# One\n"})
	path := filepath.Join(dir, "doc.md")
	cfg := NewDefaultConfig()
	cfg.TOC.Write = false
	cfg.TOC.Type = "gitlab"

	out, _, err := runApp(t, cfg, path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "# Table of Contents\n* [One](#one)\n\n" {
		t.Errorf("output = %q", out)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "Title\n# One\n" {
		t.Errorf("file modified in no-write mode: %q", got)
	}
}

func TestRun_BearMissingDatabaseIsFatal(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.TOC.Type = "bear"
	cfg.Bear.DatabasePath = filepath.Join(t.TempDir(), "missing.sqlite")
	if _, _, err := runApp(t, cfg, "Note"); err == nil {
		t.Fatal("expected fatal error for missing Bear database")
	}
}

func TestRun_BearUpdatesNote(t *testing.T) {
	path, notes := testutil.BearDB(t,
		testutil.Note{Title: "Plan", Text: "Plan\n#work\n# Goals\n## Next Steps\n"},
		testutil.Note{Title: "Other", Text: "Other\n# Goals\n"},
	)
	cfg := NewDefaultConfig()
	cfg.TOC.Type = "bear"
	cfg.Bear.DatabasePath = path

	_, summary, err := runApp(t, cfg, "work")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	row := testutil.ReadBearNote(t, path, notes[0].ID)
	if !strings.HasPrefix(row.Text, "Plan\n#work\n\n# Table of Contents\n* [Goals](bear://x-callback-url/open-note?id="+notes[0].ID+"&header=Goals)\n") {
		t.Errorf("text = %q", row.Text)
	}
	if !strings.Contains(row.Text, "&header=Next%20Steps)\n---\n") {
		t.Errorf("text = %q", row.Text)
	}
	if !strings.Contains(row.Subtitle, "* Goals") || strings.Contains(row.Subtitle, "bear://") {
		t.Errorf("subtitle = %q", row.Subtitle)
	}
	if row.Modification == 0 {
		t.Error("modification date not set")
	}

	other := testutil.ReadBearNote(t, path, notes[1].ID)
	if other.Text != "Other\n# Goals\n" {
		t.Errorf("unmatched note modified: %q", other.Text)
	}
	if !strings.Contains(summary, "restart Bear") {
		t.Errorf("summary = %q", summary)
	}
}
