// Package testutil provides shared test helpers for Markdown directories and
// Bear databases.
package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// bearSchemaSQL is the subset of Bear's ZSFNOTE table used by markdowntoc.
const bearSchemaSQL = `
CREATE TABLE ZSFNOTE (
	Z_PK              INTEGER PRIMARY KEY,
	ZUNIQUEIDENTIFIER VARCHAR,
	ZTITLE            VARCHAR,
	ZTEXT             VARCHAR,
	ZSUBTITLE         VARCHAR,
	ZTRASHED          INTEGER NOT NULL DEFAULT 0,
	ZARCHIVED         INTEGER NOT NULL DEFAULT 0,
	ZENCRYPTED        INTEGER NOT NULL DEFAULT 0,
	ZMODIFICATIONDATE TIMESTAMP
);
`

// Note seeds a row of a test Bear database. An empty ID gets a fresh
// uppercase UUID, as Bear generates them.
type Note struct {
	ID        string
	Title     string
	Text      string
	Trashed   bool
	Archived  bool
	Encrypted bool
}

// BearRow is a note read back from a test Bear database.
type BearRow struct {
	Text         string
	Subtitle     string
	Modification float64
}

// BearDB creates a temporary Bear-shaped SQLite database seeded with notes
// and returns its path and the notes with their IDs filled in.
func BearDB(t *testing.T, notes ...Note) (string, []Note) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.sqlite")

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if _, err := conn.Exec(bearSchemaSQL); err != nil {
		t.Fatal(err)
	}

	seeded := make([]Note, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			n.ID = strings.ToUpper(uuid.NewString())
		}
		_, err := conn.Exec(`
			INSERT INTO ZSFNOTE (ZUNIQUEIDENTIFIER, ZTITLE, ZTEXT, ZTRASHED, ZARCHIVED, ZENCRYPTED)
			VALUES (?, ?, ?, ?, ?, ?)
		`, n.ID, n.Title, n.Text, n.Trashed, n.Archived, n.Encrypted)
		if err != nil {
			t.Fatal(err)
		}
		seeded[i] = n
	}
	return path, seeded
}

// ReadBearNote returns the stored text, subtitle and modification date of a
// note in a test Bear database.
func ReadBearNote(t *testing.T, path, id string) BearRow {
	t.Helper()
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var text, subtitle sql.NullString
	var modified sql.NullFloat64
	err = conn.QueryRow(`
		SELECT ZTEXT, ZSUBTITLE, CAST(ZMODIFICATIONDATE AS REAL) FROM ZSFNOTE WHERE ZUNIQUEIDENTIFIER = ?
	`, id).Scan(&text, &subtitle, &modified)
	if err != nil {
		t.Fatal(err)
	}
	return BearRow{Text: text.String, Subtitle: subtitle.String, Modification: modified.Float64}
}

// MarkdownDir creates a temporary directory holding the given files
// (relative path → content) and returns its path.
func MarkdownDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
