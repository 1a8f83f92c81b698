// Package bear reads and updates notes in the Bear application's SQLite database.
package bear

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// databasePath is the location of Bear's database relative to $HOME.
const databasePath = "Library/Group Containers/9K33E3U3T4.net.shinyfrog.bear/Application Data/database.sqlite"

// DefaultPath returns the Bear database path for the current user.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, databasePath)
}

// Store wraps a connection to the Bear database.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Open connects to an existing Bear database. It never creates the file and
// fails if the notes table is missing.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("bear: open db: %w", err)
	}
	conn, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("bear: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bear: ping: %w", err)
	}
	var n int
	if err := conn.QueryRow(`SELECT count(*) FROM ZSFNOTE`).Scan(&n); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bear: check notes table: %w", err)
	}
	logger.Debug("bear: database opened", slog.String("path", path), slog.Int("notes", n))
	return &Store{conn: conn, logger: logger, now: time.Now}, nil
}

// dsn builds a read-write URI for path. The path is escaped so '#', '?' and
// '%' in directory names reach SQLite unchanged.
func dsn(path string) string {
	u := url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     path,
		RawQuery: "mode=rw&_busy_timeout=5000",
	}
	return u.String()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Timestamp converts t to the value Bear stores in ZMODIFICATIONDATE.
// Bear's clock runs 31 years behind Unix time.
func Timestamp(t time.Time) float64 {
	shifted := t.AddDate(-31, 0, 0)
	return float64(shifted.Unix()) + float64(shifted.Nanosecond())/float64(time.Second)
}
