package bear

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/starford/markdowntoc/internal/apperr"
	"github.com/starford/markdowntoc/internal/checksum"
	"github.com/starford/markdowntoc/internal/models"
	"github.com/starford/markdowntoc/internal/parser"
)

// Note is a row of the ZSFNOTE table.
type Note struct {
	ID    string
	Title string
	Text  string
}

// Notes returns every note that is not trashed, archived or encrypted.
func (s *Store) Notes(ctx context.Context) ([]Note, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT ZUNIQUEIDENTIFIER, ZTITLE, ZTEXT
		FROM ZSFNOTE
		WHERE ZTRASHED = 0 AND ZARCHIVED = 0 AND ZENCRYPTED = 0
	`)
	if err != nil {
		return nil, fmt.Errorf("bear: list notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var id, title, text sql.NullString
		if err := rows.Scan(&id, &title, &text); err != nil {
			return nil, fmt.Errorf("bear: scan note: %w", err)
		}
		out = append(out, Note{ID: id.String, Title: title.String, Text: text.String})
	}
	return out, rows.Err()
}

// Matches reports whether any query equals the note's title, its identifier
// or one of its tags. Identifiers compare as UUIDs when both parse; tags may
// be given with or without the leading '#'.
func (n Note) Matches(queries []string) bool {
	tags := parser.ExtractTags(n.Text)
	noteID, idErr := uuid.Parse(n.ID)

	for _, q := range queries {
		if q == n.Title || q == n.ID {
			return true
		}
		if idErr == nil {
			if qid, err := uuid.Parse(q); err == nil && qid == noteID {
				return true
			}
		}
		if _, ok := tags[strings.TrimPrefix(q, "#")]; ok {
			return true
		}
	}
	return false
}

// Documents returns the notes matching any of names, with trailing
// whitespace removed from their text.
func (s *Store) Documents(ctx context.Context, names []string) ([]models.Document, error) {
	notes, err := s.Notes(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Document
	for _, n := range notes {
		if !n.Matches(names) {
			continue
		}
		out = append(out, models.Document{
			ID:       n.ID,
			Name:     n.Title,
			Text:     strings.TrimRightFunc(n.Text, unicode.IsSpace),
			Checksum: checksum.String(n.Text),
		})
	}
	s.logger.Debug("bear: matched notes",
		slog.Int("candidates", len(notes)),
		slog.Int("matched", len(out)))
	return out, nil
}

// Save replaces the note's text and subtitle and bumps its modification
// date. If the note's text changed since it was read, Save returns
// apperr.ErrConflict.
func (s *Store) Save(ctx context.Context, doc models.Document, text, summary string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bear: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	var current sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT ZTEXT FROM ZSFNOTE WHERE ZUNIQUEIDENTIFIER = ?`, doc.ID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("bear: save %s: %w", doc.ID, apperr.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("bear: read note: %w", err)
	}
	if doc.Checksum != "" && checksum.String(current.String) != doc.Checksum {
		return fmt.Errorf("bear: save %s: %w", doc.ID, apperr.ErrConflict)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE ZSFNOTE
		SET ZSUBTITLE = ?, ZTEXT = ?, ZMODIFICATIONDATE = ?
		WHERE ZUNIQUEIDENTIFIER = ?
	`, summary, text, Timestamp(s.now()), doc.ID)
	if err != nil {
		return fmt.Errorf("bear: update note: %w", err)
	}

	return tx.Commit()
}
