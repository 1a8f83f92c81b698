// Package models defines the domain types for markdowntoc.
package models

// Document is a Markdown text loaded from a file or a note store.
type Document struct {
	// ID is the file path or the note's unique identifier.
	ID string
	// Name is shown in log messages: the path for files, the title for notes.
	Name     string
	Text     string
	Checksum string
}
