package toc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/markdowntoc/internal/apperr"
	"github.com/starford/markdowntoc/internal/parser"
)

var linkRe = regexp.MustCompile(`\[([^\[\]]+)\]\([^()]+\)`)

// Patch is a document with a table of contents spliced in.
type Patch struct {
	Lines []string
	Text  string
	// Summary is the body without the title line, joined with spaces and with
	// Markdown links reduced to their text.
	Summary string
}

// InsertionIndex returns the index of the first line after the title that
// is not a tag line, or len(lines) if every line is.
func InsertionIndex(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if !parser.IsTagLine(lines[i]) {
			return i
		}
	}
	return len(lines)
}

// Apply inserts tocLines into text after the title and any leading tag
// lines, surrounded by blank lines.
//
// Documents that already contain a table of contents heading are rejected
// with apperr.ErrAlreadyExists, and an empty tocLines with
// apperr.ErrNoHeadings.
func Apply(text string, tocLines []string) (*Patch, error) {
	if parser.HasTableOfContents(text) {
		return nil, fmt.Errorf("toc: apply: %w", apperr.ErrAlreadyExists)
	}
	if len(tocLines) == 0 {
		return nil, fmt.Errorf("toc: apply: %w", apperr.ErrNoHeadings)
	}

	lines := parser.SplitLines(text)
	at := InsertionIndex(lines)

	out := make([]string, 0, len(lines)+len(tocLines)+2)
	out = append(out, lines[:at]...)
	out = append(out, "")
	out = append(out, tocLines...)
	out = append(out, "")
	out = append(out, lines[at:]...)

	joined := strings.Join(out, "\n")
	if strings.HasSuffix(text, "\n") {
		joined += "\n"
	}

	return &Patch{
		Lines:   out,
		Text:    joined,
		Summary: Summarize(out[1:]),
	}, nil
}

// Summarize joins lines with spaces and replaces [text](url) links by text.
func Summarize(lines []string) string {
	return linkRe.ReplaceAllString(strings.Join(lines, " "), "$1")
}
