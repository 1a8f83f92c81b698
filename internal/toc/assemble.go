package toc

import (
	"strings"

	"github.com/starford/markdowntoc/internal/parser"
)

// DefaultHeader is the first line of a generated table of contents.
const DefaultHeader = "# Table of Contents"

// Entry is one rendered line of a table of contents.
type Entry struct {
	Text   string
	Link   string
	Indent int
}

// String renders the entry as a bullet indented with one tab per level.
func (e Entry) String() string {
	return strings.Repeat("\t", e.Indent) + "* " + e.Link
}

// Entries converts headings into entries indented relative to the shallowest
// heading. It returns nil for no headings.
func Entries(hs []parser.Heading, noteID string, style Style) []Entry {
	if len(hs) == 0 {
		return nil
	}

	top := hs[0].Depth
	for _, h := range hs[1:] {
		if h.Depth < top {
			top = h.Depth
		}
	}

	out := make([]Entry, len(hs))
	for i, h := range hs {
		out[i] = Entry{
			Text:   h.Title,
			Link:   style.Anchor(h.Title, noteID),
			Indent: h.Depth - top,
		}
	}
	return out
}

// Assemble renders the table of contents lines: header, one bullet per
// heading and the style's separator if it has one. It returns nil when there
// are no headings, in which case no table of contents should be written.
func Assemble(hs []parser.Heading, noteID, header string, style Style) []string {
	entries := Entries(hs, noteID, style)
	if entries == nil {
		return nil
	}

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, header)
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	if sep := style.Separator(); sep != "" {
		lines = append(lines, sep)
	}
	return lines
}
