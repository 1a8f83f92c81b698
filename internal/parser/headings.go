package parser

import (
	"strings"
	"unicode/utf8"
)

const tocTitle = "table of contents"

// Heading is a Markdown heading with its depth (number of leading '#').
type Heading struct {
	Title string
	Depth int
}

// ExtractHeadings returns the headings of text whose depth is at most
// maxDepth, in document order and already sequenced.
//
// The first line is the document title and is never a heading. Headings inside
// fenced code blocks, headings titled "Table of Contents" and headings with
// titles shorter than two characters are ignored.
func ExtractHeadings(text string, maxDepth int) []Heading {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return nil
	}

	var out []Heading
	scanLines(lines[1:], func(line string) {
		if h, ok := parseHeading(line, maxDepth); ok {
			out = append(out, h)
		}
	})

	Sequence(out)
	return out
}

// parseHeading splits line at its first space into a marker and a title.
// The marker must consist of '#' only.
func parseHeading(line string, maxDepth int) (Heading, bool) {
	if !strings.HasPrefix(line, "#") {
		return Heading{}, false
	}
	marker, title, found := strings.Cut(line, " ")
	if !found {
		return Heading{}, false
	}
	if strings.Trim(marker, "#") != "" {
		return Heading{}, false
	}
	if len(marker) > maxDepth {
		return Heading{}, false
	}
	if utf8.RuneCountInString(title) < 2 || strings.EqualFold(title, tocTitle) {
		return Heading{}, false
	}
	return Heading{Title: title, Depth: len(marker)}, true
}

// Sequence adjusts depths in place so that no heading is more than one level
// deeper than the heading before it. H1 followed by H3 becomes H1, H2.
func Sequence(hs []Heading) {
	for i := 0; i+1 < len(hs); i++ {
		if hs[i+1].Depth-hs[i].Depth > 1 {
			hs[i+1].Depth = hs[i].Depth + 1
		}
	}
}
