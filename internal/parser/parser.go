// Package parser extracts tags and headings from Markdown content.
//
// Matching is line-oriented: fenced code blocks are tracked by lines starting
// with three backticks and everything else is classified with regular
// expressions. There is no Markdown AST.
package parser

import (
	"regexp"
	"strings"
)

const fence = "```"

var (
	// A tag starts a line or follows whitespace. The closed form (#two words#)
	// may contain spaces; the open form (#tag) runs until '#' or whitespace.
	tagRe = regexp.MustCompile(`(?:^|\s)(#[^#\r\n]+#|#[^#\r\n ]+)`)
	tocRe = regexp.MustCompile(`(?im)^#+\stable\sof\scontents`)
)

// SplitLines splits text into lines on "\n" or "\r\n". A single trailing
// newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// scanLines calls fn for every line outside fenced code blocks.
// Fence lines themselves are never passed to fn.
func scanLines(lines []string, fn func(line string)) {
	inFence := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			inFence = !inFence
			continue
		}
		if !inFence {
			fn(line)
		}
	}
}

// ExtractTags returns the set of #tags found outside fenced code blocks.
// Tags are returned without their leading '#', and closed tags (#two words#)
// without the trailing one.
func ExtractTags(text string) map[string]struct{} {
	tags := make(map[string]struct{})
	scanLines(SplitLines(text), func(line string) {
		for _, m := range tagRe.FindAllStringSubmatch(line, -1) {
			tags[trimTag(m[1])] = struct{}{}
		}
	})
	return tags
}

// IsTagLine reports whether line contains at least one tag.
func IsTagLine(line string) bool {
	return tagRe.MatchString(line)
}

// HasTableOfContents reports whether text already contains a
// "Table of Contents" heading of any level.
func HasTableOfContents(text string) bool {
	return tocRe.MatchString(text)
}

func trimTag(raw string) string {
	t := strings.TrimPrefix(raw, "#")
	// Only the closed form can end with '#'.
	return strings.TrimSuffix(t, "#")
}
