// Package toc renders a table of contents from headings and splices it into a
// Markdown document.
package toc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Anchor style names.
const (
	StyleGitHub = "github"
	StyleGitLab = "gitlab"
	StyleBear   = "bear"
)

// ErrUnknownStyle is returned by StyleFor for unsupported style names.
var ErrUnknownStyle = errors.New("toc: unknown anchor style")

// Style renders a link to a heading.
type Style interface {
	// Name returns the style name used in configuration.
	Name() string
	// Anchor returns a Markdown link to the heading title. noteID is only
	// used by styles that link into a note application.
	Anchor(title, noteID string) string
	// Separator returns a line appended after the list, or "".
	Separator() string
}

// StyleFor returns the Style registered under name (case-insensitive).
func StyleFor(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StyleGitHub:
		return GitHub{}, nil
	case StyleGitLab:
		return GitLab{}, nil
	case StyleBear:
		return Bear{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// GitHub links to in-page anchors. The slug is the title with spaces
// replaced by hyphens; case and punctuation are kept.
type GitHub struct{}

func (GitHub) Name() string { return StyleGitHub }

func (GitHub) Anchor(title, _ string) string {
	return fmt.Sprintf("[%s](#%s)", title, slug(title))
}

func (GitHub) Separator() string { return "" }

// GitLab is GitHub with a lowercased slug.
type GitLab struct{}

func (GitLab) Name() string { return StyleGitLab }

func (GitLab) Anchor(title, _ string) string {
	return fmt.Sprintf("[%s](#%s)", title, cases.Lower(language.Und).String(slug(title)))
}

func (GitLab) Separator() string { return "" }

// Bear links open the note at the heading through Bear's x-callback-url scheme.
type Bear struct{}

func (Bear) Name() string { return StyleBear }

func (Bear) Anchor(title, noteID string) string {
	return fmt.Sprintf("[%s](bear://x-callback-url/open-note?id=%s&header=%s)", title, noteID, escape(title))
}

func (Bear) Separator() string { return "---" }

func slug(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "-")
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes every byte except ASCII letters, digits, '/' and
// "_.-~". Bear decodes the header parameter with this set in mind.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}
