package parser

import (
	"testing"
)

func TestExtractTags_OpenAndClosed(t *testing.T) {
	text := "Title\n#alpha\nsome text #beta\n#two words#\n"
	tags := ExtractTags(text)

	for _, want := range []string{"alpha", "beta", "two words"} {
		if _, ok := tags[want]; !ok {
			t.Errorf("missing tag %q in %v", want, tags)
		}
	}
	if len(tags) != 3 {
		t.Errorf("len(tags) = %d, want 3: %v", len(tags), tags)
	}
}

func TestExtractTags_IgnoresFencedBlocks(t *testing.T) {
	text := "Title\n```\n#notatag\n```\n#real\n"
	tags := ExtractTags(text)
	if _, ok := tags["notatag"]; ok {
		t.Errorf("tag inside fenced block was extracted: %v", tags)
	}
	if _, ok := tags["real"]; !ok {
		t.Errorf("tag after fenced block missing: %v", tags)
	}
}

func TestExtractTags_IndentedFence(t *testing.T) {
	text := "Title\n  ```go\n#notatag\n  ```\n"
	if tags := ExtractTags(text); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestExtractTags_RequiresLeadingWhitespace(t *testing.T) {
	tags := ExtractTags("word#notatag and issue#12")
	if len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestExtractTags_SingleCharacter(t *testing.T) {
	tags := ExtractTags("#a")
	if _, ok := tags["a"]; !ok {
		t.Errorf("single-character tag missing: %v", tags)
	}
}

func TestExtractTags_HeadingsAreNotTags(t *testing.T) {
	tags := ExtractTags("# Heading\n## Sub heading\n")
	if len(tags) != 0 {
		t.Errorf("headings produced tags: %v", tags)
	}
}

func TestExtractTags_Duplicates(t *testing.T) {
	tags := ExtractTags("#go\n#go\ntext #go\n")
	if _, ok := tags["go"]; !ok || len(tags) != 1 {
		t.Errorf("tags = %v, want exactly [go]", tags)
	}
}

func TestExtractTags_ClosedFormWins(t *testing.T) {
	cases := map[string][]string{
		// The second '#' closes the first tag, so the trailing "go" has no
		// whitespace before it.
		"#go and #go":     {"go and "},
		"#go and #go #go": {"go and ", "go"},
	}
	for text, want := range cases {
		tags := ExtractTags(text)
		if len(tags) != len(want) {
			t.Errorf("ExtractTags(%q) = %v, want %q", text, tags, want)
			continue
		}
		for _, w := range want {
			if _, ok := tags[w]; !ok {
				t.Errorf("ExtractTags(%q) = %v, missing %q", text, tags, w)
			}
		}
	}
}

func TestIsTagLine(t *testing.T) {
	cases := map[string]bool{
		"#tag":             true,
		"#one #two":        true,
		"text #tag":        true,
		"#two words#":      true,
		"plain text":       false,
		"":                 false,
		"# Heading":        false,
		"email@host#frag":  false,
		"## Second level":  false,
		"\t#tab-separated": true,
	}
	for line, want := range cases {
		if got := IsTagLine(line); got != want {
			t.Errorf("IsTagLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestHasTableOfContents(t *testing.T) {
	cases := map[string]bool{
		"Title\n# Table of Contents\n* [a](#a)": true,
		"Title\n### table of contents":          true,
		"Title\n## TABLE OF CONTENTS":           true,
		"Title\nTable of Contents":              false,
		"Title\n#Table of Contents":             false,
		"Title\n# Contents":                     false,
	}
	for text, want := range cases {
		if got := HasTableOfContents(text); got != want {
			t.Errorf("HasTableOfContents(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc\n")
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "b" || lines[2] != "c" {
		t.Errorf("lines = %q", lines)
	}
	if got := SplitLines(""); got != nil {
		t.Errorf("SplitLines(\"\") = %q, want nil", got)
	}
}
