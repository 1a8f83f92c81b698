// Package generator runs the table of contents pipeline over a batch of
// documents: extract headings, assemble the table, patch and save.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/starford/markdowntoc/internal/apperr"
	"github.com/starford/markdowntoc/internal/models"
	"github.com/starford/markdowntoc/internal/parser"
	"github.com/starford/markdowntoc/internal/toc"
)

// Source loads the documents selected by the user's query terms.
type Source interface {
	Documents(ctx context.Context, names []string) ([]models.Document, error)
}

// Sink persists a patched document.
type Sink interface {
	Save(ctx context.Context, doc models.Document, text, summary string) error
}

// Mode selects what happens to a generated table of contents.
type Mode int

const (
	// ModeWrite patches the document and saves it.
	ModeWrite Mode = iota
	// ModePrint prints the table of contents.
	ModePrint
	// ModeDiff prints the changes patching would make.
	ModeDiff
)

// Options configures a Generator.
type Options struct {
	MaxDepth int
	Header   string
	Style    toc.Style
	Mode     Mode
}

// Stats counts the outcome of a run.
type Stats struct {
	Documents int
	Written   int
	Printed   int
	Skipped   int
	Failed    int
}

// Generator processes documents from a Source into a Sink.
type Generator struct {
	src    Source
	sink   Sink
	opts   Options
	out    io.Writer
	logger *slog.Logger
}

// New creates a Generator. out receives printed tables and diffs.
func New(src Source, sink Sink, opts Options, out io.Writer, logger *slog.Logger) *Generator {
	if opts.Header == "" {
		opts.Header = toc.DefaultHeader
	}
	if opts.Style == nil {
		opts.Style = toc.GitHub{}
	}
	return &Generator{src: src, sink: sink, opts: opts, out: out, logger: logger}
}

// Build returns the table of contents lines for doc. It returns
// apperr.ErrAlreadyExists if doc has one already and apperr.ErrNoHeadings if
// it has no qualifying headings.
func (g *Generator) Build(doc models.Document) ([]string, error) {
	if parser.HasTableOfContents(doc.Text) {
		return nil, apperr.ErrAlreadyExists
	}
	headings := parser.ExtractHeadings(doc.Text, g.opts.MaxDepth)
	lines := toc.Assemble(headings, doc.ID, g.opts.Header, g.opts.Style)
	if lines == nil {
		return nil, apperr.ErrNoHeadings
	}
	return lines, nil
}

// Run processes every document selected by names. Failures of a single
// document are logged and counted; only a failing Source aborts the run.
func (g *Generator) Run(ctx context.Context, names []string) (Stats, error) {
	var stats Stats

	docs, err := g.src.Documents(ctx, names)
	if err != nil {
		return stats, fmt.Errorf("generator: load documents: %w", err)
	}
	stats.Documents = len(docs)
	if len(docs) == 0 {
		g.logger.Warn("no documents matched", slog.String("names", strings.Join(names, ", ")))
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		g.process(ctx, doc, &stats)
	}
	return stats, nil
}

func (g *Generator) process(ctx context.Context, doc models.Document, stats *Stats) {
	lines, err := g.Build(doc)
	switch {
	case errors.Is(err, apperr.ErrAlreadyExists):
		g.logger.Warn("document already has a Table of Contents, ignoring", slog.String("document", doc.Name))
		stats.Skipped++
		return
	case errors.Is(err, apperr.ErrNoHeadings):
		g.logger.Warn("document has no headers to create a Table of Contents, ignoring", slog.String("document", doc.Name))
		stats.Skipped++
		return
	}

	switch g.opts.Mode {
	case ModePrint:
		if _, err := fmt.Fprint(g.out, strings.Join(lines, "\n")+"\n\n"); err != nil {
			g.fail(doc, "print failed", err, stats)
			return
		}
		stats.Printed++

	case ModeDiff:
		patch, err := toc.Apply(doc.Text, lines)
		if err != nil {
			g.fail(doc, "patch failed", err, stats)
			return
		}
		if err := WriteDiff(g.out, doc.Name, doc.Text, patch.Text); err != nil {
			g.fail(doc, "diff failed", err, stats)
			return
		}
		stats.Printed++

	default:
		g.logger.Info("creating a Table of Contents", slog.String("document", doc.Name))
		patch, err := toc.Apply(doc.Text, lines)
		if err != nil {
			g.fail(doc, "patch failed", err, stats)
			return
		}
		if err := g.sink.Save(ctx, doc, patch.Text, patch.Summary); err != nil {
			g.fail(doc, "save failed", err, stats)
			return
		}
		stats.Written++
	}
}

func (g *Generator) fail(doc models.Document, msg string, err error, stats *Stats) {
	g.logger.Error(msg,
		slog.String("document", doc.Name),
		slog.String("error", err.Error()))
	stats.Failed++
}
