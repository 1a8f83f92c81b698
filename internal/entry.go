// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/starford/markdowntoc/internal/bear"
	"github.com/starford/markdowntoc/internal/generator"
	"github.com/starford/markdowntoc/internal/report"
	"github.com/starford/markdowntoc/internal/storage"
	"github.com/starford/markdowntoc/internal/toc"
)

// ErrNoNames is returned by Run when there is nothing to process.
var ErrNoNames = errors.New("at least one file, note title, note identifier or tag is required")

// Run generates tables of contents for the configured names.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if len(app.names) == 0 {
		return ErrNoNames
	}

	logger := newLogger(app.errOut, cfg.App)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("type", cfg.TOC.Type),
		slog.Int("header_priority", cfg.TOC.HeaderPriority),
		slog.String("header", cfg.TOC.Header),
		slog.Bool("write", cfg.TOC.Write),
		slog.Bool("diff", cfg.TOC.Diff),
		slog.String("log_level", cfg.App.LogLevel.String()))

	style, err := toc.StyleFor(cfg.TOC.Type)
	if err != nil {
		return err
	}

	var (
		src  generator.Source
		sink generator.Sink
	)
	isBear := style.Name() == toc.StyleBear
	if isBear {
		store, err := bear.Open(cfg.Bear.DatabasePath, logger)
		if err != nil {
			return fmt.Errorf("init bear store: %w", err)
		}
		defer store.Close()
		src, sink = store, store
	} else {
		files := storage.NewFiles(logger)
		src, sink = files, files
	}

	gen := generator.New(src, sink, generator.Options{
		MaxDepth: cfg.TOC.HeaderPriority,
		Header:   cfg.TOC.Header,
		Style:    style,
		Mode:     mode(cfg.TOC),
	}, app.out, logger)

	stats, err := gen.Run(ctx, app.names)
	if err != nil {
		return err
	}

	if mode(cfg.TOC) == generator.ModeWrite {
		summary := report.Summary{Stats: stats, Bear: isBear}
		if err := report.Render(app.errOut, summary, isTerminal(app.errOut)); err != nil {
			logger.Warn("write summary failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

func mode(c TOCConfig) generator.Mode {
	switch {
	case c.Diff:
		return generator.ModeDiff
	case !c.Write:
		return generator.ModePrint
	default:
		return generator.ModeWrite
	}
}

func newLogger(w io.Writer, c ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
