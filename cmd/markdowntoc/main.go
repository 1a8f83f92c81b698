package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/markdowntoc/internal"
	"github.com/starford/markdowntoc/internal/toc"
	pkgconfig "github.com/starford/markdowntoc/pkg/config"
)

const appName = "markdowntoc"

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithNames(cmd.Args().Slice()...),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cmd *cli.Command, cfg *internal.Config) error {
	if cmd.IsSet("header-priority") {
		cfg.TOC.HeaderPriority = int(cmd.Int("header-priority"))
	}
	if cmd.IsSet("type") {
		cfg.TOC.Type = cmd.String("type")
	}
	if cmd.IsSet("table-of-contents-style") {
		cfg.TOC.Header = cmd.String("table-of-contents-style")
	}
	if cmd.Bool("no-write") {
		cfg.TOC.Write = false
	}
	if cmd.Bool("diff") {
		cfg.TOC.Diff = true
	}
	if cmd.IsSet("bear-database") {
		cfg.Bear.DatabasePath = cmd.String("bear-database")
	}
	if cmd.IsSet("log-level") {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	return nil
}

func main() {
	// -h selects the header priority, so help is only reachable as --help.
	cli.HelpFlag = &cli.BoolFlag{
		Name:        "help",
		Usage:       "show help",
		HideDefault: true,
		Local:       true,
	}

	cmd := &cli.Command{
		Name:      appName,
		Usage:     "Markdown Table of Contents generator for Bear or GitHub",
		ArgsUsage: "name...",
		Description: "Each name is a Markdown file or directory (github, gitlab), " +
			"or a Bear note title, note identifier or tag (bear).",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "$XDG_CONFIG_HOME/" + appName + "/config.yaml",
				Value:       pkgconfig.DefaultPath(appName),
				Sources:     cli.EnvVars("MARKDOWNTOC_CONFIG"),
			},
			&cli.IntFlag{
				Name:    "header-priority",
				Aliases: []string{"h"},
				Usage:   "Maximum header priority/strength to consider for the Table of Contents",
				Value:   3,
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Anchor style and document source: github, gitlab or bear",
				Value:   toc.StyleGitHub,
			},
			&cli.BoolFlag{
				Name:  "no-write",
				Usage: "Print the Table of Contents instead of writing it to the file or note",
			},
			&cli.StringFlag{
				Name:    "table-of-contents-style",
				Aliases: []string{"toc"},
				Usage:   "Table of Contents header line",
				Value:   toc.DefaultHeader,
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Print the changes that would be written instead of writing them",
			},
			&cli.StringFlag{
				Name:        "bear-database",
				Usage:       "Path to Bear's database.sqlite",
				DefaultText: "Bear's default location",
				Sources:     cli.EnvVars("BEAR_DATABASE"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
