package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/markdowntoc/internal/bear"
	"github.com/starford/markdowntoc/internal/toc"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	TOC  TOCConfig         `yaml:"toc"`
	Bear BearConfig        `yaml:"bear"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.TOC.Validate(); err != nil {
		return err
	}
	if c.TOC.Type == toc.StyleBear {
		return c.Bear.Validate()
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// TOCConfig controls how tables of contents are generated.
//
// Type selects both the anchor style and where documents come from:
//   - "github" (default) and "gitlab": Markdown files named on the command line.
//   - "bear": notes in the Bear database, matched by title, identifier or tag.
type TOCConfig struct {
	HeaderPriority int    `yaml:"header_priority"`
	Type           string `yaml:"type"`
	Header         string `yaml:"header"`
	Write          bool   `yaml:"write"`
	Diff           bool   `yaml:"diff"`
}

// Validate validates the table of contents configuration.
func (c *TOCConfig) Validate() error {
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	return validation.ValidateStruct(c,
		validation.Field(&c.HeaderPriority, validation.Required, validation.Min(1)),
		validation.Field(&c.Type, validation.Required, validation.In(toc.StyleGitHub, toc.StyleGitLab, toc.StyleBear)),
		validation.Field(&c.Header, validation.Required),
	)
}

// BearConfig holds the location of the Bear database.
type BearConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// Validate validates the Bear configuration.
func (c *BearConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.DatabasePath, validation.Required),
	); err != nil {
		return fmt.Errorf("bear: %w", err)
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		TOC: TOCConfig{
			HeaderPriority: 3,
			Type:           toc.StyleGitHub,
			Header:         toc.DefaultHeader,
			Write:          true,
		},
		Bear: BearConfig{
			DatabasePath: bear.DefaultPath(),
		},
	}
}
