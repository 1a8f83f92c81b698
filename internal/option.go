package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	names  []string
	out    io.Writer
	errOut io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithNames sets the file paths, note titles, note identifiers or tags to
// process.
func WithNames(names ...string) Option {
	return func(a *application) {
		a.names = append(a.names, names...)
	}
}

// WithOutput sets where printed tables of contents and diffs go.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithErrOutput sets where logs and the run summary go.
func WithErrOutput(w io.Writer) Option {
	return func(a *application) {
		a.errOut = w
	}
}
