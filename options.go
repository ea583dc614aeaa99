package mdnotebook

import (
	"github.com/riverfjs/mdnotebook-go/internal/nbformat"
)

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config     *Config
	OutputPath string
	NewCellID  func() string
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithOutputPath overrides the notebook path ConvertFile writes to.
func WithOutputPath(path string) Option {
	return func(opts *ConvertOptions) {
		opts.OutputPath = path
	}
}

// WithCellIDs sets the cell id generator, e.g. for reproducible output.
func WithCellIDs(next func() string) Option {
	return func(opts *ConvertOptions) {
		opts.NewCellID = next
	}
}

// WithSequentialCellIDs numbers cells "cell-0", "cell-1", ... instead of
// using random ids.
func WithSequentialCellIDs() Option {
	return func(opts *ConvertOptions) {
		opts.NewCellID = nbformat.SequentialIDs()
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config:    DefaultConfig(),
		NewCellID: nbformat.RandomID,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.NewCellID == nil {
		options.NewCellID = nbformat.RandomID
	}
	return options
}
