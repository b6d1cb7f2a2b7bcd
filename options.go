package wordfields

import "github.com/tsawler/wordfields/fields"

// Options holds configuration for field extraction.
type Options struct {
	// reportFontNames includes font names on format fields.
	reportFontNames bool

	// normalizer overrides the default quirk normalizer.
	normalizer *fields.Normalizer
}

// Option configures a Document.
type Option func(*Options)

// defaultOptions returns the default extraction options.
func defaultOptions() Options {
	return Options{
		reportFontNames: false,
		normalizer:      nil,
	}
}

// WithFontNames includes font names on format fields.
func WithFontNames() Option {
	return func(o *Options) { o.reportFontNames = true }
}

// WithNormalizer substitutes the normalizer used by Fields.
func WithNormalizer(n *fields.Normalizer) Option {
	return func(o *Options) { o.normalizer = n }
}
