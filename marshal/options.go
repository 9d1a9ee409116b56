package marshal

import (
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/format"
	"github.com/signadot/tony-format/go-rtti/parse"
)

// MapOption is an option for rendering values as text.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for reading values from text.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// mapConfig holds configuration for rendering.
type mapConfig struct {
	// EncodeOptions to pass through to encode.Encode
	EncodeOptions []encode.EncodeOption
}

// unmapConfig holds configuration for reading.
type unmapConfig struct {
	// ParseOptions to pass through to parse.Parse
	ParseOptions []parse.ParseOption
}

type encodeOptions []encode.EncodeOption

func (o encodeOptions) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, o...)
}

type parseOptions []parse.ParseOption

func (o parseOptions) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, o...)
}

// WithEncodeOptions passes opts to encode.Encode.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return encodeOptions(opts)
}

// WithParseOptions passes opts to parse.Parse.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return parseOptions(opts)
}

type formatOption format.Format

func (o formatOption) applyMap(c *mapConfig) {
	c.EncodeOptions = append(c.EncodeOptions, encode.EncodeFormat(format.Format(o)))
}

func (o formatOption) applyUnmap(c *unmapConfig) {
	c.ParseOptions = append(c.ParseOptions, parse.ParseFormat(format.Format(o)))
}

// Format is both a MapOption and an UnmapOption selecting the text format.
type Format interface {
	MapOption
	UnmapOption
}

// WithFormat selects the text format for both reading and rendering.
func WithFormat(f format.Format) Format {
	return formatOption(f)
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg.EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of UnmapOptions.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg.ParseOptions
}
