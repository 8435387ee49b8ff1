// Package config loads codec and carrier definitions from YAML files and
// builds the configured components.
//
// A configuration file looks like:
//
//	codec:
//	  variant: v1
//	  a: "A"
//	  b: "B"
//	carrier: marker
//	a_marker:
//	  start: "*"
//	  end: "*"
//	b_marker:
//	  start: "!"
//	  end: "!"
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/bacon"
	"github.com/zoobzio/bacon/charcodec"
	"github.com/zoobzio/bacon/lettercase"
	"github.com/zoobzio/bacon/marker"
	"github.com/zoobzio/bacon/tag"
)

// Carrier names accepted in the carrier field.
const (
	CarrierLetterCase = "lettercase"
	CarrierMarker     = "marker"
	CarrierTag        = "tag"
)

// Config is the root structure of a configuration file.
type Config struct {
	Codec   CodecConfig `yaml:"codec"`
	Carrier string      `yaml:"carrier"`

	AMarker MarkerConfig `yaml:"a_marker"`
	BMarker MarkerConfig `yaml:"b_marker"`

	ATag       TagConfig `yaml:"a_tag"`
	BTag       TagConfig `yaml:"b_tag"`
	NoCollapse bool      `yaml:"no_collapse"`
}

// CodecConfig selects the substitution table and symbols.
type CodecConfig struct {
	Variant string `yaml:"variant"` // v1 (default) or v2
	A       string `yaml:"a"`       // single character, default "A"
	B       string `yaml:"b"`       // single character, default "B"
}

// MarkerConfig defines one side's textual delimiters.
type MarkerConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// TagConfig defines one side's open/close tags.
type TagConfig struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// BuildCodec constructs the configured rune codec. The variant defaults
// to v1 and the symbols to 'A' and 'B'.
func (c *Config) BuildCodec() (bacon.Codec[rune], error) {
	a, err := symbol(c.Codec.A, 'A')
	if err != nil {
		return nil, fmt.Errorf("codec symbol a: %w", err)
	}
	b, err := symbol(c.Codec.B, 'B')
	if err != nil {
		return nil, fmt.Errorf("codec symbol b: %w", err)
	}

	switch c.Codec.Variant {
	case "", "v1":
		return charcodec.New(a, b), nil
	case "v2":
		return charcodec.NewV2(a, b), nil
	default:
		return nil, fmt.Errorf("unknown codec variant %q", c.Codec.Variant)
	}
}

// BuildCarrier constructs the configured carrier. The carrier field
// defaults to lettercase.
func (c *Config) BuildCarrier() (bacon.Steganographer[rune], error) {
	switch c.Carrier {
	case "", CarrierLetterCase:
		return lettercase.New[rune](), nil
	case CarrierMarker:
		return marker.New[rune](
			marker.Marker{Start: c.AMarker.Start, End: c.AMarker.End},
			marker.Marker{Start: c.BMarker.Start, End: c.BMarker.End},
		)
	case CarrierTag:
		var opts []tag.Option[rune]
		if c.NoCollapse {
			opts = append(opts, tag.WithoutCollapse[rune]())
		}
		return tag.New[rune](
			tag.Tag{Open: c.ATag.Open, Close: c.ATag.Close},
			tag.Tag{Open: c.BTag.Open, Close: c.BTag.Close},
			opts...,
		)
	default:
		return nil, fmt.Errorf("unknown carrier %q", c.Carrier)
	}
}

func symbol(s string, fallback rune) (rune, error) {
	if s == "" {
		return fallback, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	return r, nil
}
