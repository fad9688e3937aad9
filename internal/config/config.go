// Package config loads the optional HCL settings file.
//
//	grid   { rows = 20  cols = 80 }
//	clock  { tps = 8  seed = 42 }
//	log    { level = "debug"  format = "json" }
//	glyphs { empty = "·" }
//
// Every block and attribute is optional.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Settings holds the values found in a settings file. A nil field was not
// present in the file.
type Settings struct {
	Rows, Cols *int
	TPS        *int
	Seed       *int64
	LogLevel   *string
	LogFormat  *string
	Empty      *rune
}

type fileSchema struct {
	Grid   *gridBlock   `hcl:"grid,block"`
	Clock  *clockBlock  `hcl:"clock,block"`
	Log    *logBlock    `hcl:"log,block"`
	Glyphs *glyphsBlock `hcl:"glyphs,block"`
}

type gridBlock struct {
	Rows cty.Value `hcl:"rows,optional"`
	Cols cty.Value `hcl:"cols,optional"`
}

type clockBlock struct {
	TPS  cty.Value `hcl:"tps,optional"`
	Seed cty.Value `hcl:"seed,optional"`
}

type logBlock struct {
	Level  cty.Value `hcl:"level,optional"`
	Format cty.Value `hcl:"format,optional"`
}

type glyphsBlock struct {
	Empty cty.Value `hcl:"empty,optional"`
}

// Load parses and validates the settings file at path.
func Load(path string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse is Load for in-memory source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Settings, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}
	s, err := schema.settings()
	if err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", filename, err)
	}
	return s, nil
}

func (f fileSchema) settings() (*Settings, error) {
	var (
		s   Settings
		err error
	)
	if b := f.Grid; b != nil {
		if s.Rows, err = positive(b.Rows, "grid.rows"); err != nil {
			return nil, err
		}
		if s.Cols, err = positive(b.Cols, "grid.cols"); err != nil {
			return nil, err
		}
	}
	if b := f.Clock; b != nil {
		if s.TPS, err = positive(b.TPS, "clock.tps"); err != nil {
			return nil, err
		}
		if s.Seed, err = attr[int64](b.Seed, "clock.seed"); err != nil {
			return nil, err
		}
	}
	if b := f.Log; b != nil {
		if s.LogLevel, err = oneOf(b.Level, "log.level", "debug", "info", "warn", "error"); err != nil {
			return nil, err
		}
		if s.LogFormat, err = oneOf(b.Format, "log.format", "text", "json"); err != nil {
			return nil, err
		}
	}
	if b := f.Glyphs; b != nil {
		glyph, err := attr[string](b.Empty, "glyphs.empty")
		if err != nil {
			return nil, err
		}
		if glyph != nil {
			if utf8.RuneCountInString(*glyph) != 1 {
				return nil, fmt.Errorf("glyphs.empty must be a single character, got %q", *glyph)
			}
			r, _ := utf8.DecodeRuneInString(*glyph)
			s.Empty = &r
		}
	}
	return &s, nil
}

// attr converts an optional attribute. Missing and null attributes yield nil.
func attr[T any](v cty.Value, name string) (*T, error) {
	if v.Type() == cty.NilType || v.IsNull() {
		return nil, nil
	}
	var out T
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &out, nil
}

func positive(v cty.Value, name string) (*int, error) {
	n, err := attr[int](v, name)
	if err != nil || n == nil {
		return n, err
	}
	if *n <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", name, *n)
	}
	return n, nil
}

func oneOf(v cty.Value, name string, allowed ...string) (*string, error) {
	s, err := attr[string](v, name)
	if err != nil || s == nil {
		return s, err
	}
	for _, a := range allowed {
		if *s == a {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%s must be one of %v, got %q", name, allowed, *s)
}
