package pprint

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config controls layout. Use [DefaultConfig] as a starting point; the zero
// value is only meaningful as "use the defaults" on a [Formatter].
type Config struct {
	// Indent is the unit prepended per nesting level of multi-line output.
	Indent string `yaml:"indent" toml:"indent"`
	// SkipNull drops record fields whose value is null.
	SkipNull bool `yaml:"skip_null" toml:"skip_null"`
	// WithTypes renders record fields as name: Type=value.
	WithTypes bool `yaml:"with_types" toml:"with_types"`
	// WithIDs suffixes record names with #<hex identity>.
	WithIDs bool `yaml:"with_ids" toml:"with_ids"`
	// Rails marks continued lines of long nested blocks with "|".
	Rails bool `yaml:"rails" toml:"rails"`
	// Width is the preferred maximum line width.
	Width int `yaml:"width" toml:"width"`
	// MultiPerLine packs several short collection items per line.
	MultiPerLine bool `yaml:"multi_per_line" toml:"multi_per_line"`
	// MaxItems caps the items rendered per collection or map; the rest is
	// replaced by "...".
	MaxItems int `yaml:"max_items" toml:"max_items"`
	// SkipNested drops fields marked as nested records.
	SkipNested bool `yaml:"skip_nested" toml:"skip_nested"`
	// MaxDepth bounds recursion. Zero means unlimited.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`
}

// DefaultConfig returns the default settings: four-space indent, rails on,
// width 100, several items per line, at most 50 items, nested records skipped.
func DefaultConfig() Config {
	return Config{
		Indent:       "    ",
		Rails:        true,
		Width:        100,
		MultiPerLine: true,
		MaxItems:     50,
		SkipNested:   true,
	}
}

// Validate reports whether c can be used for formatting.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 {
		errs = append(errs, fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidConfig, c.Width))
	}
	if c.MaxItems < 0 {
		errs = append(errs, fmt.Errorf("%w: max_items must not be negative, got %d", ErrInvalidConfig, c.MaxItems))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth))
	}
	return errors.Join(errs...)
}

// LoadConfig decodes YAML from r over [DefaultConfig]. Keys absent from the
// document keep their default.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigTOML is [LoadConfig] for TOML documents.
func LoadConfigTOML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}
