// Package config loads the settings shared by the tinyexpr command and
// its interactive prompt.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chidiwilliams/tinyexpr/scan"
)

// Output formats understood by the render package.
const (
	FormatSExpr = "sexpr"
	FormatYAML  = "yaml"
	FormatRepr  = "repr"
)

// Formats lists every supported output format.
var Formats = []string{FormatSExpr, FormatYAML, FormatRepr}

// Config is the contents of a tinyexpr config file.
type Config struct {
	Keywords []string `yaml:"keywords"`
	Format   string   `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Keywords: append([]string(nil), scan.DefaultKeywords...),
		Format:   FormatSExpr,
	}
}

// Load reads the YAML file at path on top of the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Decode reads a YAML config from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem with the config, not just the first.
func (c *Config) Validate() error {
	var result *multierror.Error

	seen := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		if err := scan.CheckKeyword(kw); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if seen[kw] {
			result = multierror.Append(result, fmt.Errorf("keyword %q listed more than once", kw))
		}
		seen[kw] = true
	}

	if !IsFormat(c.Format) {
		result = multierror.Append(result, fmt.Errorf("unknown format %q, want one of %v", c.Format, Formats))
	}

	return result.ErrorOrNil()
}

// IsFormat reports whether format is a supported output format.
func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Scanner builds a scanner for the configured keyword set.
func (c *Config) Scanner() (*scan.Scanner, error) {
	return scan.New(c.Keywords)
}
