// Package config loads CLI configuration from YAML, TOML or CUE files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/logging"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// Config holds engine and rendering settings.
type Config struct {
	// Policy is the checking policy: "strict" or "none".
	Policy string `json:"policy" yaml:"policy" toml:"policy"`

	// Compact omits a multiplier of exactly 1 when rendering.
	Compact bool `json:"compact" yaml:"compact" toml:"compact"`

	// Radix is the base used to render multipliers (2..36).
	Radix int `json:"radix" yaml:"radix" toml:"radix"`

	// Labels override the base-dimension labels; empty means SI symbols.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`

	Logging logging.Config `json:"logging" yaml:"logging" toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Policy:  dimension.Strict.String(),
		Compact: true,
		Radix:   10,
		Logging: logging.DefaultConfig(),
	}
}

// Load reads path, chosen by extension, on top of Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".cue":
		err = decodeCUE(path, data, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q: use .yaml, .toml or .cue", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeCUE compiles a CUE document and decodes it into cfg.
// Fields absent from the document keep their current values.
func decodeCUE(path string, data []byte, cfg *Config) error {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return v.Decode(cfg)
}

// formatCUEError keeps the first CUE error with its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		return fmt.Errorf("%s: %s", positions[0], first.Error())
	}
	return first
}

// Validate checks the settings the engine cannot default.
func (c Config) Validate() error {
	if _, err := dimension.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.Radix < 2 || c.Radix > 36 {
		return fmt.Errorf("invalid radix %d: must be in [2, 36]", c.Radix)
	}
	if len(c.Labels) != 0 && len(c.Labels) != len(unit.DefaultLabels) {
		return &unit.LabelArityError{Got: len(c.Labels)}
	}
	return nil
}

// CheckingPolicy returns the parsed policy. Call Validate first.
func (c Config) CheckingPolicy() dimension.Policy {
	p, _ := dimension.ParsePolicy(c.Policy)
	return p
}

// BaseLabels returns the effective labels.
func (c Config) BaseLabels() []string {
	if len(c.Labels) == 0 {
		return unit.DefaultLabels[:]
	}
	return c.Labels
}
