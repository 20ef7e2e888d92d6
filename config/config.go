// Package config holds the settings shared by mmp commands.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/proof"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/workvar"
)

var ErrConfig = errors.New("invalid configuration")

// WorkVarDef declares Count work variables Prefix1..PrefixCount of type
// code Type.
type WorkVarDef struct {
	Type   string `json:"type" validate:"required,mathsym"`
	Prefix string `json:"prefix" validate:"required,mathsym"`
	Count  int    `json:"count" validate:"gt=0"`
}

type Config struct {
	// Provable is the type code of provable statements.
	Provable  string       `json:"provable" validate:"required,mathsym"`
	LineWidth int          `json:"lineWidth" validate:"gte=0"`
	Squish    bool         `json:"squish"`
	Jobs      int          `json:"jobs" validate:"gte=0,lte=1024"`
	MinCount  int          `json:"minCount" validate:"gte=1"`
	MaxCount  int          `json:"maxCount" validate:"gtefield=MinCount"`
	WorkVars  []WorkVarDef `json:"workVars" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("mathsym", func(fl validator.FieldLevel) bool {
		return stmt.ValidSymbol(fl.Field().String())
	})
}

func Default() *Config {
	return &Config{
		Provable:  proof.DefaultProvable,
		LineWidth: codec.DefaultLineWidth,
		MinCount:  workvar.DefaultMinCount,
		MaxCount:  workvar.DefaultMaxCount,
		WorkVars: []WorkVarDef{
			{Type: "wff", Prefix: "&W", Count: 100},
			{Type: "class", Prefix: "&C", Count: 100},
			{Type: "setvar", Prefix: "&S", Count: 100},
		},
	}
}

// Load reads YAML settings over the defaults. An empty document yields
// the defaults.
func Load(r io.Reader) (*Config, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := Default()
	if len(bytes.TrimSpace(d)) != 0 {
		if err := yaml.UnmarshalWithOptions(d, c, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// Registry returns a work variable registry holding the configured
// definitions.
func (c *Config) Registry() (*workvar.Registry, error) {
	r := workvar.NewRegistry()
	r.Min, r.Max = c.MinCount, c.MaxCount
	for _, def := range c.WorkVars {
		if err := r.Define(def.Type, def.Prefix, def.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	return r, nil
}

// EncodeOptions are the encoder settings of c.
func (c *Config) EncodeOptions() []codec.EncodeOption {
	return []codec.EncodeOption{codec.LineWidth(c.LineWidth), codec.Squish(c.Squish)}
}
