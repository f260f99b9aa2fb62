// Package config loads seqtools settings from a TOML file.
//
// Every setting has a default, so the file is optional. Command-line flags
// take precedence over values loaded here; that merge happens in the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
	"github.com/theseus-aligner/seqtools/pkg/exectime"
	"github.com/theseus-aligner/seqtools/pkg/fasta"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// Config holds per-command defaults.
type Config struct {
	GFA      GFA      `toml:"gfa"`
	Combine  Combine  `toml:"combine"`
	ExecTime ExecTime `toml:"exectime"`
	Cut      Cut      `toml:"cut"`
}

// GFA configures gfa2dot and stats.
type GFA struct {
	SkipMalformed bool `toml:"skip_malformed"`
	RawLabels     bool `toml:"raw_labels"`
	QuoteIDs      bool `toml:"quote_ids"`
}

type Combine struct {
	Extension string `toml:"extension" validate:"required,startswith=."`
}

type ExecTime struct {
	Prefix string `toml:"prefix" validate:"required"`
}

type Cut struct {
	Width    int    `toml:"width" validate:"min=1"`
	Alphabet string `toml:"alphabet" validate:"oneof=dna rna protein"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Combine:  Combine{Extension: fasta.DefaultExtension},
		ExecTime: ExecTime{Prefix: exectime.DefaultPrefix},
		Cut:      Cut{Width: fasta.DefaultWidth, Alphabet: "dna"},
	}
}

// Load reads the file at path over the defaults.
//
// If explicit is false a missing file is not an error and the defaults are
// returned; this is the case for the implicit per-user path. Keys absent
// from the file keep their default values.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, seqerrors.WrapIO(err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, seqerrors.New(seqerrors.ErrCodeInvalidFormat, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their TOML names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		return name
	})
	return v
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return seqerrors.Wrap(seqerrors.ErrCodeInternal, err, "validate config")
		}
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fieldMessage(fe)
		}
		return seqerrors.New(seqerrors.ErrCodeInvalidInput, "%s", strings.Join(msgs, "; "))
	}
	return seqerrors.ValidateExtension(c.Combine.Extension)
}

func fieldMessage(fe validator.FieldError) string {
	// Namespace is "Config.cut.width"; drop the root type.
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return field + " must not be empty"
	case "min":
		return fmt.Sprintf("%s must be >= %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "startswith":
		return fmt.Sprintf("%s must start with %q, got %q", field, fe.Param(), fe.Value())
	}
	return field + " is invalid"
}

// DefaultPath returns the per-user config file location, following XDG
// (~/.config/seqtools/config.toml).
func DefaultPath(app string) (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, app, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, FileName), nil
}
