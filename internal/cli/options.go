// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"code.hybscloud.com/stateiter/tokenize"
)

// Options configures a tokenizer run. Values come from an optional YAML
// config file, overridden by command line flags.
type Options struct {
	Delimiter string `yaml:"delimiter" validate:"oneof=alnum ascii space punct chars"`
	Chars     string `yaml:"chars" validate:"required_if=Delimiter chars"`
	Format    string `yaml:"format" validate:"oneof=lines table yaml json"`
	LogLevel  string `yaml:"log-level" validate:"oneof=debug info warn error"`
}

// DefaultOptions returns the options used when neither a config file nor a
// flag sets a value.
func DefaultOptions() Options {
	return Options{
		Delimiter: "alnum",
		Format:    "lines",
		LogLevel:  "warn",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return usageErr(fmt.Errorf("invalid %s %q (%s %s)", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
		}
		return usageErr(err)
	}
	return nil
}

// Predicate returns the delimiter predicate selected by the options.
func (o Options) Predicate() tokenize.Predicate[rune] {
	switch o.Delimiter {
	case "ascii":
		return tokenize.NotASCIIAlnum
	case "space":
		return tokenize.Space
	case "punct":
		return tokenize.Punct
	case "chars":
		return tokenize.AnyOf(o.Chars)
	default:
		return tokenize.NotAlnum
	}
}

// Level returns the slog level selected by the options.
func (o Options) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// LoadConfig decodes a YAML config file over o.
// Keys missing from the file keep their current value; unknown keys are an
// error.
func (o *Options) LoadConfig(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("error opening config %q: %w", fn, err)
	}
	defer f.Close()
	return o.decodeConfig(f)
}

func (o *Options) decodeConfig(r io.Reader) error {
	// don't change the options until the whole file decodes
	decoded := *o
	d := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := d.Decode(&decoded); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file, that's ok
		}
		return usageErr(fmt.Errorf("error loading config: %w", err))
	}
	*o = decoded
	return nil
}
