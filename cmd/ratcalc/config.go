package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeycumines/go-ratio/internal/calc"
	"github.com/joeycumines/logiface"
	"github.com/urfave/cli/v2"
)

type (
	// fileConfig is the format of the --config file, e.g.
	//
	//	type = "big"
	//	log_level = "debug"
	//
	//	[approx]
	//	max_error = 1e-9
	//	max_iterations = 50
	//
	//	[format]
	//	places = 10
	fileConfig struct {
		Type     string `toml:"type"`
		LogLevel string `toml:"log_level"`
		Approx   struct {
			MaxError      float64 `toml:"max_error"`
			MaxIterations int     `toml:"max_iterations"`
		} `toml:"approx"`
		Format struct {
			Places *int `toml:"places"`
		} `toml:"format"`
	}

	options struct {
		calc     calc.Config
		logLevel logiface.Level
		json     bool
	}
)

const (
	defaultPlaces   = 6
	defaultLogLevel = logiface.LevelWarning
)

func loadFileConfig(path string) (*fileConfig, error) {
	var config fileConfig
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf(`ratcalc: failed to load config %q: %w`, path, err)
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return nil, fmt.Errorf(`ratcalc: unknown keys in config %q: %v`, path, keys)
	}
	return &config, nil
}

// loadOptions resolves the defaults, then the config file (if any), then
// any explicitly set flags.
func loadOptions(c *cli.Context) (*options, error) {
	opts := options{
		calc: calc.Config{
			Type:   `int64`,
			Places: defaultPlaces,
		},
		logLevel: defaultLogLevel,
	}

	if path := c.String(`config`); path != `` {
		file, err := loadFileConfig(path)
		if err != nil {
			return nil, err
		}
		if file.Type != `` {
			opts.calc.Type = file.Type
		}
		if file.LogLevel != `` {
			if opts.logLevel, err = parseLevel(file.LogLevel); err != nil {
				return nil, err
			}
		}
		opts.calc.MaxError = file.Approx.MaxError
		opts.calc.MaxIterations = file.Approx.MaxIterations
		if file.Format.Places != nil {
			opts.calc.Places = *file.Format.Places
		}
	}

	if c.IsSet(`type`) {
		opts.calc.Type = c.String(`type`)
	}
	if c.IsSet(`log-level`) {
		var err error
		if opts.logLevel, err = parseLevel(c.String(`log-level`)); err != nil {
			return nil, err
		}
	}
	if c.IsSet(`places`) {
		opts.calc.Places = c.Int(`places`)
	}
	if c.IsSet(`max-error`) {
		opts.calc.MaxError = c.Float64(`max-error`)
	}
	if c.IsSet(`max-iterations`) {
		opts.calc.MaxIterations = c.Int(`max-iterations`)
	}
	opts.json = c.Bool(`json`)

	if !calc.ValidType(opts.calc.Type) {
		return nil, fmt.Errorf(`%w: %q (expected one of %s)`, calc.ErrUnknownType, opts.calc.Type, strings.Join(calc.Types, `, `))
	}
	if opts.calc.MaxError < 0 {
		return nil, fmt.Errorf(`ratcalc: invalid max error: %v`, opts.calc.MaxError)
	}
	if opts.calc.MaxIterations < 0 {
		return nil, fmt.Errorf(`ratcalc: invalid max iterations: %d`, opts.calc.MaxIterations)
	}

	return &opts, nil
}

// parseLevel accepts the names used by [logiface.Level.String], plus a few
// common aliases.
func parseLevel(s string) (logiface.Level, error) {
	switch s = strings.ToLower(s); s {
	case `error`:
		return logiface.LevelError, nil
	case `warn`:
		return logiface.LevelWarning, nil
	case `information`:
		return logiface.LevelInformational, nil
	}
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if level.String() == s {
			return level, nil
		}
	}
	return logiface.LevelDisabled, fmt.Errorf(`ratcalc: invalid log level: %q`, s)
}
