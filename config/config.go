// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the session settings of the machine.
//
// Settings are applied in order: defaults, YAML file, environment. Command
// line flags are applied by the caller afterwards.
package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/ndcpu/branch"
	"github.com/ezrec/ndcpu/machine"
)

// Environment variables that override the file.
const (
	ENV_BITCOUNT = "NDCPU_BITCOUNT"
	ENV_QUIET    = "NDCPU_QUIET"
	ENV_VERBOSE  = "NDCPU_VERBOSE"
)

// Config of a session.
type Config struct {
	Width       uint   `yaml:"bitcount"`    // Stack size in bits.
	Quiet       bool   `yaml:"quiet"`       // Print nothing but the output.
	Verbose     bool   `yaml:"verbose"`     // Log every transition.
	Script      string `yaml:"script"`      // Starlark program to run instead of the REPL.
	Interactive bool   `yaml:"interactive"` // Terminal UI instead of the REPL.
}

// Default configuration.
func Default() Config {
	return Config{
		Width: machine.DEFAULT_WIDTH,
	}
}

// Load reads the configuration file at path, if any, and applies the
// environment. A missing file leaves the defaults in place.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	if len(path) != 0 {
		err = cfg.loadFile(path)
		if err != nil {
			return
		}
	}

	err = cfg.loadEnv(os.LookupEnv)
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

func (cfg *Config) loadFile(path string) (err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = &ErrFile{Path: path, Err: err}
	}

	return
}

func (cfg *Config) loadEnv(lookup func(key string) (string, bool)) (err error) {
	if value, ok := lookup(ENV_BITCOUNT); ok {
		var width uint64
		width, err = strconv.ParseUint(value, 10, 32)
		if err != nil {
			err = &ErrEnv{Key: ENV_BITCOUNT, Value: value, Err: err}
			return
		}
		cfg.Width = uint(width)
	}

	for key, field := range map[string]*bool{
		ENV_QUIET:   &cfg.Quiet,
		ENV_VERBOSE: &cfg.Verbose,
	} {
		value, ok := lookup(key)
		if !ok {
			continue
		}
		*field, err = strconv.ParseBool(value)
		if err != nil {
			err = &ErrEnv{Key: key, Value: value, Err: err}
			return
		}
	}

	return
}

// Validate checks the width range and mode combination.
func (cfg *Config) Validate() (err error) {
	if cfg.Width < branch.MinWidth || cfg.Width > branch.MaxWidth {
		err = branch.ErrWidth(cfg.Width)
		return
	}

	if cfg.Interactive && len(cfg.Script) != 0 {
		err = ErrModeConflict
		return
	}

	return
}
