// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"

	"github.com/spf13/viper"

	"github.com/feldman-go/feldman/drbg"
	"github.com/feldman-go/feldman/field"
)

var (
	errUnknownParams = errors.New("unknown parameter set")
	errBadInteger    = errors.New("not an integer")
)

// Config holds the CLI configuration, populated from flags, the optional
// config file and FELDMAN_* environment variables.
type Config struct {
	ConfigFile string
	Params     string
	Prime      string
	Generator  string
	Seed       string
	Verbose    bool
}

// NewConfig returns a Config with zero values; defaults come from the flag
// definitions.
func NewConfig() *Config {
	return &Config{}
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if globalConfig.ConfigFile != "" {
		viper.SetConfigFile(globalConfig.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".feldman")
		}
	}

	viper.SetEnvPrefix("FELDMAN")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// newLogger returns a stderr logger; debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseBigInt parses a decimal or 0x-prefixed hexadecimal integer.
func parseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%q is %w", s, errBadInteger)
	}

	return v, nil
}

// resolveParameters builds the field parameters from the configuration:
// an explicit --prime/--generator pair wins over the named set.
func resolveParameters(logger *slog.Logger) (*field.Parameters, error) {
	prime := viper.GetString("prime")
	generator := viper.GetString("generator")

	if prime != "" {
		p, err := parseBigInt(prime)
		if err != nil {
			return nil, fmt.Errorf("invalid prime: %w", err)
		}

		g, err := parseBigInt(generator)
		if err != nil {
			return nil, fmt.Errorf("invalid generator: %w", err)
		}

		return field.NewParameters(p, g)
	}

	switch name := viper.GetString("params"); name {
	case "", "rfc3526-2048":
		return field.RFC3526Group14(), nil
	case "insecure-2039":
		logger.Warn("using the insecure p=2039 demonstration group; never protect a real secret with it")
		return field.Insecure2039(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownParams, name)
	}
}

// resolveRandom returns the session randomness source: deterministic when a
// seed is configured, crypto/rand otherwise (nil lets the engine default).
func resolveRandom(logger *slog.Logger) (io.Reader, error) {
	seed := viper.GetString("seed")
	if seed == "" {
		return nil, nil
	}

	raw, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	logger.Warn("deterministic seed supplied; the sharing session is reproducible and not confidential")

	return drbg.New(raw)
}
