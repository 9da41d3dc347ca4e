// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package cli implements the feldman command line interface, a thin wrapper
// around the sharing engine for demonstrations and manual dealing.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var globalConfig *Config

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "feldman",
	Short: "Verifiable threshold secret sharing",
	Long: `feldman splits an integer secret into n shares of which any k (the
threshold) reconstruct it exactly, while fewer than k reveal nothing. The
dealer additionally publishes Feldman commitments so each share can be
checked against the secret polynomial without revealing it.

The default field is the 2048-bit MODP group from RFC 3526. Supply --prime
and --generator for a custom Schnorr group, or --params insecure-2039 for
the tiny textbook group (tests and demonstrations only).`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	globalConfig = NewConfig()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&globalConfig.ConfigFile, "config", "",
		"config file (default is $HOME/.feldman.yaml)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.Params, "params", "rfc3526-2048",
		"named parameter set (rfc3526-2048, insecure-2039)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.Prime, "prime", "",
		"safe prime modulus p, decimal or 0x-hex (overrides --params)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.Generator, "generator", "2",
		"generator g of the order-(p-1)/2 subgroup")
	rootCmd.PersistentFlags().StringVar(&globalConfig.Seed, "seed", "",
		"hex seed for a deterministic session (reproducible output; testing only)")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Verbose, "verbose", "v", false,
		"verbose diagnostics on stderr")

	for _, name := range []string{"params", "prime", "generator", "seed"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(versionCmd)
}
