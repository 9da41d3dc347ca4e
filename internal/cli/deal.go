// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cli

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/feldman-go/feldman"
)

var dealCmd = &cobra.Command{
	Use:   "deal <secret> <shares> <threshold>",
	Short: "Split a secret into verifiable shares and demonstrate recovery",
	Long: `deal splits the integer secret into the requested number of shares,
publishes the commitment set, reports each share's validity against the
commitments, and reconstructs the secret from a threshold-sized subset.`,
	Args: cobra.ExactArgs(3),
	RunE: runDeal,
}

func parseCount(name, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}

	return uint16(v), nil
}

func runDeal(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), globalConfig.Verbose)

	secret, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("secret must be an integer, got %q", args[0])
	}

	shares, err := parseCount("shares", args[1])
	if err != nil {
		return err
	}

	threshold, err := parseCount("threshold", args[2])
	if err != nil {
		return err
	}

	params, err := resolveParameters(logger)
	if err != nil {
		return err
	}

	random, err := resolveRandom(logger)
	if err != nil {
		return err
	}

	logger.Debug("field parameters resolved",
		"modulus_bits", params.P.BitLen(),
		"generator", params.G)

	session, err := feldman.NewSession(params, threshold, shares, random)
	if err != nil {
		return err
	}

	if err := session.Generate(secret); err != nil {
		return err
	}

	diagnostic, err := session.Evaluate(1)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Polynomial value at x=1: %s\n", diagnostic)

	commitment, err := session.Commit()
	if err != nil {
		return err
	}

	shareSet, err := session.Distribute()
	if err != nil {
		return err
	}

	logger.Debug("session dealt", "state", session.State().String(), "shares", len(shareSet))

	fmt.Fprintln(out, "Generated shares:")

	for _, share := range shareSet {
		fmt.Fprintf(out, "  (%d, %s)\n", share.ID, share.Value)
	}

	fmt.Fprintln(out, "Commitments:")

	for i, point := range commitment.Points {
		fmt.Fprintf(out, "  C%d = %s\n", i, point)
	}

	for _, share := range shareSet {
		valid, err := session.Verify(share)
		if err != nil {
			return err
		}

		status := "Valid"
		if !valid {
			status = "Invalid"
		}

		fmt.Fprintf(out, "Share (%d, %s): %s\n", share.ID, share.Value, status)
	}

	recovered, err := session.Reconstruct(shareSet[:threshold])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Reconstructed secret: %s\n", recovered)

	return nil
}
