// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package feldman_test

import (
	"fmt"
	"math/big"

	"github.com/feldman-go/feldman"
	"github.com/feldman-go/feldman/field"
)

// ExampleShard shows how to split a secret into shares and recombine it from
// a subset of the shares.
func ExampleShard() {
	params := field.Default()

	// The secret to share. Any non-negative integer below the group's
	// subgroup order works; nil asks for a random one.
	secret := big.NewInt(143)

	// Shard the secret into 7 shares, of which any 3 suffice to recover it.
	threshold := uint16(3)
	shareholders := uint16(7)

	shares, err := feldman.Shard(params, secret, threshold, shareholders, nil)
	if err != nil {
		panic(err)
	}

	// Any threshold-sized subset of shares, in any order, rebuilds the secret.
	subset := []*feldman.Share{shares[5], shares[0], shares[3]}

	recovered, err := feldman.CombineShares(params, subset)
	if err != nil {
		panic(err)
	}

	if recovered.Cmp(secret) != 0 {
		panic("recovered secret does not match the dealt secret")
	}

	fmt.Println("Secret sharded and recovered from a subset of shares!")

	// Output: Secret sharded and recovered from a subset of shares!
}

// ExampleShardAndCommit shows how a dealer publishes commitments alongside
// the shares so each shareholder can verify what they received.
func ExampleShardAndCommit() {
	params := field.Default()

	shares, commitment, err := feldman.ShardAndCommit(params, big.NewInt(143), 3, 5, nil)
	if err != nil {
		panic(err)
	}

	for _, share := range shares {
		valid, err := feldman.VerifyShare(params, share, commitment)
		if err != nil {
			panic(err)
		}

		if !valid {
			panic("a dealt share failed verification")
		}
	}

	fmt.Println("All shares verified against the published commitments!")

	// Output: All shares verified against the published commitments!
}

// ExampleSession shows the session lifecycle: generate, commit, distribute,
// verify and reconstruct.
func ExampleSession() {
	session, err := feldman.NewSession(field.Default(), 2, 3, nil)
	if err != nil {
		panic(err)
	}

	if err := session.Generate(big.NewInt(143)); err != nil {
		panic(err)
	}

	if _, err := session.Commit(); err != nil {
		panic(err)
	}

	shares, err := session.Distribute()
	if err != nil {
		panic(err)
	}

	for _, share := range shares {
		valid, err := session.Verify(share)
		if err != nil {
			panic(err)
		}

		if !valid {
			panic("a dealt share failed verification")
		}
	}

	recovered, err := session.Reconstruct(shares[1:])
	if err != nil {
		panic(err)
	}

	fmt.Printf("Recovered the secret from %d of %d shares: %s\n", len(shares)-1, len(shares), recovered)

	// Output: Recovered the secret from 2 of 3 shares: 143
}
