// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package feldman provides threshold secret sharing with Feldman-style
// verifiable commitments over Schnorr groups. A dealer splits a secret into
// maximum shares of which any threshold reconstruct it exactly, and publishes
// a commitment set that lets anyone check a share against the secret
// polynomial without learning anything about it.
package feldman

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/feldman-go/feldman/field"
)

func makeShare(params *field.Parameters, id uint16, p Polynomial, threshold uint16) *Share {
	x := new(big.Int).SetUint64(uint64(id))

	return &Share{
		ID:        id,
		Value:     p.Evaluate(params, x),
		Threshold: threshold,
	}
}

func innerShard(
	params *field.Parameters,
	secret *big.Int,
	threshold, maximum uint16,
	random io.Reader,
	commit, returnPoly bool,
	coefficients ...*big.Int,
) ([]*Share, Polynomial, *Commitment, error) {
	if params == nil {
		return nil, nil, nil, errNilParams
	}

	if threshold == 0 || maximum < threshold {
		return nil, nil, nil, fmt.Errorf("%w: threshold %d, shares %d", ErrInvalidThreshold, threshold, maximum)
	}

	// Coordinates run 1..maximum and are reduced mod Q, so the share count
	// must stay below the field order or the coordinates wrap through zero.
	if new(big.Int).SetUint64(uint64(maximum)).Cmp(params.Q) >= 0 {
		return nil, nil, nil, fmt.Errorf("%w: %d shares, field order %s", ErrTooManyShares, maximum, params.Q)
	}

	p, err := makePolynomial(params, secret, threshold, random, coefficients...)
	if err != nil {
		return nil, nil, nil, err
	}

	var commitment *Commitment

	if commit {
		if commitment, err = Commit(params, p); err != nil {
			return nil, nil, nil, err
		}
	}

	// Evaluate the polynomial for each point x=1,...,n.
	shares := make([]*Share, maximum)

	for i := uint16(1); i <= maximum; i++ {
		shares[i-1] = makeShare(params, i, p, threshold)
	}

	if returnPoly {
		return shares, p, commitment, nil
	}

	// The polynomial is the dealer's private state; wipe it before returning.
	p.zero()
	_ = slices.Delete(p, 0, len(p))

	return shares, nil, commitment, nil
}

// Shard splits the secret into maximum shares, recoverable by any subset of
// threshold shares, evaluated at x = 1..maximum. If secret is nil, a new
// random secret is created. A nil random source defaults to the
// cryptographically secure crypto/rand.Reader. To use verifiable secret
// sharing, use ShardAndCommit.
func Shard(
	params *field.Parameters,
	secret *big.Int,
	threshold, maximum uint16,
	random io.Reader,
	coefficients ...*big.Int,
) ([]*Share, error) {
	shares, _, _, err := innerShard(params, secret, threshold, maximum, random, false, false, coefficients...)
	return shares, err
}

// ShardAndCommit does the same as Shard and additionally returns the Feldman
// commitment to the secret polynomial, safe to publish alongside the shares.
func ShardAndCommit(
	params *field.Parameters,
	secret *big.Int,
	threshold, maximum uint16,
	random io.Reader,
	coefficients ...*big.Int,
) ([]*Share, *Commitment, error) {
	shares, _, commitment, err := innerShard(params, secret, threshold, maximum, random, true, false, coefficients...)
	return shares, commitment, err
}

// ShardReturnPolynomial splits the secret like Shard and returns the secret
// polynomial without committing to it. The caller takes over custody of the
// polynomial and should wipe it when done. Use Commit to commit to the
// returned polynomial.
func ShardReturnPolynomial(
	params *field.Parameters,
	secret *big.Int,
	threshold, maximum uint16,
	random io.Reader,
	coefficients ...*big.Int,
) ([]*Share, Polynomial, error) {
	shares, p, _, err := innerShard(params, secret, threshold, maximum, random, false, true, coefficients...)
	return shares, p, err
}

// CombineShares recovers the sharded secret from a subset of shares of at
// least threshold size. It recovers the constant term of the interpolating
// polynomial defined by the share set, entirely in the scalar field. The
// result is independent of which qualifying subset is used and of its order.
func CombineShares(params *field.Parameters, shares []*Share) (*big.Int, error) {
	if params == nil {
		return nil, errNilParams
	}

	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	threshold := shares[0].Threshold
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}

	for _, share := range shares {
		if share.Threshold != threshold {
			return nil, ErrInconsistentShares
		}

		if share.Value == nil {
			return nil, errNilShareValue
		}

		if !params.IsScalar(share.Value) {
			return nil, fmt.Errorf("%w: share %d", errShareValueSize, share.ID)
		}
	}

	if len(shares) < int(threshold) {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, len(shares), threshold)
	}

	// Coordinates live in the scalar field; reduce them mod Q so an ID at or
	// above Q is caught as the zero or duplicate coordinate it aliases.
	xCoords := make(Polynomial, len(shares))
	for i, share := range shares {
		xCoords[i] = new(big.Int).Mod(new(big.Int).SetUint64(uint64(share.ID)), params.Q)
	}

	secret := big.NewInt(0)

	for i, share := range shares {
		iv, err := xCoords.DeriveInterpolatingValue(params, xCoords[i])
		if err != nil {
			return nil, err
		}

		secret = params.Add(secret, params.Mul(iv, share.Value))
	}

	return secret, nil
}
