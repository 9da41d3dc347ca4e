// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package feldman

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/feldman-go/feldman/field"
)

var errCommitmentNilPoint = errors.New("commitment has nil point")

// Commitment is a Feldman vector commitment to the secret polynomial:
// one point C_i = G^{a_i} mod P per coefficient, in coefficient order. The
// points reveal nothing about the coefficients under the discrete-log
// assumption and are safe to publish.
type Commitment struct {
	Params *field.Parameters `json:"params"`
	Points []*big.Int        `json:"points"`
}

// Commit builds the commitment to each of the polynomial's coefficients
// (of threshold length, which uniquely determines the polynomial). It is
// deterministic for a given polynomial and independent of which shares are
// later distributed.
func Commit(params *field.Parameters, polynomial Polynomial) (*Commitment, error) {
	if params == nil {
		return nil, errNilParams
	}

	if len(polynomial) == 0 {
		return nil, errPolyWrongSize
	}

	points := make([]*big.Int, len(polynomial))

	for i, coeff := range polynomial {
		if coeff == nil {
			return nil, errPolyHasNilCoeff
		}

		point, err := params.ExpG(coeff)
		if err != nil {
			return nil, fmt.Errorf("failed to commit to coefficient %d: %w", i, err)
		}

		points[i] = point
	}

	return &Commitment{Params: params, Points: points}, nil
}

// Threshold returns the threshold the committed polynomial was built for.
func (c *Commitment) Threshold() uint16 {
	return uint16(len(c.Points))
}

// PublicValue derives the public verification value for the shareholder id
// from the commitment alone:
//
//	Π_i C_i^{id^i} mod P = G^{f(id)} mod P
//
// with the exponents id^i reduced modulo Q, the order of the committed
// points.
func (c *Commitment) PublicValue(id uint16) (*big.Int, error) {
	if c == nil || len(c.Points) == 0 {
		return nil, ErrCommitmentEmpty
	}

	if id == 0 {
		return nil, ErrZeroCoordinate
	}

	params := c.Params
	x := new(big.Int).Mod(new(big.Int).SetUint64(uint64(id)), params.Q)

	// A coordinate that reduces to zero mod Q aliases x = 0, where the
	// polynomial is the secret itself.
	if x.Sign() == 0 {
		return nil, ErrZeroCoordinate
	}

	power := big.NewInt(1)
	result := big.NewInt(1)

	for i, point := range c.Points {
		if point == nil {
			return nil, fmt.Errorf("%w: point %d", errCommitmentNilPoint, i)
		}

		term, err := params.ExpElement(point, power)
		if err != nil {
			return nil, err
		}

		result = params.MulElement(result, term)
		power = params.Mul(power, x)
	}

	return result, nil
}

// Verify checks the share (id, value) against the published commitment using
// the homomorphic property of exponentiation:
//
//	G^value == Π_i C_i^{id^i}  (mod P)
//
// A false result means the share is inconsistent with the committed
// polynomial; it is a normal outcome, not an error. Errors indicate misuse:
// an empty commitment, a zero coordinate, or params differing from those the
// commitment was built with.
func Verify(params *field.Parameters, id uint16, value *big.Int, c *Commitment) (bool, error) {
	if c == nil || len(c.Points) == 0 {
		return false, ErrCommitmentEmpty
	}

	if params == nil {
		return false, errNilParams
	}

	if !params.Equal(c.Params) {
		return false, ErrParameterMismatch
	}

	if value == nil {
		return false, errNilShareValue
	}

	lhs, err := params.ExpG(value)
	if err != nil {
		return false, err
	}

	rhs, err := c.PublicValue(id)
	if err != nil {
		return false, err
	}

	return lhs.Cmp(rhs) == 0, nil
}

// VerifyShare checks a share against the published commitment. See Verify.
func VerifyShare(params *field.Parameters, share *Share, c *Commitment) (bool, error) {
	if share == nil {
		return false, ErrNoShares
	}

	return Verify(params, share.ID, share.Value, c)
}
