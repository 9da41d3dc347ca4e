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
	"io"
	"math/big"

	"github.com/feldman-go/feldman/field"
)

var (
	errPolyWrongSize    = errors.New("invalid number of coefficients in polynomial")
	errPolySecretNotSet = errors.New("provided polynomial's first coefficient not set to the secret")
	errPolyHasNilCoeff  = errors.New("the polynomial has a nil coefficient")
	errPolyCoeffRange   = errors.New("a polynomial coefficient is not a scalar")
	errPolyUnknownCoord = errors.New("the coordinate does not appear in the interpolation set")
)

// Polynomial over the scalar field Z_Q, represented as a list of threshold
// coefficients. The constant term (the secret) is in the first position and
// the highest degree coefficient is in the last position.
type Polynomial []*big.Int

// NewPolynomial returns a Polynomial with the capacity to hold the desired
// number of coefficients.
func NewPolynomial(coefficients uint16) Polynomial {
	return make(Polynomial, coefficients)
}

// makePolynomial assembles the secret polynomial for one sharing session:
// the constant term is the secret and the remaining threshold-1 coefficients
// are drawn uniformly from [0, Q) using the provided random source. A nil
// secret means a fresh random secret. Callers may instead supply the full
// coefficient list, which is validated against the secret and the field.
func makePolynomial(
	params *field.Parameters,
	secret *big.Int,
	threshold uint16,
	random io.Reader,
	coefficients ...*big.Int,
) (Polynomial, error) {
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}

	if secret != nil {
		if secret.Sign() < 0 {
			return nil, ErrNegativeSecret
		}

		if !params.IsScalar(secret) {
			return nil, fmt.Errorf("%w: secret needs %d bits, scalar field has %d",
				ErrSecretTooLarge, secret.BitLen(), params.Q.BitLen())
		}
	}

	p := NewPolynomial(threshold)

	switch len(coefficients) {
	case 0:
		i := uint16(0)

		if secret != nil {
			p[0] = new(big.Int).Set(secret)
			i++
		}

		for ; i < threshold; i++ {
			coeff, err := params.RandomScalar(random)
			if err != nil {
				return nil, err
			}

			p[i] = coeff
		}
	case int(threshold):
		if err := copyPolynomial(params, p, coefficients); err != nil {
			return nil, err
		}

		if secret != nil && p[0].Cmp(secret) != 0 {
			return nil, errPolySecretNotSet
		}
	default:
		return nil, errPolyWrongSize
	}

	return p, nil
}

func copyPolynomial(params *field.Parameters, dst Polynomial, src []*big.Int) error {
	if len(dst) != len(src) {
		return errPolyWrongSize
	}

	for index, coeff := range src {
		if coeff == nil {
			return errPolyHasNilCoeff
		}

		if !params.IsScalar(coeff) {
			return fmt.Errorf("%w: coefficient %d", errPolyCoeffRange, index)
		}

		dst[index] = new(big.Int).Set(coeff)
	}

	return nil
}

// Evaluate evaluates the polynomial at point x using Horner's method, with
// every step reduced modulo Q. It never modifies the coefficients, so
// repeated evaluations within one session are deterministic.
func (p Polynomial) Evaluate(params *field.Parameters, x *big.Int) *big.Int {
	if len(p) == 0 {
		return big.NewInt(0)
	}

	xq := new(big.Int).Mod(x, params.Q)

	value := new(big.Int).Set(p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		value = params.Mul(value, xq)
		value = params.Add(value, p[i])
	}

	return value
}

func (p Polynomial) verifyInterpolatingInput(id *big.Int) error {
	if id == nil || id.Sign() == 0 {
		return ErrZeroCoordinate
	}

	if p.hasNil() {
		return errPolyHasNilCoeff
	}

	if p.hasZero() {
		return ErrZeroCoordinate
	}

	if !p.has(id) {
		return errPolyUnknownCoord
	}

	if p.hasDuplicates() {
		return ErrDuplicateCoordinate
	}

	return nil
}

func (p Polynomial) hasNil() bool {
	for _, xi := range p {
		if xi == nil {
			return true
		}
	}

	return false
}

// has returns whether x appears in the coordinate set.
func (p Polynomial) has(x *big.Int) bool {
	for _, xi := range p {
		if xi.Cmp(x) == 0 {
			return true
		}
	}

	return false
}

func (p Polynomial) hasZero() bool {
	for _, xi := range p {
		if xi.Sign() == 0 {
			return true
		}
	}

	return false
}

func (p Polynomial) hasDuplicates() bool {
	visited := make(map[string]bool, len(p))

	for _, xi := range p {
		enc := xi.String()
		if visited[enc] {
			return true
		}

		visited[enc] = true
	}

	return false
}

// DeriveInterpolatingValue derives the Lagrange basis value at x=0 for the
// coordinate id within the coordinate set p:
//
//	L_id(0) = Π_{j≠id} x_j / (x_j - id)  (mod Q)
//
// id and all coordinates must be nonzero and pairwise distinct.
func (p Polynomial) DeriveInterpolatingValue(params *field.Parameters, id *big.Int) (*big.Int, error) {
	if err := p.verifyInterpolatingInput(id); err != nil {
		return nil, err
	}

	numerator := big.NewInt(1)
	denominator := big.NewInt(1)

	for _, xj := range p {
		if xj.Cmp(id) == 0 {
			continue
		}

		numerator = params.Mul(numerator, xj)
		denominator = params.Mul(denominator, params.Sub(xj, id))
	}

	inv, err := params.Inv(denominator)
	if err != nil {
		return nil, err
	}

	return params.Mul(numerator, inv), nil
}

// zero overwrites every coefficient in place.
func (p Polynomial) zero() {
	for _, coeff := range p {
		if coeff != nil {
			coeff.SetInt64(0)
		}
	}
}
