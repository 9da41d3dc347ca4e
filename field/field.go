// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field implements modular arithmetic over Schnorr groups: a safe
// prime modulus P = 2Q+1 with Q prime, and a generator G of the order-Q
// subgroup of the multiplicative group modulo P. Scalars (secrets, polynomial
// coefficients, share values) are elements of Z_Q; group elements
// (commitments, public verification values) are elements of Z_P.
package field

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrInvalidExponent is returned when a negative exponent is passed to Exp.
	ErrInvalidExponent = errors.New("exponent is negative")

	// ErrInvalidModulus is returned when the modulus is nil or smaller than two.
	ErrInvalidModulus = errors.New("modulus must be greater than one")

	// ErrNotInvertible is returned when a value has no inverse modulo the modulus.
	ErrNotInvertible = errors.New("value is not invertible")

	// ErrInvalidParameters is returned when group parameters fail validation.
	ErrInvalidParameters = errors.New("invalid group parameters")

	errNilValue = errors.New("value is nil")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Exp computes base^exponent mod modulus with square-and-multiply, in
// O(log exponent) multiplications. The result is always in [0, modulus).
// Negative exponents are rejected with ErrInvalidExponent rather than being
// resolved to a modular inverse.
func Exp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil {
		return nil, errNilValue
	}

	if modulus == nil || modulus.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}

	if exponent.Sign() < 0 {
		return nil, ErrInvalidExponent
	}

	return new(big.Int).Exp(base, exponent, modulus), nil
}

// Inv computes the multiplicative inverse of a modulo modulus using the
// extended Euclidean algorithm. It returns ErrNotInvertible when
// gcd(a, modulus) != 1.
func Inv(a, modulus *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, errNilValue
	}

	if modulus == nil || modulus.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}

	inv := new(big.Int).ModInverse(a, modulus)
	if inv == nil {
		return nil, fmt.Errorf("%w modulo %s", ErrNotInvertible, modulus)
	}

	return inv, nil
}

// Parameters holds the public parameters of a Schnorr group. P is a safe
// prime, Q = (P-1)/2 its prime cofactor, and G a generator of the order-Q
// subgroup of Z_P*.
type Parameters struct {
	P *big.Int `json:"p"`
	Q *big.Int `json:"q"`
	G *big.Int `json:"g"`
}

// NewParameters builds Parameters from a safe prime and a generator,
// deriving Q = (p-1)/2, and validates the group structure.
func NewParameters(p, g *big.Int) (*Parameters, error) {
	if p == nil || g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, errNilValue)
	}

	q := new(big.Int).Sub(p, one)
	q.Rsh(q, 1)

	params := &Parameters{
		P: new(big.Int).Set(p),
		Q: q,
		G: new(big.Int).Set(g),
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Validate checks the group structure: P and Q prime, P = 2Q+1, and G a
// generator of the order-Q subgroup.
func (p *Parameters) Validate() error {
	if p.P == nil || p.Q == nil || p.G == nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameters, errNilValue)
	}

	if !p.P.ProbablyPrime(20) {
		return fmt.Errorf("%w: modulus is not prime", ErrInvalidParameters)
	}

	if !p.Q.ProbablyPrime(20) {
		return fmt.Errorf("%w: subgroup order is not prime", ErrInvalidParameters)
	}

	pCheck := new(big.Int).Lsh(p.Q, 1)
	pCheck.Add(pCheck, one)

	if pCheck.Cmp(p.P) != 0 {
		return fmt.Errorf("%w: modulus is not a safe prime for the subgroup order", ErrInvalidParameters)
	}

	if p.G.Cmp(two) < 0 || p.G.Cmp(new(big.Int).Sub(p.P, one)) >= 0 {
		return fmt.Errorf("%w: generator out of range", ErrInvalidParameters)
	}

	// G generates the order-Q subgroup iff G^Q == 1 and G != 1.
	if new(big.Int).Exp(p.G, p.Q, p.P).Cmp(one) != 0 {
		return fmt.Errorf("%w: generator order does not divide the subgroup order", ErrInvalidParameters)
	}

	return nil
}

// Equal reports whether both parameter sets describe the same group.
func (p *Parameters) Equal(other *Parameters) bool {
	if other == nil {
		return false
	}

	return p.P.Cmp(other.P) == 0 && p.G.Cmp(other.G) == 0
}

// ScalarLength returns the byte width of a canonically encoded scalar.
func (p *Parameters) ScalarLength() int {
	return (p.Q.BitLen() + 7) / 8
}

// ElementLength returns the byte width of a canonically encoded group element.
func (p *Parameters) ElementLength() int {
	return (p.P.BitLen() + 7) / 8
}

// IsScalar reports whether v lies in [0, Q).
func (p *Parameters) IsScalar(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(p.Q) < 0
}

// IsElement reports whether v lies in [1, P).
func (p *Parameters) IsElement(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(p.P) < 0
}

// RandomScalar draws a scalar uniformly from [0, Q) using the provided
// random source, defaulting to crypto/rand.Reader when random is nil.
func (p *Parameters) RandomScalar(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}

	s, err := rand.Int(random, p.Q)
	if err != nil {
		return nil, fmt.Errorf("failed to draw a random scalar: %w", err)
	}

	return s, nil
}

// Add computes (a + b) mod Q.
func (p *Parameters) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, p.Q)
}

// Sub computes (a - b) mod Q.
func (p *Parameters) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, p.Q)
}

// Mul computes (a * b) mod Q.
func (p *Parameters) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, p.Q)
}

// Neg computes (-a) mod Q.
func (p *Parameters) Neg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, p.Q)
}

// Inv computes the inverse of a modulo Q.
func (p *Parameters) Inv(a *big.Int) (*big.Int, error) {
	return Inv(a, p.Q)
}

// MulElement computes (a * b) mod P.
func (p *Parameters) MulElement(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, p.P)
}

// ExpG computes G^e mod P.
func (p *Parameters) ExpG(e *big.Int) (*big.Int, error) {
	return Exp(p.G, e, p.P)
}

// ExpElement computes base^e mod P.
func (p *Parameters) ExpElement(base, e *big.Int) (*big.Int, error) {
	return Exp(base, e, p.P)
}
