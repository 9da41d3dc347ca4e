// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package feldman

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/feldman-go/feldman/field"
)

// State describes the lifecycle of a sharing session.
type State uint8

const (
	// StateUninitialized is the state before a polynomial exists.
	StateUninitialized State = iota

	// StatePolynomialGenerated means the secret polynomial is set.
	StatePolynomialGenerated

	// StateCommitted means the commitment set has been produced.
	StateCommitted

	// StateSharesDistributed means the shares have been produced.
	StateSharesDistributed

	// StateReconstructed is terminal: the polynomial has been wiped and no
	// further mutation is permitted.
	StateReconstructed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePolynomialGenerated:
		return "polynomial generated"
	case StateCommitted:
		return "committed"
	case StateSharesDistributed:
		return "shares distributed"
	case StateReconstructed:
		return "reconstructed"
	default:
		return "unknown"
	}
}

// Session is a single dealer-side sharing session. It exclusively owns the
// secret polynomial from generation until reconstruction, after which the
// polynomial is wiped and the session becomes terminal. Committing and
// distributing may happen in either order, but both require a generated
// polynomial. A Session is not safe for concurrent use; run independent
// sessions for parallelism.
type Session struct {
	params        *field.Parameters
	random        io.Reader
	polynomial    Polynomial
	commitment    *Commitment
	shares        []*Share
	threshold     uint16
	maximum       uint16
	reconstructed bool
}

// NewSession returns a session for splitting one secret into maximum shares
// with the given reconstruction threshold. A nil random source defaults to
// crypto/rand.Reader; pass a deterministic reader (e.g. drbg.New) for
// reproducible sessions.
func NewSession(params *field.Parameters, threshold, maximum uint16, random io.Reader) (*Session, error) {
	if params == nil {
		return nil, errNilParams
	}

	if threshold == 0 || maximum < threshold {
		return nil, fmt.Errorf("%w: threshold %d, shares %d", ErrInvalidThreshold, threshold, maximum)
	}

	if new(big.Int).SetUint64(uint64(maximum)).Cmp(params.Q) >= 0 {
		return nil, fmt.Errorf("%w: %d shares, field order %s", ErrTooManyShares, maximum, params.Q)
	}

	return &Session{
		params:    params,
		random:    random,
		threshold: threshold,
		maximum:   maximum,
	}, nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	switch {
	case s.reconstructed:
		return StateReconstructed
	case s.shares != nil:
		return StateSharesDistributed
	case s.commitment != nil:
		return StateCommitted
	case s.polynomial != nil:
		return StatePolynomialGenerated
	default:
		return StateUninitialized
	}
}

// Generate sets the session's secret polynomial: constant term = secret,
// remaining coefficients drawn from the session's random source. The
// polynomial is generated exactly once per session.
func (s *Session) Generate(secret *big.Int) error {
	if s.reconstructed {
		return fmt.Errorf("%w: session is closed", ErrSessionState)
	}

	if s.polynomial != nil {
		return fmt.Errorf("%w: polynomial already generated", ErrSessionState)
	}

	p, err := makePolynomial(s.params, secret, s.threshold, s.random)
	if err != nil {
		return err
	}

	s.polynomial = p

	return nil
}

// Commit returns the Feldman commitment to the session polynomial, computing
// it on first call and returning the cached value afterwards.
func (s *Session) Commit() (*Commitment, error) {
	if err := s.requirePolynomial(); err != nil {
		return nil, err
	}

	if s.commitment == nil {
		commitment, err := Commit(s.params, s.polynomial)
		if err != nil {
			return nil, err
		}

		s.commitment = commitment
	}

	return s.commitment, nil
}

// Distribute returns the session's shares, evaluated at x = 1..maximum,
// computing them on first call and returning the cached set afterwards.
func (s *Session) Distribute() ([]*Share, error) {
	if err := s.requirePolynomial(); err != nil {
		return nil, err
	}

	if s.shares == nil {
		shares := make([]*Share, s.maximum)
		for i := uint16(1); i <= s.maximum; i++ {
			shares[i-1] = makeShare(s.params, i, s.polynomial, s.threshold)
		}

		s.shares = shares
	}

	return s.shares, nil
}

// Evaluate is a read-only diagnostic query returning f(x) mod Q. It never
// regenerates or mutates the polynomial and does not advance the session
// state.
func (s *Session) Evaluate(x uint16) (*big.Int, error) {
	if err := s.requirePolynomial(); err != nil {
		return nil, err
	}

	return s.polynomial.Evaluate(s.params, new(big.Int).SetUint64(uint64(x))), nil
}

// Verify checks a share against the session's commitment. The commitment
// must have been produced first.
func (s *Session) Verify(share *Share) (bool, error) {
	if s.commitment == nil {
		return false, fmt.Errorf("%w: no commitment produced", ErrSessionState)
	}

	return VerifyShare(s.params, share, s.commitment)
}

// Reconstruct recovers the secret from a qualifying subset of the session's
// shares, then wipes the polynomial and closes the session. Requires shares
// to have been distributed.
func (s *Session) Reconstruct(shares []*Share) (*big.Int, error) {
	if s.reconstructed {
		return nil, fmt.Errorf("%w: session is closed", ErrSessionState)
	}

	if s.shares == nil {
		return nil, fmt.Errorf("%w: shares have not been distributed", ErrSessionState)
	}

	secret, err := CombineShares(s.params, shares)
	if err != nil {
		return nil, err
	}

	s.polynomial.zero()
	_ = slices.Delete(s.polynomial, 0, len(s.polynomial))
	s.polynomial = nil
	s.reconstructed = true

	return secret, nil
}

func (s *Session) requirePolynomial() error {
	if s.reconstructed {
		return fmt.Errorf("%w: session is closed", ErrSessionState)
	}

	if s.polynomial == nil {
		return fmt.Errorf("%w: polynomial not generated", ErrSessionState)
	}

	return nil
}
