// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package feldman

import "errors"

var (
	// ErrInvalidThreshold is returned when the threshold is zero or exceeds
	// the number of shares to produce.
	ErrInvalidThreshold = errors.New("threshold is zero or exceeds the number of shares")

	// ErrNoShares is returned when an empty share set is provided.
	ErrNoShares = errors.New("no shares provided")

	// ErrInsufficientShares is returned when reconstruction is attempted with
	// fewer shares than the threshold.
	ErrInsufficientShares = errors.New("not enough shares to meet the threshold")

	// ErrTooManyShares is returned when the requested share count reaches the
	// scalar field order; the coordinate x = Q aliases x = 0 and its share
	// would carry the secret itself.
	ErrTooManyShares = errors.New("share count reaches the scalar field order")

	// ErrInconsistentShares is returned when the provided shares disagree on
	// the threshold they were produced with.
	ErrInconsistentShares = errors.New("shares disagree on the threshold")

	// ErrDuplicateCoordinate is returned when two shares carry the same
	// x-coordinate, which would make interpolation divide by zero.
	ErrDuplicateCoordinate = errors.New("two shares have the same x-coordinate")

	// ErrZeroCoordinate is returned when a share's x-coordinate is zero; the
	// polynomial evaluated at zero is the secret itself.
	ErrZeroCoordinate = errors.New("share x-coordinate is zero")

	// ErrParameterMismatch is returned when verification is attempted with
	// field parameters different from those the commitment was built with.
	// This is a usage error, not evidence of a forged share.
	ErrParameterMismatch = errors.New("field parameters differ from those used for commitment")

	// ErrCommitmentEmpty is returned when a nil or empty commitment is used
	// for verification.
	ErrCommitmentEmpty = errors.New("commitment is nil or empty")

	// ErrSecretTooLarge is returned when the secret is not an element of the
	// scalar field [0, Q).
	ErrSecretTooLarge = errors.New("secret does not fit in the scalar field")

	// ErrNegativeSecret is returned when the secret is negative.
	ErrNegativeSecret = errors.New("secret is negative")

	// ErrSessionState is returned when a session operation is attempted in a
	// state that does not permit it.
	ErrSessionState = errors.New("operation not permitted in current session state")
)

var (
	errNilParams      = errors.New("field parameters are nil")
	errNilShareValue  = errors.New("share value is nil")
	errShareValueSize = errors.New("share value is not a scalar")
)
