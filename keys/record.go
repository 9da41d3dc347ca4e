// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package keys maintains the public side of a sharing session: per-shareholder
// verification values and the dealer's commitment, enabling a registry and
// public share audits without access to any secret material.
package keys

import (
	"errors"
	"math/big"

	"github.com/feldman-go/feldman"
	"github.com/feldman-go/feldman/field"
)

var (
	errNilShare  = errors.New("the provided share is nil")
	errNilRecord = errors.New("the provided record is nil")
	errNilPublic = errors.New("the provided record has a nil public value")
)

// PublicRecord is the public information about one shareholder: the
// x-coordinate and the verification value G^y mod P. It reveals nothing
// about the share value y under the discrete-log assumption.
type PublicRecord struct {
	// Public is the shareholder's verification value G^y mod P.
	Public *big.Int `json:"public"`

	// ID of the shareholder, the share's x-coordinate.
	ID uint16 `json:"id"`
}

// NewRecord derives the public record for a secret share. The share itself
// is not retained.
func NewRecord(params *field.Parameters, share *feldman.Share) (*PublicRecord, error) {
	if share == nil {
		return nil, errNilShare
	}

	if share.ID == 0 {
		return nil, feldman.ErrZeroCoordinate
	}

	public, err := share.Public(params)
	if err != nil {
		return nil, err
	}

	return &PublicRecord{
		ID:     share.ID,
		Public: public,
	}, nil
}
