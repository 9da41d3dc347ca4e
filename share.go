// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package feldman

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/feldman-go/feldman/field"
)

var errEncodingInvalidLength = errors.New("invalid encoding length")

// Share is one evaluation point (x, y) of the secret polynomial, handed to a
// single shareholder. ID is the x-coordinate and is never zero; Value is
// y = f(ID) mod Q. Threshold is carried so reconstruction can refuse
// sub-threshold subsets.
type Share struct {
	Value     *big.Int `json:"value"`
	ID        uint16   `json:"id"`
	Threshold uint16   `json:"threshold"`
}

// Identifier returns the x-coordinate for this share.
func (s *Share) Identifier() uint16 {
	return s.ID
}

// Public derives the shareholder's public verification value G^Value mod P.
// It reveals nothing about Value under the discrete-log assumption.
func (s *Share) Public(params *field.Parameters) (*big.Int, error) {
	if s.Value == nil {
		return nil, errNilShareValue
	}

	return params.ExpG(s.Value)
}

// Encode serializes s into a compact byte string with the scalar width fixed
// by the field parameters.
func (s *Share) Encode(params *field.Parameters) ([]byte, error) {
	if s.Value == nil {
		return nil, errNilShareValue
	}

	if !params.IsScalar(s.Value) {
		return nil, errShareValueSize
	}

	sLen := params.ScalarLength()
	out := make([]byte, 4+sLen)
	binary.LittleEndian.PutUint16(out[0:2], s.ID)
	binary.LittleEndian.PutUint16(out[2:4], s.Threshold)
	s.Value.FillBytes(out[4:])

	return out, nil
}

// Decode deserializes the compact encoding obtained from Encode, or returns
// an error. It doesn't modify the receiver when encountering an error.
func (s *Share) Decode(params *field.Parameters, data []byte) error {
	sLen := params.ScalarLength()
	if len(data) != 4+sLen {
		return fmt.Errorf("failed to decode Share: %w", errEncodingInvalidLength)
	}

	value := new(big.Int).SetBytes(data[4:])
	if !params.IsScalar(value) {
		return fmt.Errorf("failed to decode Share: %w", errShareValueSize)
	}

	s.ID = binary.LittleEndian.Uint16(data[0:2])
	s.Threshold = binary.LittleEndian.Uint16(data[2:4])
	s.Value = value

	return nil
}

// Hex returns the hexadecimal representation of the byte encoding returned
// by Encode.
func (s *Share) Hex(params *field.Parameters) (string, error) {
	b, err := s.Encode(params)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// DecodeHex sets s to the decoding of the hex encoded representation
// returned by Hex.
func (s *Share) DecodeHex(params *field.Parameters, h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("failed to decode Share: %w", err)
	}

	return s.Decode(params, b)
}
