// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package keys

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/feldman-go/feldman"
	"github.com/feldman-go/feldman/field"
)

var (
	errEncodingInvalidLength = errors.New("invalid encoding length")
	errEncodingDuplicateID   = errors.New("multiple encoded records with same ID")
	errEncodingPointCount    = errors.New("commitment point count differs from threshold")
	errRegistryDecodePrefix  = errors.New("failed to decode Registry")
)

const registryHeaderLength = 12

// Encode serializes the registry into a compact byte string suitable for
// storage or transmission. The layout is a fixed header (widths, counts,
// threshold, total), the field parameters, the commitment points and the
// records, all widths fixed by the parameters.
func (k *Registry) Encode() ([]byte, error) {
	if k.Params == nil {
		return nil, fmt.Errorf("%w: %w", errRegistryDecodePrefix, field.ErrInvalidParameters)
	}

	pBytes := k.Params.P.Bytes()
	gBytes := k.Params.G.Bytes()
	eLen := k.Params.ElementLength()

	nPoints := 0
	if k.Commitment != nil {
		nPoints = len(k.Commitment.Points)
	}

	size := registryHeaderLength + len(pBytes) + len(gBytes) + nPoints*eLen + len(k.Records)*(2+eLen)
	out := make([]byte, registryHeaderLength, size)
	binary.LittleEndian.PutUint16(out[0:2], uint16(len(pBytes)))
	binary.LittleEndian.PutUint16(out[2:4], uint16(len(gBytes)))
	binary.LittleEndian.PutUint16(out[4:6], uint16(nPoints))
	binary.LittleEndian.PutUint16(out[6:8], uint16(len(k.Records)))
	binary.LittleEndian.PutUint16(out[8:10], k.Threshold)
	binary.LittleEndian.PutUint16(out[10:12], k.Total)

	out = append(out, pBytes...)
	out = append(out, gBytes...)

	if k.Commitment != nil {
		for _, point := range k.Commitment.Points {
			buf := make([]byte, eLen)
			point.FillBytes(buf)
			out = append(out, buf...)
		}
	}

	ids := make([]uint16, 0, len(k.Records))
	for id := range k.Records {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		buf := make([]byte, 2+eLen)
		binary.LittleEndian.PutUint16(buf[0:2], id)
		k.Records[id].Public.FillBytes(buf[2:])
		out = append(out, buf...)
	}

	return out, nil
}

// Decode deserializes the input data into the registry, expecting the same
// encoding as used in Encode. It doesn't modify the receiver when
// encountering an error.
func (k *Registry) Decode(data []byte) error {
	if len(data) < registryHeaderLength {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, errEncodingInvalidLength)
	}

	pLen := int(binary.LittleEndian.Uint16(data[0:2]))
	gLen := int(binary.LittleEndian.Uint16(data[2:4]))
	nPoints := int(binary.LittleEndian.Uint16(data[4:6]))
	nRecords := int(binary.LittleEndian.Uint16(data[6:8]))
	threshold := binary.LittleEndian.Uint16(data[8:10])
	total := binary.LittleEndian.Uint16(data[10:12])

	if nPoints != 0 && nPoints != int(threshold) {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, errEncodingPointCount)
	}

	offset := registryHeaderLength

	if len(data) < offset+pLen+gLen {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, errEncodingInvalidLength)
	}

	p := new(big.Int).SetBytes(data[offset : offset+pLen])
	offset += pLen
	g := new(big.Int).SetBytes(data[offset : offset+gLen])
	offset += gLen

	params, err := field.NewParameters(p, g)
	if err != nil {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, err)
	}

	eLen := params.ElementLength()

	if len(data) != offset+nPoints*eLen+nRecords*(2+eLen) {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, errEncodingInvalidLength)
	}

	var commitment *feldman.Commitment

	if nPoints > 0 {
		points := make([]*big.Int, nPoints)
		for i := 0; i < nPoints; i++ {
			points[i] = new(big.Int).SetBytes(data[offset : offset+eLen])
			offset += eLen
		}

		commitment = &feldman.Commitment{Params: params, Points: points}
	}

	records := make(map[uint16]*PublicRecord, nRecords)

	for i := 0; i < nRecords; i++ {
		id := binary.LittleEndian.Uint16(data[offset : offset+2])
		public := new(big.Int).SetBytes(data[offset+2 : offset+2+eLen])
		offset += 2 + eLen

		if _, ok := records[id]; ok {
			return fmt.Errorf("%w: %w", errRegistryDecodePrefix, errEncodingDuplicateID)
		}

		records[id] = &PublicRecord{ID: id, Public: public}
	}

	k.Params = params
	k.Commitment = commitment
	k.Records = records
	k.Threshold = threshold
	k.Total = total

	return nil
}

// Hex returns the hexadecimal representation of the byte encoding returned
// by Encode.
func (k *Registry) Hex() (string, error) {
	b, err := k.Encode()
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// DecodeHex sets k to the decoding of the hex encoded representation
// returned by Hex.
func (k *Registry) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, err)
	}

	return k.Decode(b)
}

type registryShadow Registry

// UnmarshalJSON reads the input data as JSON and deserializes it into the
// receiver, validating the field parameters and the commitment consistency.
// It doesn't modify the receiver when encountering an error.
func (k *Registry) UnmarshalJSON(data []byte) error {
	shadow := new(registryShadow)
	if err := json.Unmarshal(data, shadow); err != nil {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, err)
	}

	if shadow.Params == nil {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, field.ErrInvalidParameters)
	}

	if err := shadow.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errRegistryDecodePrefix, err)
	}

	if shadow.Commitment != nil {
		if shadow.Commitment.Params == nil || !shadow.Params.Equal(shadow.Commitment.Params) {
			return fmt.Errorf("%w: %w", errRegistryDecodePrefix, feldman.ErrParameterMismatch)
		}
	}

	if shadow.Records == nil {
		shadow.Records = make(map[uint16]*PublicRecord)
	}

	*k = Registry(*shadow)

	return nil
}
