// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package keys

import (
	"errors"
	"fmt"
	"slices"

	"github.com/feldman-go/feldman"
	"github.com/feldman-go/feldman/field"
)

var (
	errRecordRegistered = errors.New("a record for this identifier is already registered")
	errRegistryFull     = errors.New("can't add another record (full capacity)")
	errRecordOutOfRange = errors.New("record identifier exceeds the share count")
	errVerifyUnknownID  = errors.New("the requested identifier is not registered")
	errVerifyBadRecord  = errors.New("the public value is inconsistent with the commitment")
	errNoCommitment     = errors.New("no commitment registered")
	errCommitmentLength = errors.New("commitment length differs from the registry threshold")
)

// Registry regroups the public information about one sharing session: the
// field parameters, the dealer's commitment and the shareholders' public
// records. It lets an auditor verify every distributed share without holding
// any secret material.
type Registry struct {
	Params     *field.Parameters        `json:"params"`
	Commitment *feldman.Commitment      `json:"commitment,omitempty"`
	Records    map[uint16]*PublicRecord `json:"records"`
	Total      uint16                   `json:"total"`
	Threshold  uint16                   `json:"threshold"`
}

// NewRegistry returns an empty Registry for a session of total shares with
// the given threshold.
func NewRegistry(params *field.Parameters, threshold, total uint16) *Registry {
	return &Registry{
		Params:     params,
		Threshold:  threshold,
		Total:      total,
		Commitment: nil,
		Records:    make(map[uint16]*PublicRecord, total),
	}
}

// SetCommitment registers the dealer's published commitment. It must match
// the registry's field parameters and threshold.
func (k *Registry) SetCommitment(c *feldman.Commitment) error {
	if c == nil || len(c.Points) == 0 {
		return feldman.ErrCommitmentEmpty
	}

	if !k.Params.Equal(c.Params) {
		return feldman.ErrParameterMismatch
	}

	if c.Threshold() != k.Threshold {
		return errCommitmentLength
	}

	k.Commitment = c

	return nil
}

// Add adds the record to the registry if the registry is not full and no
// record for the identifier is already set, in which case an error is
// returned.
func (k *Registry) Add(record *PublicRecord) error {
	if record == nil {
		return errNilRecord
	}

	if record.Public == nil {
		return errNilPublic
	}

	if record.ID == 0 {
		return feldman.ErrZeroCoordinate
	}

	if record.ID > k.Total {
		return fmt.Errorf("%w: %d > %d", errRecordOutOfRange, record.ID, k.Total)
	}

	if _, ok := k.Records[record.ID]; ok {
		return errRecordRegistered
	}

	if len(k.Records) == int(k.Total) {
		return errRegistryFull
	}

	k.Records[record.ID] = record

	return nil
}

// Get returns the registered record for id, or nil.
func (k *Registry) Get(id uint16) *PublicRecord {
	return k.Records[id]
}

// VerifyRecord returns nil if the registered public value for id is
// consistent with the commitment, and an error otherwise.
func (k *Registry) VerifyRecord(id uint16) error {
	if k.Commitment == nil {
		return errNoCommitment
	}

	record, ok := k.Records[id]
	if !ok {
		return fmt.Errorf("%w: %d", errVerifyUnknownID, id)
	}

	if record.Public == nil {
		return errNilPublic
	}

	expected, err := k.Commitment.PublicValue(id)
	if err != nil {
		return err
	}

	if record.Public.Cmp(expected) != 0 {
		return fmt.Errorf("%w: identifier %d", errVerifyBadRecord, id)
	}

	return nil
}

// VerifyAll verifies every registered record against the commitment,
// returning the first inconsistency found in identifier order.
func (k *Registry) VerifyAll() error {
	ids := make([]uint16, 0, len(k.Records))
	for id := range k.Records {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		if err := k.VerifyRecord(id); err != nil {
			return err
		}
	}

	return nil
}
