// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package keys_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldman-go/feldman"
	"github.com/feldman-go/feldman/field"
	"github.com/feldman-go/feldman/keys"
)

func newTestRegistry(t *testing.T) (*keys.Registry, []*feldman.Share) {
	t.Helper()

	params := field.Insecure2039()

	shares, commitment, err := feldman.ShardAndCommit(params, big.NewInt(143), 3, 5, nil)
	require.NoError(t, err)

	registry := keys.NewRegistry(params, 3, 5)
	require.NoError(t, registry.SetCommitment(commitment))

	for _, share := range shares {
		record, err := keys.NewRecord(params, share)
		require.NoError(t, err)
		require.NoError(t, registry.Add(record))
	}

	return registry, shares
}

func TestRegistry_AddAndGet(t *testing.T) {
	registry, shares := newTestRegistry(t)

	require.Len(t, registry.Records, 5)

	for _, share := range shares {
		record := registry.Get(share.ID)
		require.NotNil(t, record)
		assert.Equal(t, share.ID, record.ID)

		public, err := share.Public(registry.Params)
		require.NoError(t, err)
		assert.Zero(t, record.Public.Cmp(public))
	}

	assert.Nil(t, registry.Get(42))
}

func TestRegistry_AddErrors(t *testing.T) {
	registry, shares := newTestRegistry(t)

	// Already registered.
	record, err := keys.NewRecord(registry.Params, shares[0])
	require.NoError(t, err)
	require.Error(t, registry.Add(record))

	// Identifier beyond the share count.
	require.Error(t, registry.Add(&keys.PublicRecord{ID: 6, Public: big.NewInt(2)}))

	// Zero identifier.
	err = registry.Add(&keys.PublicRecord{ID: 0, Public: big.NewInt(2)})
	require.ErrorIs(t, err, feldman.ErrZeroCoordinate)

	// Nil record and nil public value.
	require.Error(t, registry.Add(nil))
	require.Error(t, registry.Add(&keys.PublicRecord{ID: 4}))
}

func TestRegistry_Full(t *testing.T) {
	params := field.Insecure2039()
	registry := keys.NewRegistry(params, 2, 2)

	require.NoError(t, registry.Add(&keys.PublicRecord{ID: 1, Public: big.NewInt(2)}))
	require.NoError(t, registry.Add(&keys.PublicRecord{ID: 2, Public: big.NewInt(4)}))

	// The registry holds Total records at most; re-registering ID 2 fails on
	// the duplicate check, so exhaust capacity with a fresh registry sized 1.
	small := keys.NewRegistry(params, 1, 1)
	require.NoError(t, small.Add(&keys.PublicRecord{ID: 1, Public: big.NewInt(2)}))
	require.Error(t, small.Add(&keys.PublicRecord{ID: 1, Public: big.NewInt(4)}))
}

func TestRegistry_SetCommitmentErrors(t *testing.T) {
	params := field.Insecure2039()
	registry := keys.NewRegistry(params, 3, 5)

	require.ErrorIs(t, registry.SetCommitment(nil), feldman.ErrCommitmentEmpty)

	_, commitment, err := feldman.ShardAndCommit(field.RFC3526Group14(), nil, 3, 5, nil)
	require.NoError(t, err)
	require.ErrorIs(t, registry.SetCommitment(commitment), feldman.ErrParameterMismatch)

	_, commitment, err = feldman.ShardAndCommit(params, nil, 2, 5, nil)
	require.NoError(t, err)
	require.Error(t, registry.SetCommitment(commitment))
}

func TestRegistry_Verify(t *testing.T) {
	registry, _ := newTestRegistry(t)

	for id := uint16(1); id <= 5; id++ {
		require.NoError(t, registry.VerifyRecord(id))
	}

	require.NoError(t, registry.VerifyAll())

	// Unknown identifier.
	require.Error(t, registry.VerifyRecord(42))

	// Corrupt one public value; only that record fails.
	registry.Records[3].Public = registry.Params.MulElement(registry.Records[3].Public, registry.Params.G)

	require.Error(t, registry.VerifyRecord(3))
	require.NoError(t, registry.VerifyRecord(2))
	require.Error(t, registry.VerifyAll())
}

func TestRegistry_VerifyWithoutCommitment(t *testing.T) {
	params := field.Insecure2039()
	registry := keys.NewRegistry(params, 3, 5)

	require.NoError(t, registry.Add(&keys.PublicRecord{ID: 1, Public: big.NewInt(2)}))
	require.Error(t, registry.VerifyRecord(1))
}

func TestRegistry_EncodeDecode(t *testing.T) {
	registry, _ := newTestRegistry(t)

	encoded, err := registry.Encode()
	require.NoError(t, err)

	decoded := new(keys.Registry)
	require.NoError(t, decoded.Decode(encoded))

	compareRegistries(t, registry, decoded)
	require.NoError(t, decoded.VerifyAll())
}

func TestRegistry_EncodeDecodeWithoutCommitment(t *testing.T) {
	params := field.Insecure2039()
	registry := keys.NewRegistry(params, 3, 5)
	require.NoError(t, registry.Add(&keys.PublicRecord{ID: 1, Public: big.NewInt(2)}))

	encoded, err := registry.Encode()
	require.NoError(t, err)

	decoded := new(keys.Registry)
	require.NoError(t, decoded.Decode(encoded))

	assert.Nil(t, decoded.Commitment)
	compareRegistries(t, registry, decoded)
}

func TestRegistry_DecodeBadInput(t *testing.T) {
	registry, _ := newTestRegistry(t)

	encoded, err := registry.Encode()
	require.NoError(t, err)

	decoded := new(keys.Registry)

	// Truncated input.
	require.Error(t, decoded.Decode(encoded[:8]))
	require.Error(t, decoded.Decode(encoded[:len(encoded)-1]))

	// A failed decode must not touch the receiver.
	assert.Nil(t, decoded.Params)
	assert.Nil(t, decoded.Records)
}

func TestRegistry_Hex(t *testing.T) {
	registry, _ := newTestRegistry(t)

	h, err := registry.Hex()
	require.NoError(t, err)

	decoded := new(keys.Registry)
	require.NoError(t, decoded.DecodeHex(h))
	compareRegistries(t, registry, decoded)

	require.Error(t, decoded.DecodeHex("not hex"))
}

func TestRegistry_JSON(t *testing.T) {
	registry, _ := newTestRegistry(t)

	data, err := json.Marshal(registry)
	require.NoError(t, err)

	decoded := new(keys.Registry)
	require.NoError(t, json.Unmarshal(data, decoded))

	compareRegistries(t, registry, decoded)
	require.NoError(t, decoded.VerifyAll())
}

func TestRegistry_JSONBadInput(t *testing.T) {
	decoded := new(keys.Registry)

	require.Error(t, json.Unmarshal([]byte("{"), decoded))

	// Missing parameters.
	require.Error(t, json.Unmarshal([]byte(`{"total":5,"threshold":3}`), decoded))

	// Composite modulus.
	bad := `{"params":{"p":15,"q":7,"g":2},"total":5,"threshold":3}`
	require.Error(t, json.Unmarshal([]byte(bad), decoded))
}

func compareRegistries(t *testing.T, a, b *keys.Registry) {
	t.Helper()

	require.True(t, a.Params.Equal(b.Params))
	assert.Equal(t, a.Threshold, b.Threshold)
	assert.Equal(t, a.Total, b.Total)
	require.Len(t, b.Records, len(a.Records))

	for id, record := range a.Records {
		other := b.Records[id]
		require.NotNil(t, other)
		assert.Zero(t, record.Public.Cmp(other.Public))
	}

	if a.Commitment == nil {
		assert.Nil(t, b.Commitment)
		return
	}

	require.NotNil(t, b.Commitment)
	require.Len(t, b.Commitment.Points, len(a.Commitment.Points))

	for i := range a.Commitment.Points {
		assert.Zero(t, a.Commitment.Points[i].Cmp(b.Commitment.Points[i]))
	}
}
