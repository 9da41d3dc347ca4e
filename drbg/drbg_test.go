// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package drbg_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feldman-go/feldman/drbg"
)

func TestReader_Deterministic(t *testing.T) {
	seed := []byte("a reproducible session seed")

	r1, err := drbg.New(seed)
	require.NoError(t, err)

	r2, err := drbg.New(seed)
	require.NoError(t, err)

	b1 := make([]byte, 256)
	b2 := make([]byte, 256)

	_, err = io.ReadFull(r1, b1)
	require.NoError(t, err)

	_, err = io.ReadFull(r2, b2)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
}

func TestReader_SeedSeparation(t *testing.T) {
	r1, err := drbg.New([]byte("seed one"))
	require.NoError(t, err)

	r2, err := drbg.New([]byte("seed two"))
	require.NoError(t, err)

	b1 := make([]byte, 64)
	b2 := make([]byte, 64)

	_, err = io.ReadFull(r1, b1)
	require.NoError(t, err)

	_, err = io.ReadFull(r2, b2)
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}

func TestReader_ChunkedReads(t *testing.T) {
	seed := []byte("chunking")

	whole, err := drbg.New(seed)
	require.NoError(t, err)

	chunked, err := drbg.New(seed)
	require.NoError(t, err)

	expected := make([]byte, 96)
	_, err = io.ReadFull(whole, expected)
	require.NoError(t, err)

	var got bytes.Buffer
	for _, size := range []int{1, 5, 32, 58} {
		chunk := make([]byte, size)
		n, err := chunked.Read(chunk)
		require.NoError(t, err)
		require.Equal(t, size, n)
		got.Write(chunk)
	}

	assert.Equal(t, expected, got.Bytes())
}

func TestReader_OverwritesBuffer(t *testing.T) {
	r, err := drbg.New([]byte("seed"))
	require.NoError(t, err)

	// The output must not depend on the buffer's prior contents.
	dirty := bytes.Repeat([]byte{0xaa}, 32)
	clean := make([]byte, 32)

	fresh, err := drbg.New([]byte("seed"))
	require.NoError(t, err)

	_, err = r.Read(dirty)
	require.NoError(t, err)

	_, err = fresh.Read(clean)
	require.NoError(t, err)

	assert.Equal(t, clean, dirty)
}

func TestNew_EmptySeed(t *testing.T) {
	_, err := drbg.New(nil)
	require.Error(t, err)

	_, err = drbg.New([]byte{})
	require.Error(t, err)
}
