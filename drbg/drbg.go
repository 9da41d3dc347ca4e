// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package drbg provides a deterministic random byte stream seeded from a
// caller-supplied value. It exists so a sharing session can be handed an
// explicit, reproducible randomness source, which property tests use to
// replay polynomial generation. Production dealers should keep using
// crypto/rand.Reader.
package drbg

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

var errEmptySeed = errors.New("drbg: seed is empty")

// Reader is a deterministic io.Reader. The seed is expanded with HKDF-SHA256
// into a ChaCha20 key and nonce; the stream is the resulting keystream.
type Reader struct {
	stream *chacha20.Cipher
}

// New returns a Reader producing the byte stream determined by seed.
func New(seed []byte) (*Reader, error) {
	if len(seed) == 0 {
		return nil, errEmptySeed
	}

	kdf := hkdf.New(sha256.New, seed, nil, []byte("feldman drbg v1"))

	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)

	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("drbg: key derivation failed: %w", err)
	}

	if _, err := io.ReadFull(kdf, nonce); err != nil {
		return nil, fmt.Errorf("drbg: nonce derivation failed: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("drbg: %w", err)
	}

	return &Reader{stream: stream}, nil
}

// Read fills p with the next bytes of the deterministic stream. It never
// returns fewer than len(p) bytes.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	r.stream.XORKeyStream(p, p)

	return len(p), nil
}
