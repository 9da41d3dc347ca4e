// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 The feldman authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package field

import "math/big"

// rfc3526Group14P is the 2048-bit MODP safe prime from RFC 3526, section 3.
const rfc3526Group14P = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF"

func mustParameters(pHex string, g int64) *Parameters {
	p, ok := new(big.Int).SetString(pHex, 16)
	if !ok {
		panic("field: invalid prime constant")
	}

	q := new(big.Int).Sub(p, one)
	q.Rsh(q, 1)

	return &Parameters{P: p, Q: q, G: big.NewInt(g)}
}

// RFC3526Group14 returns the 2048-bit MODP group from RFC 3526 with
// generator 2. Since P ≡ 7 (mod 8), 2 is a quadratic residue modulo P and
// generates the order-Q subgroup. 2048 bits is the minimum modulus size for
// any non-illustrative use of this module.
func RFC3526Group14() *Parameters {
	return mustParameters(rfc3526Group14P, 2)
}

// Default returns the parameter set used when the caller does not supply one.
func Default() *Parameters {
	return RFC3526Group14()
}

// Insecure2039 returns the tiny illustrative group p=2039, q=1019, g=2.
//
// The modulus is small enough to brute-force discrete logarithms by hand, so
// this set must never protect a real secret. It exists for documentation,
// exhaustive property tests and interoperability with the textbook examples,
// and is never used as an implicit default.
func Insecure2039() *Parameters {
	return &Parameters{
		P: big.NewInt(2039),
		Q: big.NewInt(1019),
		G: big.NewInt(2),
	}
}
