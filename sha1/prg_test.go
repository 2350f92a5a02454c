//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"golang.org/x/crypto/chacha20"
)

// prg returns n deterministic pseudo-random bytes: the ChaCha20
// keystream for a key derived from seed and the zero nonce.
func prg(seed byte, n int) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	for i := range key {
		key[i] = seed + byte(i)
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}
