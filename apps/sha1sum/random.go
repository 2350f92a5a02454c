//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"io"

	"golang.org/x/crypto/chacha20"
)

// randomInput returns n pseudo-random bytes: the ChaCha20 keystream
// under a key read from rand.
func randomInput(rand io.Reader, n int) ([]byte, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return nil, err
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out, nil
}
