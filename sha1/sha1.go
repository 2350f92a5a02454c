//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in
// FIPS 180-4 and RFC 3174. The digest is computed as an explicit
// pipeline: the message is padded, parsed into blocks, each block is
// expanded into its message schedule, and the schedules are folded
// into the hash state with the compression function.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Size is the size of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = 64
)

var (
	// ErrInputTooLarge is returned for messages whose bit length
	// does not fit the 64-bit length field.
	ErrInputTooLarge = errors.New("sha1: input too large")

	// ErrInvalidBlockLength is returned when parsing data that is not
	// a multiple of BlockSize bytes.
	ErrInvalidBlockLength = errors.New("sha1: invalid block length")
)

// Digest is a SHA-1 message digest.
type Digest [Size]byte

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// String returns the digest as 40 lowercase hexadecimal digits.
func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Digest returns the state serialized as big-endian words.
func (h State) Digest() Digest {
	var d Digest

	binary.BigEndian.PutUint32(d[0:], h[0])
	binary.BigEndian.PutUint32(d[4:], h[1])
	binary.BigEndian.PutUint32(d[8:], h[2])
	binary.BigEndian.PutUint32(d[12:], h[3])
	binary.BigEndian.PutUint32(d[16:], h[4])

	return d
}

// Sum returns the SHA-1 digest of message.
func Sum(message []byte) (Digest, error) {
	padded, err := Pad(message)
	if err != nil {
		return Digest{}, err
	}
	blocks, err := Parse(padded)
	if err != nil {
		return Digest{}, err
	}
	state := Initial
	for _, b := range blocks {
		w := Expand(b)
		state = Compress(&w, state)
	}
	return state.Digest(), nil
}

// SumString returns the SHA-1 digest of the UTF-8 bytes of s.
func SumString(s string) (Digest, error) {
	return Sum([]byte(s))
}

// SumHex returns the SHA-1 digest of message as a hex string.
func SumHex(message []byte) (string, error) {
	d, err := Sum(message)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
