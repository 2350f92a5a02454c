//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
)

// Rounds is the number of compression rounds and schedule words.
const Rounds = 80

// Schedule is the message schedule of one block.
type Schedule [Rounds]uint32

// RotateLeft32 rotates x left by n bits. The count is taken modulo
// 32, so rotating by 0 or by 32 returns x.
func RotateLeft32(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n&31))
}

// Expand computes the message schedule of block b. Words 16-79 depend
// on earlier derived words so they are computed in increasing order.
func Expand(b *Block) Schedule {
	var w Schedule

	for t := 0; t < 16; t++ {
		w[t] = b.Word(t)
	}
	for t := 16; t < Rounds; t++ {
		w[t] = RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
	return w
}
