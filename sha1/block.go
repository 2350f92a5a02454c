//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"fmt"
)

// Block is one 512-bit message block.
type Block [BlockSize]byte

// Word returns the block word i, decoded big-endian.
func (b *Block) Word(i int) uint32 {
	return binary.BigEndian.Uint32(b[i*4:])
}

// Parse splits the padded message into blocks. The blocks alias the
// argument slice and must be treated as read-only.
func Parse(padded []byte) ([]*Block, error) {
	if len(padded)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockLength, len(padded))
	}
	blocks := make([]*Block, 0, len(padded)/BlockSize)
	for ofs := 0; ofs < len(padded); ofs += BlockSize {
		blocks = append(blocks, (*Block)(padded[ofs:ofs+BlockSize]))
	}
	return blocks, nil
}
