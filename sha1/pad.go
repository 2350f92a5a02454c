//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
	"github.com/markkurossi/digest/pkg/math"
)

// lengthSize is the size of the trailing message bit length field.
const lengthSize = 8

// PaddedLen returns the padded length of an n byte message: the
// smallest multiple of BlockSize that holds the message, the 0x80
// terminator, and the 64-bit length field.
func PaddedLen(n uint64) (uint64, error) {
	if n > math.MaxMessageBytes {
		return 0, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, n)
	}
	return (n + 1 + lengthSize + BlockSize - 1) / BlockSize * BlockSize, nil
}

// Pad pads message to a multiple of BlockSize bytes. The result is a
// new slice; message is not modified or retained.
func Pad(message []byte) ([]byte, error) {
	n, err := safecast.Conv[uint64](len(message))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputTooLarge, err)
	}
	padded, err := PaddedLen(n)
	if err != nil {
		return nil, err
	}
	size, err := safecast.Conv[int](padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputTooLarge, err)
	}

	// Zero fill comes from make.
	result := make([]byte, size)
	copy(result, message)
	result[len(message)] = 0x80
	binary.BigEndian.PutUint64(result[size-lengthSize:], n<<3)

	return result, nil
}
