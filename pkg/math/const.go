// -*- go -*-
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package math

const (
	MaxUint32 = 0xffffffff
	MaxUint64 = 0xffffffffffffffff

	// MaxMessageBytes is the largest message whose bit length fits
	// the 64-bit length field of the SHA-1 padding.
	MaxMessageBytes = MaxUint64 >> 3
)
