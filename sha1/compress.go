//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
)

// State is the intermediate hash value H0..H4.
type State [5]uint32

// Initial is the initial hash value H⁽⁰⁾.
var Initial = State{
	0x67452301,
	0xefcdab89,
	0x98badcfe,
	0x10325476,
	0xc3d2e1f0,
}

func (h State) String() string {
	return fmt.Sprintf("%08x %08x %08x %08x %08x", h[0], h[1], h[2], h[3], h[4])
}

// Phase identifies one of the four 20-round phases of the compression
// function. Each phase has its own logical function and constant.
type Phase int

// Compression phases.
const (
	PhaseChoose Phase = iota
	PhaseParity
	PhaseMajority
	PhaseParity2
)

const roundsPerPhase = 20

var phaseNames = map[Phase]string{
	PhaseChoose:   "Ch",
	PhaseParity:   "Parity",
	PhaseMajority: "Maj",
	PhaseParity2:  "Parity",
}

func (p Phase) String() string {
	name, ok := phaseNames[p]
	if ok {
		return name
	}
	return fmt.Sprintf("{Phase %d}", p)
}

var roundConstants = [4]uint32{
	0x5a827999,
	0x6ed9eba1,
	0x8f1bbcdc,
	0xca62c1d6,
}

// PhaseOf returns the phase of round t, 0 <= t < Rounds.
func PhaseOf(t int) Phase {
	return Phase(t / roundsPerPhase)
}

// K returns the round constant of the phase.
func (p Phase) K() uint32 {
	return roundConstants[p]
}

// F applies the logical function of the phase.
func (p Phase) F(x, y, z uint32) uint32 {
	switch p {
	case PhaseChoose:
		return (x & y) | (^x & z)
	case PhaseMajority:
		return (x & y) | (x & z) | (y & z)
	default:
		return x ^ y ^ z
	}
}

// Compress folds the schedule w into the hash state h and returns the
// next state. All word arithmetic wraps modulo 2^32.
func Compress(w *Schedule, h State) State {
	v0, v1, v2, v3, v4 := h[0], h[1], h[2], h[3], h[4]

	for t := 0; t < Rounds; t++ {
		p := PhaseOf(t)
		temp := RotateLeft32(v0, 5) + p.F(v1, v2, v3) + v4 + p.K() + w[t]
		v0, v1, v2, v3, v4 = temp, v0, RotateLeft32(v1, 30), v2, v3
	}

	return State{
		h[0] + v0,
		h[1] + v1,
		h[2] + v2,
		h[3] + v3,
		h[4] + v4,
	}
}
