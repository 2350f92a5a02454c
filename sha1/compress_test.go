//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var phaseTests = []struct {
	round int
	phase Phase
	k     uint32
}{
	{0, PhaseChoose, 0x5a827999},
	{19, PhaseChoose, 0x5a827999},
	{20, PhaseParity, 0x6ed9eba1},
	{39, PhaseParity, 0x6ed9eba1},
	{40, PhaseMajority, 0x8f1bbcdc},
	{59, PhaseMajority, 0x8f1bbcdc},
	{60, PhaseParity2, 0xca62c1d6},
	{79, PhaseParity2, 0xca62c1d6},
}

func TestPhases(t *testing.T) {
	for _, test := range phaseTests {
		p := PhaseOf(test.round)
		if p != test.phase {
			t.Errorf("PhaseOf(%d)=%v, expected %v", test.round, p, test.phase)
		}
		if p.K() != test.k {
			t.Errorf("round %d: K=%08x, expected %08x", test.round, p.K(),
				test.k)
		}
	}
}

func TestPhaseFunctions(t *testing.T) {
	words := prg(11, 3*4*32)
	for i := 0; i+12 <= len(words); i += 12 {
		x := uint32(words[i])<<24 | uint32(words[i+1])<<16 |
			uint32(words[i+2])<<8 | uint32(words[i+3])
		y := uint32(words[i+4])<<24 | uint32(words[i+5])<<16 |
			uint32(words[i+6])<<8 | uint32(words[i+7])
		z := uint32(words[i+8])<<24 | uint32(words[i+9])<<16 |
			uint32(words[i+10])<<8 | uint32(words[i+11])

		if got, want := PhaseChoose.F(x, y, z), (x&y)|(^x&z); got != want {
			t.Errorf("Ch(%08x,%08x,%08x)=%08x, expected %08x",
				x, y, z, got, want)
		}
		if got, want := PhaseParity.F(x, y, z), x^y^z; got != want {
			t.Errorf("Parity(%08x,%08x,%08x)=%08x, expected %08x",
				x, y, z, got, want)
		}
		if PhaseParity2.F(x, y, z) != PhaseParity.F(x, y, z) {
			t.Errorf("Parity phases differ")
		}
		want := (x & y) | (x & z) | (y & z)
		if got := PhaseMajority.F(x, y, z); got != want {
			t.Errorf("Maj(%08x,%08x,%08x)=%08x, expected %08x",
				x, y, z, got, want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseChoose.String() != "Ch" || PhaseMajority.String() != "Maj" {
		t.Errorf("unexpected phase names %v %v", PhaseChoose, PhaseMajority)
	}
	if got := Phase(9).String(); got != "{Phase 9}" {
		t.Errorf("Phase(9).String()=%q", got)
	}
}

func TestCompressABC(t *testing.T) {
	w := Expand(abcBlock(t))
	got := Compress(&w, Initial)
	want := State{0xa9993e36, 0x4706816a, 0xba3e2571, 0x7850c26c, 0x9cd0d89d}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("H(1) mismatch (-want +got):\n%s", diff)
	}
	if Initial[0] != 0x67452301 || Initial[4] != 0xc3d2e1f0 {
		t.Errorf("Compress modified the initial state: %v", Initial)
	}
}

func TestCompressWraps(t *testing.T) {
	var w Schedule
	for i := range w {
		w[i] = 0xffffffff
	}
	h := State{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}

	// Must not panic and must be a pure function of its inputs.
	a := Compress(&w, h)
	b := Compress(&w, h)
	if a != b {
		t.Errorf("Compress is not deterministic: %v != %v", a, b)
	}
}

func TestStateString(t *testing.T) {
	want := "67452301 efcdab89 98badcfe 10325476 c3d2e1f0"
	if got := Initial.String(); got != want {
		t.Errorf("Initial.String()=%q, expected %q", got, want)
	}
}
