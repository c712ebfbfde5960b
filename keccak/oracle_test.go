// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// This file implements a second, independently structured Keccak
// permutation and sponge used only to cross-check the production code in
// tests. It is deliberately built differently from permutation.go/sponge.go
// so a shared bug in the production round function is unlikely to survive
// in both: a 5x5 grid of lanes instead of a flat [25]uint64, math/bits
// rotation instead of the hand-rolled shift/or, and index arithmetic
// spelled out per the spec's (x,y) coordinates instead of a precomputed
// chase table. Grounded on original_source/pure_keccak's algebraic
// definition and on the from-scratch permutation in
// other_examples/d3d994ab_ebfe-keccak.

import "math/bits"

var oracleRoundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// oracleRho[x][y] is the rotation offset r(x,y) from the spec's table,
// indexed by coordinate rather than by row-major i = 5y+x.
var oracleRho = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

type oracleState [5][5]uint64

func (s *oracleState) permute() {
	for round := 0; round < 24; round++ {
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = s[x][0] ^ s[x][1] ^ s[x][2] ^ s[x][3] ^ s[x][4]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		var theta [5][5]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				theta[x][y] = s[x][y] ^ d[x]
			}
		}

		var rhoPi [5][5]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				nx, ny := y, (2*x+3*y)%5
				rhoPi[nx][ny] = bits.RotateLeft64(theta[x][y], int(oracleRho[x][y]))
			}
		}

		var chi [5][5]uint64
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				chi[x][y] = rhoPi[x][y] ^ ((^rhoPi[(x+1)%5][y]) & rhoPi[(x+2)%5][y])
			}
		}

		chi[0][0] ^= oracleRoundConstants[round]
		*s = chi
	}
}

func (s *oracleState) lane(i int) uint64 { return s[i%5][i/5] }

func (s *oracleState) setLane(i int, v uint64) { s[i%5][i/5] = v }

// oracleDigest computes a Keccak digest with the given rate/output sizes
// (in bytes), independently of the production sponge in sponge.go.
func oracleDigest(rateBytes, outputBytes int, data []byte) []byte {
	var st oracleState
	buf := append([]byte(nil), data...)

	absorbBlock := func(block []byte) {
		lanes := rateBytes / 8
		for i := 0; i < lanes; i++ {
			v := uint64(0)
			for k := 0; k < 8; k++ {
				v |= uint64(block[i*8+k]) << (8 * k)
			}
			st.setLane(i, st.lane(i)^v)
		}
		st.permute()
	}

	for len(buf) >= rateBytes {
		absorbBlock(buf[:rateBytes])
		buf = buf[rateBytes:]
	}

	final := make([]byte, rateBytes)
	copy(final, buf)
	used := len(buf)
	p := rateBytes - used
	if p == 0 {
		p = rateBytes
		used = 0
	}
	if p == 1 {
		final[used] = 0x81
	} else {
		final[used] = 0x01
		final[rateBytes-1] = 0x80
	}
	absorbBlock(final)

	out := make([]byte, 0, outputBytes)
	for len(out) < outputBytes {
		lanes := rateBytes / 8
		block := make([]byte, rateBytes)
		for i := 0; i < lanes; i++ {
			v := st.lane(i)
			for k := 0; k < 8; k++ {
				block[i*8+k] = byte(v >> (8 * k))
			}
		}
		remaining := outputBytes - len(out)
		if remaining > rateBytes {
			remaining = rateBytes
		}
		out = append(out, block[:remaining]...)
		if len(out) < outputBytes {
			st.permute()
		}
	}
	return out
}
