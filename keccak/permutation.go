// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// This file implements the Keccak-f[1600] permutation: 24 rounds of
// theta/rho/pi/chi/iota over a 5x5 matrix of 64-bit lanes, stored as a flat
// [25]uint64 with row-major index i = 5y+x.

const rounds = 24

// roundConstants are XORed into lane (0,0) at the end of each round, one
// per round, in order.
var roundConstants = [rounds]uint64{
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

// rotationConstants[i] is the rho rotation offset for the lane visited at
// step i of the pi-rho chase below, indexed in the same order as piLane.
var rotationConstants = [rounds]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane[i] is the destination lane index visited at step i of the
// combined rho/pi pass, chasing the permutation pi(x,y) = (y, 2x+3y mod 5)
// starting from lane 1. This is the same chase used by the from-scratch
// Go Keccak-f ports in the wild (e.g. ebfe/keccak); it avoids recomputing
// 5*((2x+3y)%5)+y on every round.
var piLane = [rounds]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// rotl64 rotates v left by n bits within a 64-bit lane. n must be in
// [0, 64); an offset of 0 is a no-op and never shifts by the word width.
func rotl64(v uint64, n uint) uint64 {
	if n == 0 {
		return v
	}
	return (v << n) | (v >> (64 - n))
}

// permute applies the 24-round Keccak-f[1600] permutation in place.
func permute(a *[25]uint64) {
	var c [5]uint64

	for round := 0; round < rounds; round++ {
		// theta: column parities, then mix each column into its neighbors.
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// rho+pi: rotate each lane and move it to its pi-permuted slot,
		// chasing the cycle starting at lane 1 (lane 0 never moves).
		t := a[1]
		for i := 0; i < rounds; i++ {
			j := piLane[i]
			t, a[j] = a[j], rotl64(t, rotationConstants[i])
		}

		// chi: combine each row with the complement/AND of its neighbors.
		for y := 0; y < 25; y += 5 {
			c[0], c[1], c[2], c[3], c[4] = a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y+0] ^= (^c[1]) & c[2]
			a[y+1] ^= (^c[2]) & c[3]
			a[y+2] ^= (^c[3]) & c[4]
			a[y+3] ^= (^c[4]) & c[0]
			a[y+4] ^= (^c[0]) & c[1]
		}

		// iota: perturb lane (0,0) with this round's constant.
		a[0] ^= roundConstants[round]
	}
}
