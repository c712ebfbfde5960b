// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "encoding/binary"

// maxRateBytes is the widest rate a 1600-bit state allows (200 bytes), so
// every rate New accepts fits, including the four presets (the widest,
// Keccak-224, uses 144 bytes). The absorb buffer is sized to this constant
// so it never allocates, following the teacher's fixed
// bytebufLen/bufferLen convention generalized to cover every rate from one
// array instead of one hard-coded 64-bit-lane-only constant.
const maxRateBytes = 200

// spongeDirection tracks whether the sponge is still accepting input.
type spongeDirection int

const (
	absorbing spongeDirection = iota
	squeezed
)

// sponge holds the 25-lane Keccak state, the pending-input buffer, and the
// rate in bytes. It implements the absorb/absorb-final/squeeze state
// machine from the sponge construction; it carries no domain-separator
// byte because original Keccak padding needs none.
type sponge struct {
	a         [25]uint64
	buf       [maxRateBytes]byte
	position  int
	rate      int
	direction spongeDirection
}

func newSponge(rateBytes int) sponge {
	return sponge{rate: rateBytes, direction: absorbing}
}

// reset zeros the state and buffer and returns the sponge to absorbing.
func (s *sponge) reset() {
	for i := range s.a {
		s.a[i] = 0
	}
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.position = 0
	s.direction = absorbing
}

// xorBlock xors a full rate-sized block into the first rate/8 lanes of the
// state, little-endian within each lane, then applies the permutation.
// Precondition: len(block) == s.rate (an internal-consistency invariant;
// violating it is a bug in this package, never caller-reachable).
func (s *sponge) xorBlock(block []byte) {
	if len(block) != s.rate {
		panic(&paramError{Kind: KindInternal, msg: "absorb block length does not match sponge rate"})
	}
	lanes := s.rate / 8
	for i := 0; i < lanes; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	permute(&s.a)
}

// absorb folds bytes into the buffer, draining complete rate-sized blocks
// into the state as soon as they're available. Residue shorter than the
// rate stays buffered.
func (s *sponge) absorb(p []byte) {
	for len(p) > 0 {
		n := copy(s.buf[s.position:s.rate], p)
		s.position += n
		p = p[n:]
		if s.position == s.rate {
			s.xorBlock(s.buf[:s.rate])
			s.position = 0
		}
	}
}

// absorbFinal applies multi-rate padding to the residual buffer and
// absorbs the resulting final block, then moves the sponge to squeezing.
func (s *sponge) absorbFinal() {
	padded := s.buf[:s.rate]
	for i := s.position; i < s.rate; i++ {
		padded[i] = 0
	}
	pad(padded, s.position, s.rate)
	s.xorBlock(padded)
	s.position = 0
	s.direction = squeezed
}

// pad writes the original-Keccak multi-rate "10*1" padding into block[used:rate].
// p = rate-used is the number of padding bytes; p==0 means a full extra
// block of padding (p is then treated as rate).
func pad(block []byte, used, rate int) {
	p := rate - used
	if p == 0 {
		p = rate
		used = 0
	}
	if p == 1 {
		block[used] = 0x81
		return
	}
	block[used] = 0x01
	for i := used + 1; i < rate-1; i++ {
		block[i] = 0x00
	}
	block[rate-1] = 0x80
}

// squeeze produces exactly n output bytes, permuting the state between
// rate-sized reads as needed. The sponge must already be in the squeezing
// direction (absorbFinal must have run first).
func (s *sponge) squeeze(n int) []byte {
	if s.direction != squeezed {
		panic(&paramError{Kind: KindInternal, msg: "squeeze called before absorbFinal"})
	}
	out := make([]byte, 0, n)
	var block [maxRateBytes]byte
	for len(out) < n {
		lanes := s.rate / 8
		for i := 0; i < lanes; i++ {
			binary.LittleEndian.PutUint64(block[i*8:], s.a[i])
		}
		remaining := n - len(out)
		if remaining > s.rate {
			remaining = s.rate
		}
		out = append(out, block[:remaining]...)
		if len(out) < n {
			permute(&s.a)
		}
	}
	return out
}
