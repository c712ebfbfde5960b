// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak — see doc.go for the package-level overview.
package keccak

import "hash"

var _ hash.Hash = (*Digest)(nil)

// Digest is a Keccak hash instance: a sponge plus the fixed output size of
// one of the four presets. The zero value is not usable; construct one
// with New, New224, New256, New384 or New512.
//
// A Digest is a mutable, exclusively-owned object: it is created, mutated
// by Write/Update, consumed by Digest, and then discarded. Concurrent
// Write/Digest calls on the same instance are undefined, matching the
// teacher's single-threaded sponge contract; distinct instances never
// share state and need no synchronization between them.
type Digest struct {
	sp          sponge
	outputBytes int
	finalized   bool
}

// keccakWidths is the set of published Keccak state sizes; rate+capacity
// must land on one of them.
var keccakWidths = map[int]bool{
	25: true, 50: true, 100: true, 200: true,
	400: true, 800: true, 1600: true,
}

// New constructs a Digest for an arbitrary valid (rate, capacity, output)
// triple, in bits. It fails if rate+capacity isn't a supported Keccak
// state width, or if rate/output aren't whole bytes. Most callers want one
// of the four fixed presets below instead.
//
// Hashing always uses Keccak-f[1600] on 64-bit lanes, and input is XORed
// into whole lanes only. A triple whose rate+capacity is below 1600, or
// whose rate is not a multiple of 64 bits, passes these checks, but the
// resulting Digest does not compute Keccak with those parameters.
func New(rateBits, capacityBits, outputBits int) (*Digest, error) {
	if !keccakWidths[rateBits+capacityBits] {
		return nil, newParamError(KindConstruction,
			"rate+capacity is not a supported Keccak state width")
	}
	if rateBits%8 != 0 {
		return nil, newParamError(KindConstruction, "rate is not byte-aligned")
	}
	if outputBits%8 != 0 {
		return nil, newParamError(KindConstruction, "output size is not byte-aligned")
	}
	return &Digest{
		sp:          newSponge(rateBits / 8),
		outputBytes: outputBits / 8,
	}, nil
}

func mustNew(rateBits, capacityBits, outputBits int) *Digest {
	d, err := New(rateBits, capacityBits, outputBits)
	if err != nil {
		// Unreachable: the four presets below are fixed, valid widths.
		panic(err)
	}
	return d
}

// New224 returns a fresh Keccak-224 instance (rate 1152 bits, capacity 448
// bits, 28-byte digest).
func New224() *Digest { return mustNew(1152, 448, 224) }

// New256 returns a fresh Keccak-256 instance (rate 1088 bits, capacity 512
// bits, 32-byte digest). This is the Keccak-256 used by Ethereum.
func New256() *Digest { return mustNew(1088, 512, 256) }

// New384 returns a fresh Keccak-384 instance (rate 832 bits, capacity 768
// bits, 48-byte digest).
func New384() *Digest { return mustNew(832, 768, 384) }

// New512 returns a fresh Keccak-512 instance (rate 576 bits, capacity 1024
// bits, 64-byte digest).
func New512() *Digest { return mustNew(576, 1024, 512) }

// Write absorbs p into the sponge. It never returns an error on a
// non-terminal instance (matching hash.Hash); it panics if the instance has
// already been finalized by Digest, since that is a programmer error
// rather than a malformed external input.
func (d *Digest) Write(p []byte) (int, error) {
	if d.finalized {
		panic(newParamError(KindTerminal, "Write called on a finalized Digest"))
	}
	d.sp.absorb(p)
	return len(p), nil
}

// Update absorbs data and returns the receiver, so that
// h.Update(a).Update(b).Digest() reads as the streaming-equivalence
// property requires: it must equal a single Update(a||b).Digest().
func (d *Digest) Update(data []byte) *Digest {
	d.Write(data)
	return d
}

// Digest finalizes the instance: it pads and absorbs the residual buffer,
// squeezes exactly Size() bytes, and marks the instance terminal. Any
// further Write, Update or Digest call panics. This is the spec's
// single-shot digest() operation.
func (d *Digest) Digest() []byte {
	if d.finalized {
		panic(newParamError(KindTerminal, "Digest called twice on the same instance"))
	}
	d.finalized = true
	d.sp.absorbFinal()
	return d.sp.squeeze(d.outputBytes)
}

// Sum is the hash.Hash-compatible counterpart to Digest: it appends the
// digest of the bytes absorbed so far to b without mutating or finalizing
// the receiver, so Write may continue afterward. It works on a duplicate
// of the sponge, the same trick the teacher's Sum uses ("dup := *d"), which
// is what lets this method coexist with Digest's single-shot contract.
func (d *Digest) Sum(b []byte) []byte {
	if d.finalized {
		panic(newParamError(KindTerminal, "Sum called on a finalized Digest"))
	}
	dup := d.sp
	dup.absorbFinal()
	return append(b, dup.squeeze(d.outputBytes)...)
}

// Reset returns the instance to its freshly-constructed state.
func (d *Digest) Reset() {
	d.sp.reset()
	d.finalized = false
}

// Size returns the preset's fixed digest size in bytes.
func (d *Digest) Size() int { return d.outputBytes }

// BlockSize returns the sponge's rate in bytes: the number of bytes
// absorbed or squeezed per call to the permutation. There is no standard
// interpretation of BlockSize for a sponge construction; this matches the
// teacher's convention of reporting the rate.
func (d *Digest) BlockSize() int { return d.sp.rate }

// Sum224 returns the Keccak-224 digest of data.
func Sum224(data []byte) [28]byte {
	var out [28]byte
	d := New224()
	d.Write(data)
	copy(out[:], d.Digest())
	return out
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	d := New256()
	d.Write(data)
	copy(out[:], d.Digest())
	return out
}

// Sum384 returns the Keccak-384 digest of data.
func Sum384(data []byte) [48]byte {
	var out [48]byte
	d := New384()
	d.Write(data)
	copy(out[:], d.Digest())
	return out
}

// Sum512 returns the Keccak-512 digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	d := New512()
	d.Write(data)
	copy(out[:], d.Digest())
	return out
}
