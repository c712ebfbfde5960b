// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the original Keccak sponge construction and its
// four historical fixed-output hash presets: Keccak-224, Keccak-256,
// Keccak-384 and Keccak-512.
//
// This is the Keccak submitted to NIST's SHA-3 competition, using the
// original multi-rate "10*1" padding. It is not FIPS-202 SHA-3: there is no
// 0x06/0x1F domain-separator byte, and there is no SHAKE extendable-output
// mode. Keccak-256 in this package is the hash widely known from its use in
// Ethereum, which predates and differs from NIST's SHA3-256.
//
// The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random permutation
// by applying the permutation to a state of rate+capacity bits, while
// hiding the capacity portion from the caller.
//
//     up to "rate" bytes xored in
//     \/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//     ======================================----------------
//     |  rate                              | capacity      |
//     ======================================----------------
//     ::::::::::::::::::::::::::::::::::::::::::::::::::::::
//     :::::::::::::::::Keccak-f[1600] permutation::::::::::::
//     ::::::::::::::::::::::::::::::::::::::::::::::::::::::
//     ======================================----------------
//     |  rate                              | capacity      |
//     ======================================----------------
//     /\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//     up to "rate" bytes copied out
//
// security_strength == capacity / 2, and rate + capacity == 1600 for every
// preset in this package.
//
// Presets
//
//           output  collision-resistance  preimage-resistance
// Keccak224    28B              112 bits             224 bits
// Keccak256    32B              128 bits             256 bits
// Keccak384    48B              192 bits             384 bits
// Keccak512    64B              256 bits             512 bits
//
// Every preset instance returned by this package satisfies hash.Hash, so it
// drops into anything written against the standard library hashing
// interfaces (hmac.New, io.MultiWriter, and so on).
package keccak
