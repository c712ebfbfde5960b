// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "github.com/pkg/errors"

// Kind distinguishes the category of a fatal failure raised by this
// package, per the three error categories this module recognizes: bad
// construction parameters, use after finalize, and internal consistency
// breaches.
type Kind int

const (
	// KindConstruction marks a rate/capacity/output combination that does
	// not describe a supported Keccak sponge.
	KindConstruction Kind = iota
	// KindTerminal marks an attempt to Write or Sum a digest that has
	// already been finalized.
	KindTerminal
	// KindInternal marks a defensive check that should be statically
	// unreachable in a correct build of this package.
	KindInternal
)

// paramError is the single error type this package raises. All three
// failure categories carry one of these, so code inside this package can
// tell them apart with errors.As and Kind rather than string-matching. The
// type is unexported: outside the package, construction failures are the
// errors New returns, and the other two categories surface as panics whose
// values differ only in their messages.
type paramError struct {
	Kind Kind
	msg  string
}

func (e *paramError) Error() string { return e.msg }

func newParamError(kind Kind, msg string) error {
	return errors.WithStack(&paramError{Kind: kind, msg: msg})
}
