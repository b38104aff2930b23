// xof.go - Typed absorb/squeeze state machine over SHAKE.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// AbsorbingXOF is a SHAKE instance that has not yet begun squeezing output.
// Only Write is available; the only way to read from it is to consume it
// via IntoSqueezing. The returned SqueezingXOF has no Write method, so
// absorbing through it does not compile; a Write on the consumed
// AbsorbingXOF panics on its nil hash state.
type AbsorbingXOF struct {
	h sha3.ShakeHash
}

// newAbsorbingShake128 starts a new SHAKE128 absorb phase.
func newAbsorbingShake128() *AbsorbingXOF {
	return &AbsorbingXOF{h: sha3.NewShake128()}
}

// newAbsorbingShake256 starts a new SHAKE256 absorb phase.
func newAbsorbingShake256() *AbsorbingXOF {
	return &AbsorbingXOF{h: sha3.NewShake256()}
}

// Write absorbs p.
func (x *AbsorbingXOF) Write(p []byte) (int, error) {
	return x.h.Write(p)
}

// IntoSqueezing consumes x and returns a handle from which output may be
// read. x must not be used after this call.
func (x *AbsorbingXOF) IntoSqueezing() *SqueezingXOF {
	s := &SqueezingXOF{h: x.h}
	x.h = nil
	return s
}

// SqueezingXOF is a SHAKE instance that has transitioned out of the absorb
// phase; it supports only Read.
type SqueezingXOF struct {
	h sha3.ShakeHash
}

// Read squeezes len(p) bytes of output.
func (x *SqueezingXOF) Read(p []byte) (int, error) {
	return x.h.Read(p)
}

var _ io.Reader = (*SqueezingXOF)(nil)

// SharedSecret is the output of encapsulate/decapsulate: a squeeze-capable
// handle rather than a fixed-length buffer, so the caller picks the derived
// key length it needs (section 6).
type SharedSecret struct {
	*SqueezingXOF
}

func newSharedSecret(kdfIn []byte) *SharedSecret {
	a := newAbsorbingShake256()
	a.Write(kdfIn)
	return &SharedSecret{SqueezingXOF: a.IntoSqueezing()}
}
