// wipe.go - Best-effort zeroing of secret intermediates.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "runtime"

// wipeBytes zeroes b. runtime.KeepAlive pins b past the final store so the
// compiler cannot prove the write is dead and elide it.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// wipeUint16s zeroes s, see wipeBytes.
func wipeUint16s(s []uint16) {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}

// wipe zeroes the coefficients of p.
func (p *poly) wipe() {
	wipeUint16s(p.coeffs[:])
}

// wipe zeroes every polynomial in v.
func (v *polyVec) wipe() {
	for _, p := range v.vec {
		p.wipe()
	}
}
