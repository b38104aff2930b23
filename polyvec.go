// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

type polyVec struct {
	vec []*poly
}

// compress serializes a du-bit compressed form of v into r.
func (v *polyVec) compress(r []byte, du int) {
	off := 0
	size := 32 * du
	for _, p := range v.vec {
		p.compress(r[off:off+size], du)
		off += size
	}
}

// decompress is the approximate inverse of compress.
func (v *polyVec) decompress(a []byte, du int) {
	off := 0
	size := 32 * du
	for _, p := range v.vec {
		p.decompress(a[off:off+size], du)
		off += size
	}
}

// toBytes serializes vector of polynomials.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polySize:])
	}
}

// fromBytes is the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polySize:])
	}
}

// ntt applies the forward NTT to every element of v.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of v.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// pointwiseAcc sets p to the sum, over i, of the NTT-domain base product of
// a.vec[i] and b.vec[i] — the inner product step of the matrix-vector
// multiplications in Algorithm 4/5/6.
func (p *poly) pointwiseAcc(a, b *polyVec) {
	var tmp poly
	for i := range a.vec {
		tmp.mul(a.vec[i], b.vec[i])
		if i == 0 {
			*p = tmp
		} else {
			p.add(p, &tmp)
		}
	}
}

// add sets v = a + b.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// compressedSize returns the compressed-and-serialized size of v, in bytes,
// at compression width du.
func (v *polyVec) compressedSize(du int) int {
	return len(v.vec) * 32 * du
}
