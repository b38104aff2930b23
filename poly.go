// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
type poly struct {
	coeffs [kyberN]uint16
}

// compress serializes a d-bit compressed form of p into r (32*d bytes).
func (p *poly) compress(r []byte, d int) {
	tmp := make([]uint16, kyberN)
	for i, c := range p.coeffs {
		tmp[i] = compressCoeff(freeze(c), d)
	}
	copy(r, encodeL(tmp, d))
}

// decompress is the approximate inverse of compress.
func (p *poly) decompress(a []byte, d int) {
	tmp := decodeL(a, d, kyberN)
	for i, c := range tmp {
		p.coeffs[i] = decompressCoeff(c, d)
	}
}

// toBytes serializes p as 384 bytes of 12-bit coefficients.
func (p *poly) toBytes(r []byte) {
	tmp := make([]uint16, kyberN)
	defer wipeUint16s(tmp)
	for i, c := range p.coeffs {
		tmp[i] = freeze(c)
	}
	copy(r, encodeL(tmp, 12))
}

// fromBytes is the inverse of toBytes.
func (p *poly) fromBytes(a []byte) {
	tmp := decodeL(a, 12, kyberN)
	defer wipeUint16s(tmp)
	copy(p.coeffs[:], tmp)
}

// fromMsg converts a 32-byte message into a polynomial, one bit per
// coefficient: set bits become round(q/2), clear bits become 0.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -((uint16(v) >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((kyberQ + 1) / 2)
		}
	}
}

// toMsg is the (lossy) inverse of fromMsg.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := compressCoeff(freeze(p.coeffs[8*i+j]), 1)
			msg[i] |= byte(t << uint(j))
		}
	}
}

// getNoise samples a polynomial deterministically from a seed and a nonce
// via SHAKE256, with coefficients close to a centered binomial distribution
// with parameter eta (section 4.3).
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)
	defer wipeBytes(extSeed)

	buf := make([]byte, eta*kyberN/4)
	defer wipeBytes(buf)
	sha3.ShakeSum256(buf, extSeed)

	p.cbd(buf, eta)
}

// ntt computes the negacyclic number-theoretic transform of p in place;
// input assumed to be in normal order, output in bitreversed order.
func (p *poly) ntt() {
	nttRef(&p.coeffs)
}

// invntt computes the inverse of ntt in place; input assumed to be in
// bitreversed order, output in normal order.
func (p *poly) invntt() {
	invnttRef(&p.coeffs)
}

// add sets p = a + b.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldAdd(a.coeffs[i], b.coeffs[i])
	}
}

// sub sets p = a - b.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldSub(a.coeffs[i], b.coeffs[i])
	}
}

// mul sets p to the NTT-domain pointwise (base) product of a and b.
func (p *poly) mul(a, b *poly) {
	polymulRef(&p.coeffs, &a.coeffs, &b.coeffs)
}
