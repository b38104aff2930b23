// indcpa.go - Kyber IND-CPA encryption.
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

// packPublicKey serializes the public key as the concatenation of the
// 12-bit-packed vector of polynomials pk and the public seed used to
// generate the matrix A.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[len(pk.vec)*polySize:], seed[:SymSize])
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)

	off := len(pk.vec) * polySize
	copy(seed, packedPk[off:off+SymSize])
}

// packCiphertext serializes the ciphertext as the concatenation of the
// du-bit compressed vector b and the dv-bit compressed polynomial v.
func packCiphertext(r []byte, b *polyVec, v *poly, du, dv int) {
	b.compress(r, du)
	v.compress(r[b.compressedSize(du):], dv)
}

// unpackCiphertext is the inverse of packCiphertext.
func unpackCiphertext(b *polyVec, v *poly, c []byte, du, dv int) {
	b.decompress(c, du)
	v.decompress(c[b.compressedSize(du):], dv)
}

// packSecretKey serializes the secret key.
func packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// unpackSecretKey is the inverse of packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

// genMatrix deterministically generates matrix A (or its transpose) from a
// seed by rejection sampling against the output of SHAKE128, per the Parse
// algorithm of section 4.3: each triple of bytes (b0, b1, b2) yields two
// 12-bit candidates, d1 = b0 | ((b1&0x0f)<<8) and d2 = (b1>>4) | (b2<<4),
// each independently accepted iff < q. Keygen uses transposed=false
// (Â[i][j] seeded by (ρ, j, i)); encryption uses transposed=true (Â[i][j]
// seeded by (ρ, i, j), i.e. encryption multiplies by the transpose of the
// matrix keygen generated) — section 4.5 resolves this as the
// self-consistent convention absent a KAT fixture to check against.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	const shake128Rate = 168 // divisible by 3: every refill starts a fresh triple

	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	for i, v := range a {
		for j, p := range v.vec {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof := newAbsorbingShake128()
			xof.Write(extSeed[:])
			sq := xof.IntoSqueezing()

			var buf [shake128Rate]byte
			sq.Read(buf[:])
			pos := 0

			ctr := 0
			for ctr < kyberN {
				if pos+3 > len(buf) {
					sq.Read(buf[:])
					pos = 0
				}

				b0, b1, b2 := uint16(buf[pos]), uint16(buf[pos+1]), uint16(buf[pos+2])
				pos += 3

				d1 := b0 | ((b1 & 0x0f) << 8)
				d2 := (b1 >> 4) | (b2 << 4)

				if d1 < kyberQ {
					p.coeffs[ctr] = d1
					ctr++
				}
				if ctr < kyberN && d2 < kyberQ {
					p.coeffs[ctr] = d2
					ctr++
				}
			}
		}
	}
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = sha3.Sum256(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a public/private key pair for the CPA-secure
// public-key encryption scheme underlying Kyber (Algorithm 4).
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	defer wipeBytes(d[:])

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}

	g := sha3.Sum512(d[:])
	publicSeed, noiseSeed := g[:SymSize], g[SymSize:]
	defer wipeBytes(noiseSeed)

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}
	skpv.ntt()

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}
	e.ntt()

	// matrix-vector multiplication: t̂ = Â ŝ + ê, all in NTT domain
	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointwiseAcc(&a[i], &skpv)
	}
	pkpv.add(&pkpv, &e)

	packSecretKey(sk.packed, &skpv)
	packPublicKey(pk.packed, &pkpv, publicSeed)
	pk.h = sha3.Sum256(pk.packed)

	skpv.wipe()
	e.wipe()

	return pk, sk, nil
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption scheme underlying Kyber (Algorithm 5).
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	pkpv := p.allocPolyVec()
	unpackPublicKey(&pkpv, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}
	sp.ntt()

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, p.eta2)
		nonce++
	}

	// matrix-vector multiplication: u = Â^T r + e1
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&at[i], &sp)
	}
	bp.invntt()
	bp.add(&bp, &ep)

	v.pointwiseAcc(&pkpv, &sp)
	v.invntt()

	epp.getNoise(coins, nonce, p.eta2)

	v.add(&v, &epp)
	v.add(&v, &k)

	packCiphertext(c, &bp, &v, p.du, p.dv)

	sp.wipe()
	ep.wipe()
	k.wipe()
	epp.wipe()
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption scheme underlying Kyber (Algorithm 6).
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&bp, &v, c, p.du, p.dv)
	unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)

	mp.toMsg(m)

	mp.wipe()
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
