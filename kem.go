// kem.go - Kyber key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is the error thrown via a panic when a byte
	// serialized ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")
)

// PrivateKey is a Kyber private key.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: Encode_12(ŝ) ‖ pk ‖
// H(pk) ‖ z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is a Kyber public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, ErrInvalidKeySize
	}

	pk := &PublicKey{
		pk: new(indcpaPublicKey),
		p:  p,
	}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate runs the CCA-secure Kyber key encapsulation mechanism
// (Algorithm 8): it returns a ciphertext and a squeeze-capable shared-secret
// handle the caller reads the derived key material from.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText []byte, ss *SharedSecret, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}
	defer wipeBytes(m[:])

	hm := sha3.Sum256(m[:])

	var gIn [2 * SymSize]byte
	copy(gIn[:SymSize], hm[:])
	copy(gIn[SymSize:], pk.pk.h[:])
	kr := sha3.Sum512(gIn[:])
	kBar, coins := kr[:SymSize], kr[SymSize:]
	defer wipeBytes(kr[:])

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, coins)

	hc := sha3.Sum256(cipherText)

	var kdfIn [2 * SymSize]byte
	copy(kdfIn[:SymSize], kBar)
	copy(kdfIn[SymSize:], hc[:])
	defer wipeBytes(kdfIn[:])

	ss = newSharedSecret(kdfIn[:])
	return
}

// Decapsulate runs the CCA-secure Kyber key encapsulation mechanism's
// decapsulation side (Algorithm 9), implicit rejection included. It never
// fails observably: given a cipherText of the correct length, it always
// returns a shared-secret handle — on a malformed/forged ciphertext, that
// handle derives from the private "implicit rejection" seed z and H(cipherText)
// instead of the pre-key K̄, which is indistinguishable to a caller without z. A cipherText of the wrong length
// is a structural caller error and panics.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (ss *SharedSecret) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		panic(ErrInvalidCipherTextSize)
	}

	var m [SymSize]byte
	p.indcpaDecrypt(m[:], cipherText, sk.sk)
	defer wipeBytes(m[:])

	hm := sha3.Sum256(m[:])

	var gIn [2 * SymSize]byte
	copy(gIn[:SymSize], hm[:])
	copy(gIn[SymSize:], sk.PublicKey.pk.h[:])
	kr := sha3.Sum512(gIn[:])
	kBar, coins := kr[:SymSize], kr[SymSize:]
	defer wipeBytes(kr[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, m[:], sk.PublicKey.pk, coins)

	hc := sha3.Sum256(cipherText)

	fail := subtle.ConstantTimeSelect(subtle.ConstantTimeCompare(cipherText, cmp), 0, 1)

	var preK [SymSize]byte
	subtle.ConstantTimeCopy(1-fail, preK[:], kBar)
	subtle.ConstantTimeCopy(fail, preK[:], sk.z)
	defer wipeBytes(preK[:])

	var kdfIn [2 * SymSize]byte
	copy(kdfIn[:SymSize], preK[:])
	copy(kdfIn[SymSize:], hc[:])
	defer wipeBytes(kdfIn[:])

	return newSharedSecret(kdfIn[:])
}
