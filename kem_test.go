// kem_test.go - Kyber KEM tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

var allParams = []*ParameterSet{
	Kyber512,
	Kyber768,
	Kyber1024,
}

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSk(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
		t.Run(p.Name()+"_Deterministic", func(t *testing.T) { doTestKEMDeterministic(t, p) })
	}
}

func squeeze(t *testing.T, ss *SharedSecret, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := io.ReadFull(ss, b)
	require.NoError(t, err, "ReadFull(sharedSecret)")
	return b
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())

	for i := 0; i < nTests; i++ {
		pk, sk, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Test serialization.
		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := p.PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := p.PublicKeyFromBytes(b)
		require.NoError(err, "PublicKeyFromBytes(b)")
		requirePublicKeyEqual(require, pk, pk2)

		// Test encapsulate/decapsulate.
		ct, ss, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")
		require.Len(ct, p.CipherTextSize(), "Encapsulate(): ct Length")

		ssBytes := squeeze(t, ss, SymSize)
		ss2Bytes := squeeze(t, sk.Decapsulate(ct), SymSize)
		require.Equal(ssBytes, ss2Bytes, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidSk(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		// Alice generates a public key.
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Bob derives a shared secret and ciphertext.
		sendB, ssB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")
		keyB := squeeze(t, ssB, SymSize)

		// Replace secret key with random values.
		_, err = rand.Read(skA.sk.packed)
		require.NoError(err, "rand.Read()")

		// Alice uses Bob's response to get her shared secret.
		keyA := squeeze(t, skA.Decapsulate(sendB), SymSize)
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		sendB, ssB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")
		keyB := squeeze(t, ssB, SymSize)

		// Flip some bits of one byte somewhere in the ciphertext.
		sendB[pos%ciphertextSize] ^= 23

		keyA1 := squeeze(t, skA.Decapsulate(sendB), SymSize)
		require.NotEqual(keyA1, keyB, "Decapsulate(): ss after bit flip")

		// Implicit rejection is deterministic in (sk, ct): decapsulating
		// the same corrupted ciphertext twice yields the same value.
		keyA2 := squeeze(t, skA.Decapsulate(sendB), SymSize)
		require.Equal(keyA1, keyA2, "Decapsulate(): implicit rejection determinism")
	}
}

func doTestKEMDeterministic(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	rngA := newTestRng()
	pk, sk, err := p.GenerateKeyPair(rngA)
	require.NoError(err, "GenerateKeyPair()")

	rngB := newTestRng()
	ct, ss, err := pk.Encapsulate(rngB)
	require.NoError(err, "Encapsulate()")

	ssEnc := squeeze(t, ss, SymSize)
	ssDec := squeeze(t, sk.Decapsulate(ct), SymSize)
	require.Equal(ssEnc, ssDec, "encaps/decaps shared secret mismatch")
}

func requirePrivateKeyEqual(require *require.Assertions, a, b *PrivateKey) {
	require.EqualValues(a.sk, b.sk, "sk (indcpaSecretKey)")
	require.Equal(a.z, b.z, "z (random bytes)")
	requirePublicKeyEqual(require, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(require *require.Assertions, a, b *PublicKey) {
	require.EqualValues(a.pk, b.pk, "pk (indcpaPublicKey)")
	require.Equal(a.p, b.p, "p (ParameterSet)")
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_Encapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_Decapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	for i := 0; i < b.N; i++ {
		_, _, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		sendB, ssB, err := pk.Encapsulate(rand.Reader)
		if err != nil {
			b.Fatalf("Encapsulate(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		ssA := skA.Decapsulate(sendB)
		if !isEnc {
			b.StopTimer()
		}

		keyA := make([]byte, SymSize)
		io.ReadFull(ssA, keyA)
		keyB := make([]byte, SymSize)
		io.ReadFull(ssB, keyB)
		if string(keyA) != string(keyB) {
			b.Fatalf("Decapsulate(): key mismatch")
		}
	}
}
