// poly_test.go - Field/NTT/encoding invariants.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(t *testing.T) *poly {
	t.Helper()
	var p poly
	var buf [2]byte
	for i := range p.coeffs {
		if _, err := rand.Read(buf[:]); err != nil {
			t.Fatalf("rand.Read(): %v", err)
		}
		p.coeffs[i] = (uint16(buf[0]) | uint16(buf[1])<<8) % kyberQ
	}
	return &p
}

func TestNTTInvolution(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		p := randomPoly(t)
		want := *p

		p.ntt()
		p.invntt()

		for j := range p.coeffs {
			require.Equal(freeze(want.coeffs[j]), freeze(p.coeffs[j]), "coefficient %d", j)
		}
	}
}

func TestNTTPolymulMatchesSchoolbook(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		a, b := randomPoly(t), randomPoly(t)

		var want poly
		for i := 0; i < kyberN; i++ {
			for j := 0; j < kyberN; j++ {
				c := fieldMul(a.coeffs[i], b.coeffs[j])
				k := i + j
				if k >= kyberN {
					// X^n == -1 in R_q = Z_q[X]/(X^n+1).
					k -= kyberN
					c = kyberQ - c
				}
				want.coeffs[k] = fieldAdd(want.coeffs[k], c)
			}
		}

		aHat, bHat := *a, *b
		aHat.ntt()
		bHat.ntt()

		var gotHat poly
		gotHat.mul(&aHat, &bHat)
		gotHat.invntt()

		for j := range want.coeffs {
			require.Equal(freeze(want.coeffs[j]), freeze(gotHat.coeffs[j]), "coefficient %d", j)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, l := range []int{1, 4, 5, 10, 11, 12} {
		coeffs := make([]uint16, kyberN)
		var buf [2]byte
		for i := range coeffs {
			rand.Read(buf[:])
			coeffs[i] = (uint16(buf[0]) | uint16(buf[1])<<8) & ((1 << uint(l)) - 1)
		}

		encoded := encodeL(coeffs, l)
		decoded := decodeL(encoded, l, kyberN)

		require.Equal(coeffs, decoded, "l=%d", l)
	}
}

func TestCompressDecompressBoundedError(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{1, 4, 5, 10, 11} {
		maxErr := uint32((kyberQ + (1 << uint(d+1)) - 1) / (1 << uint(d+1)))
		for x := uint16(0); x < kyberQ; x += 7 {
			c := compressCoeff(x, d)
			y := decompressCoeff(c, d)

			diff := int32(x) - int32(y)
			if diff < 0 {
				diff = -diff
			}
			// Modular distance: the error may wrap around q.
			dist := uint32(diff)
			if dist > kyberQ/2 {
				dist = kyberQ - dist
			}
			require.LessOrEqual(dist, maxErr, "x=%d d=%d", x, d)
		}
	}
}
