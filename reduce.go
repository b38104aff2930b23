// reduce.go - Montgomery, Barrett, and full reduction over Z_3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	qinv = 3327 // -inverse_mod(q, 2^16)
	rlog = 16

	// barrettV is floor(2^16/q); used by barrettReduce to pull a uint16 back
	// into [0, 2q) in one multiply-and-shift, no division.
	barrettV = 19

	// barrettV32 is floor(2^32/q); used by reduceProduct to pull the full
	// 32-bit product of two field elements back to within a few multiples
	// of q, again without a division.
	barrettV32 = 1290167
)

// Montgomery reduction; given a 32-bit integer a, computes 16-bit integer
// congruent to a * R^-1 mod q, where R = 2^16 (see value of rlog). Result is
// in [0, 2q).
func montgomeryReduce(a uint32) uint16 {
	u := a * qinv
	u &= (1 << rlog) - 1
	u *= kyberQ
	a += u
	return uint16(a >> rlog)
}

// Barrett reduction; given a 16-bit integer a, computes a 16-bit integer
// congruent to a mod q, in [0, 2q).
func barrettReduce(a uint16) uint16 {
	u := (uint32(a) * barrettV) >> 16
	return a - uint16(u)*kyberQ
}

// reduceProduct Barrett-reduces the 32-bit product of two already-canonical
// field elements, congruent to a mod q, landing within a few multiples of q
// (strictly less than 2q for any a < q*q). Used where montgomeryReduce's
// Montgomery-domain output would otherwise need un-scaling.
func reduceProduct(a uint32) uint16 {
	u := uint32((uint64(a) * barrettV32) >> 32)
	return uint16(a - u*kyberQ)
}

// Full reduction; given a 16-bit integer a in [0, 2q), computes the unique
// representative of a mod q in [0, q).
func freeze(x uint16) uint16 {
	m := x - kyberQ
	c := int16(m)
	c >>= 15
	r := m ^ ((x ^ m) & uint16(c))
	return r
}

// fieldAdd, fieldSub, fieldMul are the Z_q operations of spec section 4.1.
// All three are branch-free and perform no data-dependent memory access.
// fieldAdd/fieldSub return a lazily-reduced value in [0, 2q), matching every
// other polynomial-level add/sub in this package; callers freeze() at an
// operation boundary (serialization, compression) rather than after each op.

func fieldAdd(a, b uint16) uint16 {
	return barrettReduce(a + b)
}

func fieldSub(a, b uint16) uint16 {
	return barrettReduce(a + 2*kyberQ - b)
}

// fieldMul computes a*b mod q, fully canonicalized to [0, q).
func fieldMul(a, b uint16) uint16 {
	return freeze(reduceProduct(uint32(a) * uint32(b)))
}
