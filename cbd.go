// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Load bytes into a 64-bit integer in little-endian order.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// Given an array of uniformly random bytes, compute a polynomial with
// coefficients distributed according to a centered binomial distribution
// with parameter eta. cbd(eta=2) consumes 128 bytes, cbd(eta=3) consumes 192
// bytes (spec section 4.3).
func (p *poly) cbd(buf []byte, eta int) {
	cbdRef(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		// Each nibble of d packs two 2-bit Hamming weights (a, b); mask
		// 0x55555555 isolates alternating bits so a 4-byte load produces
		// eight coefficients' worth of weight at once.
		for i := 0; i < kyberN/8; i++ {
			t := uint32(loadLittleEndian(buf[4*i:], 4))
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a := (d >> uint(4*j)) & 0x3
				b := (d >> uint(4*j+2)) & 0x3
				p.coeffs[8*i+j] = uint16(a + kyberQ - b)
			}
		}
	case 3:
		var a, b [4]uint32
		for i := 0; i < kyberN/4; i++ {
			t := loadLittleEndian(buf[3*i:], 3)
			var d uint32
			for j := 0; j < 3; j++ {
				d += uint32((t >> uint(j)) & 0x249249)
			}

			a[0] = d & 0x7
			b[0] = (d >> 3) & 0x7
			a[1] = (d >> 6) & 0x7
			b[1] = (d >> 9) & 0x7
			a[2] = (d >> 12) & 0x7
			b[2] = (d >> 15) & 0x7
			a[3] = (d >> 18) & 0x7
			b[3] = (d >> 21)

			p.coeffs[4*i+0] = uint16(a[0] + kyberQ - b[0])
			p.coeffs[4*i+1] = uint16(a[1] + kyberQ - b[1])
			p.coeffs[4*i+2] = uint16(a[2] + kyberQ - b[2])
			p.coeffs[4*i+3] = uint16(a[3] + kyberQ - b[3])
		}
	default:
		panic("kyber: eta must be in {2,3}")
	}
}
