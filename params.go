// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polySize is the 12-bit packed size of a single polynomial, in bytes.
	polySize = 384
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	//
	// This parameter set has a 1632 byte private key, 800 byte public key,
	// and a 768 byte cipher text.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192.
	//
	// This parameter set has a 2400 byte private key, 1184 byte public key,
	// and a 1088 byte cipher text.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	//
	// This parameter set has a 3168 byte private key, 1568 byte public key,
	// and a 1568 byte cipher text.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is a Kyber parameter set: the tuple (k, eta1, eta2, du, dv).
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize           int // 12-bit packed size of a k-element NTT-domain vector
	polyVecCompressedSize int // du-bit packed size of a k-element vector

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	switch k {
	case 2, 3, 4:
		p.k = k
	default:
		panic("kyber: k must be in {2,3,4}")
	}
	switch eta1 {
	case 2, 3:
		p.eta1 = eta1
	default:
		panic("kyber: eta1 must be in {2,3}")
	}
	if eta2 != 2 {
		panic("kyber: eta2 must be 2")
	}
	p.eta2 = eta2
	switch du {
	case 10, 11:
		p.du = du
	default:
		panic("kyber: du must be in {10,11}")
	}
	switch dv {
	case 4, 5:
		p.dv = dv
	default:
		panic("kyber: dv must be in {4,5}")
	}

	p.polyVecSize = k * 384 // 32*12 bytes per polynomial
	p.polyVecCompressedSize = k * 32 * du

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + 32*dv

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // sk || pk || H(pk) || z
	p.cipherTextSize = p.indcpaSize

	return &p
}
