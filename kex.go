// kex.go - Kyber key exchange.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"
)

var (
	// ErrInvalidMessageSize is the error thrown via a panic when a initator
	// or responder message is an invalid size.
	ErrInvalidMessageSize = errors.New("kyber: invalid message size")

	// ErrParameterSetMismatch is the error thrown via a panic when there
	// is a mismatch between parameter sets.
	ErrParameterSetMismatch = errors.New("kyber: parameter set mismatch")
)

// squeezeTranscriptKey reads SymSize bytes out of a shared-secret handle for
// folding into an outer key-exchange transcript hash; each underlying KEM
// operation now yields a squeeze-capable handle rather than a fixed-length
// key (section 4.6), so every "tk" here is fixed to SymSize bytes at the
// point it joins the transcript.
func squeezeTranscriptKey(ss *SharedSecret) []byte {
	tk := make([]byte, SymSize)
	io.ReadFull(ss, tk)
	return tk
}

// UAKEInitiatorMessageSize returns the size of the initiator UAKE message
// in bytes.
func (p *ParameterSet) UAKEInitiatorMessageSize() int {
	return p.PublicKeySize() + p.CipherTextSize()
}

// UAKEResponderMessageSize returns the size of the responder UAKE message
// in bytes.
func (p *ParameterSet) UAKEResponderMessageSize() int {
	return p.CipherTextSize()
}

// UAKEInitiatorState is a initiator UAKE instance.  Each instance MUST only
// be used for one key exchange and never reused.
type UAKEInitiatorState struct {
	// Message is the UAKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given UAKE instance and responder
// message.
//
// Providing a cipher text that is obviously malformed (too large/small) will
// result in a panic.
func (s *UAKEInitiatorState) Shared(recv []byte) (sharedSecret []byte) {
	xof := newAbsorbingShake256()

	tk := squeezeTranscriptKey(s.eSk.Decapsulate(recv))
	defer wipeBytes(tk)
	xof.Write(tk)
	xof.Write(s.tk)

	sharedSecret = make([]byte, SymSize)
	io.ReadFull(xof.IntoSqueezing(), sharedSecret)

	return
}

// NewUAKEInitiatorState creates a new initiator UAKE instance.
func (pk *PublicKey) NewUAKEInitiatorState(rng io.Reader) (*UAKEInitiatorState, error) {
	s := new(UAKEInitiatorState)
	s.Message = make([]byte, 0, pk.p.UAKEInitiatorMessageSize())

	var err error
	_, s.eSk, err = pk.p.GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, s.eSk.PublicKey.Bytes()...)

	ct, ss, err := pk.Encapsulate(rng)
	if err != nil {
		return nil, err
	}
	s.tk = squeezeTranscriptKey(ss)
	s.Message = append(s.Message, ct...)

	return s, nil
}

// UAKEResponderShared generates a responder message and shared secret given
// a initiator UAKE message.
//
// Providing a cipher text that is obviously malformed (too large/small) will
// result in a panic.
func (sk *PrivateKey) UAKEResponderShared(rng io.Reader, recv []byte) (message, sharedSecret []byte) {
	p := sk.PublicKey.p
	pkLen := p.PublicKeySize()

	if len(recv) != p.UAKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	peerPk, err := p.PublicKeyFromBytes(rawPk)
	if err != nil {
		panic(err)
	}

	xof := newAbsorbingShake256()

	var ss *SharedSecret
	message, ss, err = peerPk.Encapsulate(rng)
	if err != nil {
		panic(err)
	}
	tk := squeezeTranscriptKey(ss)
	defer wipeBytes(tk)
	xof.Write(tk)

	tk = squeezeTranscriptKey(sk.Decapsulate(ct))
	defer wipeBytes(tk)
	xof.Write(tk)

	sharedSecret = make([]byte, SymSize)
	io.ReadFull(xof.IntoSqueezing(), sharedSecret)

	return
}

// AKEInitiatorMessageSize returns the size of the initiator AKE message
// in bytes.
func (p *ParameterSet) AKEInitiatorMessageSize() int {
	return p.PublicKeySize() + p.CipherTextSize()
}

// AKEResponderMessageSize returns the size of the responder AKE message
// in bytes.
func (p *ParameterSet) AKEResponderMessageSize() int {
	return 2 * p.CipherTextSize()
}

// AKEInitiatorState is a initiator AKE instance.  Each instance MUST only be
// used for one key exchange and never reused.
type AKEInitiatorState struct {
	// Message is the AKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given AKE instance, responder
// message, and long term initiator private key.
//
// Providing a malformed responder message, or a private key that uses a
// different ParameterSet than the AKEInitiatorState, will result in a
// panic.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorPrivateKey *PrivateKey) (sharedSecret []byte) {
	p := s.eSk.PublicKey.p

	if initiatorPrivateKey.PublicKey.p != p {
		panic(ErrParameterSetMismatch)
	}
	if len(recv) != p.AKEResponderMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	ctLen := p.CipherTextSize()

	xof := newAbsorbingShake256()

	tk := squeezeTranscriptKey(s.eSk.Decapsulate(recv[:ctLen]))
	defer wipeBytes(tk)
	xof.Write(tk)

	tk = squeezeTranscriptKey(initiatorPrivateKey.Decapsulate(recv[ctLen:]))
	defer wipeBytes(tk)
	xof.Write(tk)

	xof.Write(s.tk)

	sharedSecret = make([]byte, SymSize)
	io.ReadFull(xof.IntoSqueezing(), sharedSecret)

	return
}

// NewAKEInitiatorState creates a new initiator AKE instance.
func (pk *PublicKey) NewAKEInitiatorState(rng io.Reader) (*AKEInitiatorState, error) {
	s := new(AKEInitiatorState)

	// This is identical to the UAKE case, so just reuse the code.
	us, err := pk.NewUAKEInitiatorState(rng)
	if err != nil {
		return nil, err
	}

	s.Message = us.Message
	s.eSk = us.eSk
	s.tk = us.tk

	return s, nil
}

// AKEResponderShared generates a responder message and shared secret given
// a initiator AKE message and long term initiator public key.
//
// Providing a malformed initiator message, or a peer public key that uses a
// different ParameterSet than sk, will result in a panic.
func (sk *PrivateKey) AKEResponderShared(rng io.Reader, recv []byte, peerPublicKey *PublicKey) (message, sharedSecret []byte) {
	p := sk.PublicKey.p
	pkLen := p.PublicKeySize()

	if peerPublicKey.p != p {
		panic(ErrParameterSetMismatch)
	}

	if len(recv) != p.AKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	peerEphemeralPk, err := p.PublicKeyFromBytes(rawPk)
	if err != nil {
		panic(err)
	}

	message = make([]byte, 0, p.AKEResponderMessageSize())

	xof := newAbsorbingShake256()

	var tmp []byte
	var ss *SharedSecret

	tmp, ss, err = peerEphemeralPk.Encapsulate(rng)
	if err != nil {
		panic(err)
	}
	tk := squeezeTranscriptKey(ss)
	defer wipeBytes(tk)
	xof.Write(tk)
	message = append(message, tmp...)

	tmp, ss, err = peerPublicKey.Encapsulate(rng)
	if err != nil {
		panic(err)
	}
	tk = squeezeTranscriptKey(ss)
	defer wipeBytes(tk)
	xof.Write(tk)
	message = append(message, tmp...)

	tk = squeezeTranscriptKey(sk.Decapsulate(ct))
	defer wipeBytes(tk)
	xof.Write(tk)

	sharedSecret = make([]byte, SymSize)
	io.ReadFull(xof.IntoSqueezing(), sharedSecret)

	return
}
