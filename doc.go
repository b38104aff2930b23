// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the CRYSTALS-Kyber Round-3 IND-CCA2-secure key
// encapsulation mechanism (KEM), based on the hardness of solving the
// learning-with-errors (LWE) problem over module lattices, as submitted to
// the NIST Post-Quantum Cryptography project.
//
// Kyber consists of an IND-CPA-secure public-key encryption scheme, CPA-PKE,
// hardened into an IND-CCA2-secure KEM via the Fujisaki-Okamoto transform
// with implicit rejection. Encapsulate and Decapsulate return a
// squeeze-capable SharedSecret handle rather than a fixed-length buffer, so
// callers derive as much key material as they need from it.
//
// Three parameter sets are provided: Kyber512, Kyber768, and Kyber1024,
// targeting security roughly equivalent to AES-128, AES-192, and AES-256
// respectively.
//
// Additionally, implementations of Kyber.AKE and Kyber.UAKE as presented in
// the Kyber paper are included for users that seek an authenticated key
// exchange built atop the KEM.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
