// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosecc

import (
	"crypto/sha512"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// The result is the raw 32-byte x coordinate and should be hashed before use
// as a key.  SharedSecret does that.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey) []byte {
	var result secp256k1.JacobianPoint
	point := pubkey.asJacobian()
	secp256k1.ScalarMultNonConst(&privkey.key.Key, &point, &result)
	result.ToAffine()
	xBytes := result.X.Bytes()
	return xBytes[:]
}

// SharedSecret returns SHA512 of the ECDH x coordinate shared with remote.
// Both parties of an exchange obtain the same 64 bytes.
func (k *PrivateKey) SharedSecret(remote *PublicKey) []byte {
	sum := sha512.Sum512(GenerateSharedSecret(k, remote))
	return sum[:]
}

// ECDH is an alias to GenerateSharedSecret, however by being part of the
// private key it is closer to go's own ecdh api.
func (k *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	return GenerateSharedSecret(k, remote), nil
}
