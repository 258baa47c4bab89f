// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package eosecc implements the key and signature formats of EOS-family chains
on top of the secp256k1 curve.

The curve arithmetic itself is provided by the decred secp256k1 package.  This
package adds the textual formats used by the network, deterministic signing
and public key recovery.

An overview of the features provided by this package are as follows:

  - Private key parsing and serialization in Wallet Import Format (WIF) and
    the PVT_K1_ form
  - Public key parsing and serialization in the legacy prefixed form (FU by
    default, see ParsePublicKeyWithPrefix) and the PUB_K1_ form
  - Signature parsing and serialization in the SIG_K1_ form
  - Private key generation from the system secure random source, from a seed
    string and from a parent key and name
  - Deterministic signing with RFC6979 nonces, producing low-S signatures whose
    r and s both DER encode to 32 bytes, as required by the network
  - Verification of signatures against a public key
  - Public key recovery from a signature and digest, using simultaneous
    two-scalar multiplication (Shamir's trick)
  - ECDH shared secrets

Keys remember the textual form they were parsed from: a key read as WIF is
written back as WIF, a key read as PVT_K1_ is written back as PVT_K1_.
Signatures are always written in the SIG_K1_ form.

Checksums are the first four bytes of RIPEMD160(payload || key type) for the
prefixed forms (key type empty for legacy public keys) and of
SHA256(SHA256(payload)) for WIF.

Every structurally invalid input is reported with an Error of kind
ErrInvalidKey.  A signature that does not match is reported by Verify returning
false, never as an error.

The package logs through zap and is silent unless UseLogger is called.

The ecckd sub package provides BIP32 hierarchical derivation and BIP39
mnemonics producing keys of this package.
*/
package eosecc
