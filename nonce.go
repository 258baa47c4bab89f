package eosecc

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// maxNonceIterations bounds the RFC6979 candidate loop.  A candidate is
// rejected with probability below 2^-127, so the ceiling is never reached in
// practice.
const maxNonceIterations = 1000

var (
	// singleZero is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleZero = []byte{0x00}

	// singleOne is used during RFC6979 nonce generation.  It is provided
	// here to avoid the need to create it multiple times.
	singleOne = []byte{0x01}

	// oneInitializer is the initial V of RFC6979 section 3.2 step b.
	oneInitializer = bytes.Repeat([]byte{0x01}, sha256.Size)

	// zeroInitializer is the initial K of RFC6979 section 3.2 step c.
	zeroInitializer = bytes.Repeat([]byte{0x00}, sha256.Size)
)

// nonceResult is an accepted RFC6979 nonce together with the signature pair
// it produces.  s is not yet normalized to the lower half of the group.
type nonceResult struct {
	k secp256k1.ModNScalar
	r secp256k1.ModNScalar
	s secp256k1.ModNScalar
}

func hmacSHA256(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)
}

// generateNonce derives the RFC6979 nonce for the private scalar d and the
// 32-byte digest and returns it along with the resulting (r, s).
//
// attempt perturbs the nonce for the canonical signature search: when it is
// nonzero the digest fed to the HMAC chain is SHA256(digest || attempt zero
// bytes).  The signed value e is always the unperturbed digest.
//
// Since both the hash output and the group order are 256 bits, steps h.1 and
// h.2 of RFC6979 section 3.2 collapse to a single HMAC block.
func generateNonce(d *secp256k1.ModNScalar, digest []byte, attempt int) (*nonceResult, error) {
	hash := digest
	if attempt > 0 {
		h := sha256.New()
		h.Write(digest)
		h.Write(make([]byte, attempt))
		hash = h.Sum(nil)
	}

	x := d.Bytes()
	v := append([]byte(nil), oneInitializer...)
	k := append([]byte(nil), zeroInitializer...)

	// Steps d through g.
	k = hmacSHA256(k, v, singleZero, x[:], hash)
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, v, singleOne, x[:], hash)
	v = hmacSHA256(k, v)

	// Step h.2.
	v = hmacSHA256(k, v)

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)

	for i := 0; i < maxNonceIterations; i++ {
		// Step h.3: accept T when it is in [1, n-1] and yields a usable
		// signature.
		if res, ok := signWithNonce(d, &e, v); ok {
			return res, nil
		}
		k = hmacSHA256(k, v, singleZero)
		v = hmacSHA256(k, v)
		v = hmacSHA256(k, v)
	}
	return nil, makeError(ErrNonceExhausted, fmt.Sprintf("no usable nonce "+
		"after %d candidates", maxNonceIterations))
}

// signWithNonce computes the ECDSA pair for the candidate nonce t:
//
//	R = t·G, r = R.x mod n, s = t^-1 (e + d·r) mod n
//
// It reports false when t is out of range or r or s is zero.
func signWithNonce(d, e *secp256k1.ModNScalar, t []byte) (*nonceResult, bool) {
	var res nonceResult
	if overflow := res.k.SetByteSlice(t); overflow || res.k.IsZero() {
		return nil, false
	}

	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&res.k, &R)
	if R.Z.IsZero() {
		return nil, false
	}
	R.ToAffine()

	res.r.SetBytes(R.X.Bytes())
	if res.r.IsZero() {
		return nil, false
	}

	kInv := new(secp256k1.ModNScalar).InverseValNonConst(&res.k)
	res.s.Mul2(d, &res.r).Add(e).Mul(kInv)
	if res.s.IsZero() {
		return nil, false
	}
	return &res, true
}
