package ecckd

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

var (
	ErrShaKeyInvalid = errors.New("generated key zero or overflow, try next one")
)

// hmacCKD splits HMAC-SHA512(salt, data) into the IL scalar and the chain
// code.  An IL of zero or not below n yields ErrShaKeyInvalid; BIP32 callers
// move on to the next index.
func hmacCKD(data, salt []byte) (*secp256k1.ModNScalar, []byte, error) {
	mac := hmac.New(sha512.New, salt)
	mac.Write(data)
	sum := mac.Sum(nil)

	var il secp256k1.ModNScalar
	if overflow := il.SetByteSlice(sum[:32]); overflow || il.IsZero() {
		return nil, nil, ErrShaKeyInvalid
	}
	return &il, sum[32:], nil
}

func doubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// rmd160sha256 is the BIP32 key identifier, RIPEMD160(SHA256(b)).
func rmd160sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}
