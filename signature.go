package eosecc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature is a recoverable secp256k1 signature: a recovery byte and r, s
// in [1, n-1].  It is immutable.
type Signature struct {
	recovery byte
	r        secp256k1.ModNScalar
	s        secp256k1.ModNScalar
}

// ParseSignature parses a SIG_K1_ signature.
func ParseSignature(s string) (*Signature, error) {
	ks, err := parseKeyString(s, "signature", matchModernSignature)
	if err != nil {
		return nil, err
	}
	if err := requireK1(ks); err != nil {
		return nil, err
	}
	return SignatureFromBytes(ks.payload)
}

// SignatureFromBytes parses the 65-byte recovery || r || s encoding.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureLen {
		return nil, invalidKey(fmt.Sprintf("signature is %d bytes, expected %d",
			len(b), SignatureLen))
	}

	// Only the compact offset plus the compressed flag and the two id bits
	// may be present.
	i := int(b[0]) - compactSigMagicOffset
	if i != i&7 {
		return nil, invalidKey(fmt.Sprintf("invalid signature recovery "+
			"byte %d", b[0]))
	}

	sig := &Signature{recovery: b[0]}
	if overflow := sig.r.SetByteSlice(b[1:33]); overflow || sig.r.IsZero() {
		return nil, invalidKey("signature r is not in [1, n-1]")
	}
	if overflow := sig.s.SetByteSlice(b[33:65]); overflow || sig.s.IsZero() {
		return nil, invalidKey("signature s is not in [1, n-1]")
	}
	return sig, nil
}

// SignatureFromHex parses the hex form of the 65-byte encoding.
func SignatureFromHex(s string) (*Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalidKey(fmt.Sprintf("malformed signature hex: %v", err))
	}
	return SignatureFromBytes(b)
}

// String returns the SIG_K1_ form.
func (sig *Signature) String() string {
	return encodeModern(tagSignature, KeyTypeK1, sig.Bytes())
}

// Bytes returns recovery || r || s.
func (sig *Signature) Bytes() []byte {
	b := make([]byte, SignatureLen)
	b[0] = sig.recovery
	sig.r.PutBytesUnchecked(b[1:33])
	sig.s.PutBytesUnchecked(b[33:65])
	return b
}

// Hex returns the hex form of Bytes.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Bytes())
}

// RecoveryByte returns the raw recovery byte, including the compact and
// compressed offsets.
func (sig *Signature) RecoveryByte() byte {
	return sig.recovery
}

// RecoveryID returns the two recovery bits: y parity and second key.
func (sig *Signature) RecoveryID() int {
	return (int(sig.recovery) - compactSigMagicOffset) & 3
}

// R returns the r component.
func (sig *Signature) R() secp256k1.ModNScalar {
	return sig.r
}

// S returns the s component.
func (sig *Signature) S() secp256k1.ModNScalar {
	return sig.s
}

// IsEqual reports whether both signatures have the same recovery byte, r and
// s.
func (sig *Signature) IsEqual(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.recovery == other.recovery && sig.r.Equals(&other.r) &&
		sig.s.Equals(&other.s)
}

// Verify reports whether the signature is valid for digest and pub.  It never
// fails with an error; malformed digests simply do not verify.
func (sig *Signature) Verify(digest []byte, pub *PublicKey) bool {
	if len(digest) != sha256.Size || pub == nil {
		return false
	}
	return ecdsa.NewSignature(&sig.r, &sig.s).Verify(digest, pub.key)
}

// VerifyMessage reports whether the signature is valid for SHA256(data).
func (sig *Signature) VerifyMessage(data []byte, pub *PublicKey) bool {
	digest := sha256.Sum256(data)
	return sig.Verify(digest[:], pub)
}

// Recover returns the public key that produced the signature over digest.
func (sig *Signature) Recover(digest []byte) (*PublicKey, error) {
	if len(digest) != sha256.Size {
		return nil, makeError(ErrInvalidDigest, fmt.Sprintf("digest is %d "+
			"bytes, expected %d", len(digest), sha256.Size))
	}
	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)
	key, err := tryRecover(&e, &sig.r, &sig.s, sig.RecoveryID())
	if err != nil {
		return nil, err
	}
	return newPublicKey(key, FormatLegacy), nil
}

// RecoverMessage returns the public key that produced the signature over
// SHA256(data).
func (sig *Signature) RecoverMessage(data []byte) (*PublicKey, error) {
	digest := sha256.Sum256(data)
	return sig.Recover(digest[:])
}
