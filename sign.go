package eosecc

import (
	"crypto"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.uber.org/zap"
)

const (
	// maxSignAttempts bounds the canonical signature search.  Each attempt
	// is rejected with probability of roughly 1/128.
	maxSignAttempts = 1000

	// compactSigMagicOffset is added to the recovery id of compact
	// signatures.
	compactSigMagicOffset = 27

	// compactSigCompPubKey flags a compact signature as being for a
	// compressed public key.
	compactSigCompPubKey = 4
)

// derIntLen returns the length of the DER INTEGER encoding of the 32-byte
// big-endian unsigned value b: minimal bytes plus a leading zero when the high
// bit is set.
func derIntLen(b *[32]byte) int {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	n := len(b) - i
	if b[i]&0x80 != 0 {
		n++
	}
	return n
}

// isCanonical reports whether v DER encodes to exactly 32 bytes, which is the
// form the network accepts for both r and s.
func isCanonical(v *secp256k1.ModNScalar) bool {
	b := v.Bytes()
	return derIntLen(&b) == 32
}

// SignDigest signs a 32-byte digest.  Signatures are deterministic: the same
// key and digest always produce the same signature.  The result has s in the
// lower half of the group, r and s that DER encode to 32 bytes each, and a
// recovery byte for a compressed public key.
func (k *PrivateKey) SignDigest(digest []byte) (*Signature, error) {
	if len(digest) != sha256.Size {
		return nil, makeError(ErrInvalidDigest, fmt.Sprintf("digest is %d "+
			"bytes, expected %d", len(digest), sha256.Size))
	}
	pub, err := k.PublicKey()
	if err != nil {
		return nil, err
	}

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		res, err := generateNonce(&k.key.Key, digest, attempt)
		if err != nil {
			return nil, err
		}

		r, s := res.r, res.s
		if s.IsOverHalfOrder() {
			s.Negate()
		}
		if !isCanonical(&r) || !isCanonical(&s) {
			logger().Debug("non canonical signature, retrying",
				zap.Int("attempt", attempt))
			continue
		}

		id, err := calcRecoveryID(&e, &r, &s, pub)
		if err != nil {
			return nil, err
		}
		sig := &Signature{
			recovery: byte(id + compactSigCompPubKey + compactSigMagicOffset),
			r:        r,
			s:        s,
		}
		return sig, nil
	}
	return nil, makeError(ErrNonceExhausted, fmt.Sprintf("no canonical "+
		"signature after %d attempts", maxSignAttempts))
}

// SignMessage signs SHA256(data).
func (k *PrivateKey) SignMessage(data []byte) (*Signature, error) {
	digest := sha256.Sum256(data)
	return k.SignDigest(digest[:])
}

type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key as a crypto.PublicKey, or nil if it cannot be
// computed.
func (k *PrivateKey) Public() crypto.PublicKey {
	pub, err := k.PublicKey()
	if err != nil {
		return nil
	}
	return pub
}

// Sign will sign the provided digest, returning the resulting 65-byte
// signature.  The signature is deterministic so rand is not used.
// [SignOptions] can be used to pass options.
func (k *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := k.SignDigest(digest)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}
