package eosecc

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKey is a secp256k1 point that is never the point at infinity.  It is
// always serialized compressed.
type PublicKey struct {
	key    *secp256k1.PublicKey
	format KeyFormat
	prefix string
}

// newPublicKey wraps an affine point, remembering the textual form to write
// it back out in.
func newPublicKey(key *secp256k1.PublicKey, format KeyFormat) *PublicKey {
	return &PublicKey{key: key, format: format, prefix: DefaultPublicKeyPrefix}
}

// ParsePublicKey parses a PUB_K1_ or FU prefixed public key.
func ParsePublicKey(s string) (*PublicKey, error) {
	return ParsePublicKeyWithPrefix(s, DefaultPublicKeyPrefix)
}

// ParsePublicKeyWithPrefix parses a PUB_K1_ public key or a legacy public key
// using the given prefix in place of FU.
func ParsePublicKeyWithPrefix(s, prefix string) (*PublicKey, error) {
	ks, err := parseKeyString(s, "public key", matchModernPublic,
		legacyPublicMatcher(prefix))
	if err != nil {
		return nil, err
	}
	return publicKeyFromKeyString(ks, prefix)
}

func publicKeyFromKeyString(ks *keyString, prefix string) (*PublicKey, error) {
	format := FormatLegacy
	if ks.kind == kindModernPublic {
		if err := requireK1(ks); err != nil {
			return nil, err
		}
		format = FormatModern
	}
	if len(ks.payload) != PublicKeyLen {
		return nil, invalidKey(fmt.Sprintf("public key is %d bytes, expected %d",
			len(ks.payload), PublicKeyLen))
	}
	key, err := secp256k1.ParsePubKey(ks.payload)
	if err != nil {
		return nil, invalidKey(fmt.Sprintf("invalid curve point: %v", err))
	}
	pub := newPublicKey(key, format)
	pub.prefix = prefix
	return pub, nil
}

// PublicKeyFromBytes parses a 33-byte compressed or 65-byte uncompressed
// public key.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, invalidKey(fmt.Sprintf("invalid curve point: %v", err))
	}
	return newPublicKey(key, FormatLegacy), nil
}

// IsValidPublicKey reports whether s parses as a public key.
func IsValidPublicKey(s string) bool {
	_, err := ParsePublicKey(s)
	return err == nil
}

// Format returns the textual form String produces.
func (p *PublicKey) Format() KeyFormat {
	return p.format
}

// String returns the key in the form it was constructed from.
func (p *PublicKey) String() string {
	if p.format == FormatModern {
		return p.ModernString()
	}
	return p.LegacyString(p.prefix)
}

// LegacyString returns prefix followed by the base58check key.
func (p *PublicKey) LegacyString(prefix string) string {
	return encodeLegacyPublic(prefix, p.Bytes())
}

// ModernString returns the PUB_K1_ form of the key.
func (p *PublicKey) ModernString() string {
	return encodeModern(tagPublic, KeyTypeK1, p.Bytes())
}

// Bytes returns the 33-byte compressed encoding.
func (p *PublicKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

// UncompressedBytes returns the 65-byte uncompressed encoding.
func (p *PublicKey) UncompressedBytes() []byte {
	return p.key.SerializeUncompressed()
}

// IsEqual reports whether both keys are the same point.  The textual format
// is not compared.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.key.IsEqual(other.key)
}

// Key returns the underlying secp256k1 public key.
func (p *PublicKey) Key() *secp256k1.PublicKey {
	return p.key
}

// asJacobian returns the key as a Jacobian point with Z = 1.
func (p *PublicKey) asJacobian() secp256k1.JacobianPoint {
	var point secp256k1.JacobianPoint
	p.key.AsJacobian(&point)
	return point
}
