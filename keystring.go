package eosecc

import (
	"fmt"
	"regexp"
	"strings"
)

// KeyFormat records which textual family a key was read from.  Keys write
// themselves back out in the same family.
type KeyFormat int

const (
	// FormatLegacy is the prefixed public key form (FU...) and the Wallet
	// Import Format for private keys.
	FormatLegacy KeyFormat = iota

	// FormatModern is the PUB_<type>_ / PVT_<type>_ form.
	FormatModern
)

// String returns the name of the format.
func (f KeyFormat) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatModern:
		return "modern"
	}
	return fmt.Sprintf("KeyFormat(%d)", int(f))
}

const (
	// KeyTypeK1 is the key type tag of secp256k1 keys and signatures.
	KeyTypeK1 = "K1"

	// DefaultPublicKeyPrefix is the prefix of legacy public keys.
	DefaultPublicKeyPrefix = "FU"

	// wifVersion is the network version byte leading every WIF payload.
	wifVersion = 0x80

	// wifCompressedFlag optionally trails the scalar of a WIF payload.
	wifCompressedFlag = 0x01

	// PrivateKeyLen is the length of a serialized private scalar.
	PrivateKeyLen = 32

	// PublicKeyLen is the length of a compressed public key.
	PublicKeyLen = 33

	// SignatureLen is the length of a serialized signature: one recovery
	// byte followed by 32-byte r and s.
	SignatureLen = 65

	tagPublic    = "PUB"
	tagPrivate   = "PVT"
	tagSignature = "SIG"
)

// stringKind identifies which textual shape a keyString was matched against.
type stringKind int

const (
	kindLegacyPublic stringKind = iota
	kindModernPublic
	kindModernPrivate
	kindModernSignature
	kindWIF
)

func (k stringKind) String() string {
	switch k {
	case kindLegacyPublic:
		return "legacy public key"
	case kindModernPublic:
		return "public key"
	case kindModernPrivate:
		return "private key"
	case kindModernSignature:
		return "signature"
	case kindWIF:
		return "WIF private key"
	}
	return "unknown"
}

// keyString is the decoded form of a textual key or signature.  The payload
// has already passed its checksum.
type keyString struct {
	kind    stringKind
	keyType string
	payload []byte
}

var (
	modernPattern = regexp.MustCompile(`^(PUB|PVT|SIG)_([A-Za-z0-9]+)_([1-9A-HJ-NP-Za-km-z]+)$`)
	base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
)

// matcher recognizes a single textual shape.  It returns ok false when s does
// not have that shape at all, and an error when it does but fails to decode.
type matcher func(s string) (ks *keyString, ok bool, err error)

// modernMatcher matches PUB_/PVT_/SIG_ strings carrying the given tag.
func modernMatcher(tag string, kind stringKind) matcher {
	return func(s string) (*keyString, bool, error) {
		m := modernPattern.FindStringSubmatch(s)
		if m == nil || m[1] != tag {
			return nil, false, nil
		}
		keyType := m[2]
		payload, err := checkDecode(m[3], checksumRIPEMD160, keyType)
		if err != nil {
			return nil, true, err
		}
		return &keyString{kind: kind, keyType: keyType, payload: payload}, true, nil
	}
}

// legacyPublicMatcher matches prefix followed by base58check text.
func legacyPublicMatcher(prefix string) matcher {
	return func(s string) (*keyString, bool, error) {
		if prefix == "" || !strings.HasPrefix(s, prefix) {
			return nil, false, nil
		}
		rest := s[len(prefix):]
		if !base58Pattern.MatchString(rest) {
			return nil, false, nil
		}
		payload, err := checkDecode(rest, checksumRIPEMD160, "")
		if err != nil {
			return nil, true, err
		}
		return &keyString{kind: kindLegacyPublic, payload: payload}, true, nil
	}
}

// wifMatcher matches bare base58check text holding a version byte, a 32-byte
// scalar and an optional compression flag.
func wifMatcher(s string) (*keyString, bool, error) {
	if !base58Pattern.MatchString(s) {
		return nil, false, nil
	}
	payload, err := checkDecode(s, checksumDoubleSHA256, "")
	if err != nil {
		return nil, true, err
	}
	if len(payload) == 0 || payload[0] != wifVersion {
		return nil, true, invalidKey("version mismatch")
	}
	scalar := payload[1:]
	if len(scalar) == PrivateKeyLen+1 && scalar[PrivateKeyLen] == wifCompressedFlag {
		scalar = scalar[:PrivateKeyLen]
	}
	if len(scalar) != PrivateKeyLen {
		return nil, true, invalidKey(fmt.Sprintf("WIF scalar is %d bytes, "+
			"expected %d", len(scalar), PrivateKeyLen))
	}
	return &keyString{kind: kindWIF, payload: scalar}, true, nil
}

var (
	matchModernPublic    = modernMatcher(tagPublic, kindModernPublic)
	matchModernPrivate   = modernMatcher(tagPrivate, kindModernPrivate)
	matchModernSignature = modernMatcher(tagSignature, kindModernSignature)
)

// parseKeyString tries matchers in order and returns the outcome of the first
// one recognizing the shape of s.
func parseKeyString(s, what string, matchers ...matcher) (*keyString, error) {
	for _, match := range matchers {
		ks, ok, err := match(s)
		if !ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		return ks, nil
	}
	return nil, invalidKey(fmt.Sprintf("unrecognized %s format", what))
}

// classifyKeyString runs every known matcher against s and requires exactly
// one of them to decode it successfully.
func classifyKeyString(s, prefix string) (*keyString, error) {
	matchers := []matcher{
		matchModernPublic,
		matchModernPrivate,
		matchModernSignature,
		legacyPublicMatcher(prefix),
		wifMatcher,
	}
	var (
		found   *keyString
		lastErr error
	)
	for _, match := range matchers {
		ks, ok, err := match(s)
		if !ok {
			continue
		}
		if err != nil {
			lastErr = err
			continue
		}
		if found != nil {
			return nil, invalidKey(fmt.Sprintf("ambiguous key string: "+
				"matches both %s and %s", found.kind, ks.kind))
		}
		found = ks
	}
	if found != nil {
		return found, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, invalidKey("unrecognized key string format")
}

// requireK1 rejects key types other than K1.
func requireK1(ks *keyString) error {
	if ks.keyType != KeyTypeK1 {
		return invalidKey(fmt.Sprintf("unsupported key type %q, expected %s",
			ks.keyType, KeyTypeK1))
	}
	return nil
}

func encodeModern(tag, keyType string, payload []byte) string {
	return tag + "_" + keyType + "_" + checkEncode(payload, checksumRIPEMD160, keyType)
}

func encodeLegacyPublic(prefix string, compressed []byte) string {
	return prefix + checkEncode(compressed, checksumRIPEMD160, "")
}

func encodeWIF(scalar []byte) string {
	payload := make([]byte, 0, 1+len(scalar))
	payload = append(payload, wifVersion)
	payload = append(payload, scalar...)
	return checkEncode(payload, checksumDoubleSHA256, "")
}
