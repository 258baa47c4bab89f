package eosecc

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// checksumLen is the number of checksum bytes appended to every encoded
// payload.
const checksumLen = 4

type checksumKind int

const (
	// checksumDoubleSHA256 is SHA256(SHA256(payload)), used by WIF keys.
	checksumDoubleSHA256 checksumKind = iota

	// checksumRIPEMD160 is RIPEMD160(payload || keyType).  The key type is
	// empty for legacy public keys and the curve tag (K1) for the PUB_, PVT_
	// and SIG_ forms.
	checksumRIPEMD160
)

func doubleSha256(in []byte) []byte {
	a := sha256.Sum256(in)
	a = sha256.Sum256(a[:])
	return a[:]
}

func checksum(payload []byte, kind checksumKind, keyType string) []byte {
	switch kind {
	case checksumDoubleSHA256:
		return doubleSha256(payload)[:checksumLen]
	default:
		rmd := ripemd160.New()
		rmd.Write(payload)
		rmd.Write([]byte(keyType))
		return rmd.Sum(nil)[:checksumLen]
	}
}

// checkEncode appends the checksum selected by kind to payload and returns
// the base58 text of the result.
func checkEncode(payload []byte, kind checksumKind, keyType string) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload, kind, keyType)...)
	return base58.Encode(buf)
}

// checkDecode is the inverse of checkEncode.  It fails with ErrInvalidKey when
// the text is not base58 or the trailing checksum does not match.
func checkDecode(s string, kind checksumKind, keyType string) ([]byte, error) {
	if s == "" {
		return nil, invalidKey("empty base58 string")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, invalidKey(fmt.Sprintf("malformed base58: %v", err))
	}
	if len(raw) < checksumLen {
		return nil, invalidKey(fmt.Sprintf("decoded length %d is shorter "+
			"than the checksum", len(raw)))
	}
	payload, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	if !bytes.Equal(sum, checksum(payload, kind, keyType)) {
		return nil, invalidKey("checksum mismatch")
	}
	return payload, nil
}
