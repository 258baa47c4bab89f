package ecckd

import (
	"bytes"
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
)

// Field offsets of a serialized extended key, followed by a four byte
// double SHA-256 checksum.
const (
	offVersion     = 0
	offDepth       = 4
	offFingerprint = 5
	offChildNumber = 9
	offChainCode   = 13
	offKeyData     = 45

	serializedKeyLen = 78
	checksumLen      = 4
)

// FromString parses a base58 xprv or xpub string.
func FromString(str string) (*ExtendedKey, error) {
	bin, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	k := new(ExtendedKey)
	if err := k.UnmarshalBinary(bin); err != nil {
		return nil, err
	}
	return k, nil
}

// String returns the base58 xprv or xpub form of k, or the empty string if
// k is malformed.
func (k *ExtendedKey) String() string {
	bin, err := k.MarshalBinary()
	if err != nil {
		return ""
	}
	return base58.Encode(bin)
}

// MarshalBinary writes the 78-byte BIP32 serialization plus checksum.
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	if len(k.ChainCode) != chainCodeLen {
		return nil, ErrInvalidChainCode
	}

	buf := make([]byte, serializedKeyLen, serializedKeyLen+checksumLen)
	copy(buf[offVersion:], k.Version[:])
	buf[offDepth] = k.Depth
	copy(buf[offFingerprint:], k.Fingerprint[:])
	binary.BigEndian.PutUint32(buf[offChildNumber:], k.ChildNumber)
	copy(buf[offChainCode:], k.ChainCode)

	if k.IsPrivate() {
		// 0x00 || ser256(k); buf is zeroed so short scalars are left padded.
		if len(k.KeyData) > 32 {
			return nil, ErrInvalidKeyLen
		}
		copy(buf[serializedKeyLen-len(k.KeyData):], k.KeyData)
	} else {
		if len(k.KeyData) != secp256k1.PubKeyBytesLenCompressed {
			return nil, ErrInvalidKeyLen
		}
		copy(buf[offKeyData:], k.KeyData)
	}

	return append(buf, doubleSha256(buf)[:checksumLen]...), nil
}

func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+checksumLen {
		return ErrInvalidKeyLen
	}
	payload, sum := data[:serializedKeyLen], data[serializedKeyLen:]
	if !bytes.Equal(sum, doubleSha256(payload)[:checksumLen]) {
		return ErrBadChecksum
	}

	var version KeyVersion
	copy(version[:], payload[offVersion:offDepth])
	if !version.IsKnown() {
		return ErrUnknownVersion
	}

	// Private key data is 0x00 || ser256(k); compressed points start with
	// 0x02 or 0x03.
	keyData := payload[offKeyData:]
	if (keyData[0] == 0x00) != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}
	if version.IsPrivate() {
		keyData = keyData[1:]
		var d secp256k1.ModNScalar
		if overflow := d.SetByteSlice(keyData); overflow || d.IsZero() {
			return ErrInvalidKey
		}
	} else if _, err := secp256k1.ParsePubKey(keyData); err != nil {
		return err
	}

	*k = ExtendedKey{
		Version:     version,
		Depth:       payload[offDepth],
		ChildNumber: binary.BigEndian.Uint32(payload[offChildNumber:offChainCode]),
		KeyData:     append([]byte(nil), keyData...),
		ChainCode:   append([]byte(nil), payload[offChainCode:offKeyData]...),
	}
	copy(k.Fingerprint[:], payload[offFingerprint:offChildNumber])
	return nil
}
