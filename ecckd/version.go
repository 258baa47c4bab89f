package ecckd

import "encoding/hex"

// KeyVersion is the four byte prefix of a serialized extended key.  It
// determines both the network and whether the key data is private.
type KeyVersion [4]byte

var (
	BitcoinMainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e}
	BitcoinMainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4}
	BitcoinTestnetPublic  = KeyVersion{0x04, 0x35, 0x87, 0xcf}
	BitcoinTestnetPrivate = KeyVersion{0x04, 0x35, 0x83, 0x94}
)

// EOS wallets serialize with the bitcoin mainnet versions, so xprv/xpub
// strings move freely between them.
var publicVersions = map[KeyVersion]KeyVersion{
	BitcoinMainnetPrivate: BitcoinMainnetPublic,
	BitcoinTestnetPrivate: BitcoinTestnetPublic,
}

// IsPrivate returns true if the version is for a private key
func (kv KeyVersion) IsPrivate() bool {
	_, ok := publicVersions[kv]
	return ok
}

// IsKnown reports whether kv is one of the recognized versions.
func (kv KeyVersion) IsKnown() bool {
	if kv.IsPrivate() {
		return true
	}
	for _, pub := range publicVersions {
		if kv == pub {
			return true
		}
	}
	return false
}

func (kv KeyVersion) ToPublic() KeyVersion {
	if pub, ok := publicVersions[kv]; ok {
		return pub
	}
	return kv
}

func (kv KeyVersion) String() string {
	return hex.EncodeToString(kv[:])
}
