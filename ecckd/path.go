package ecckd

import (
	"fmt"
	"strconv"
	"strings"
)

// EOS registered coin type (SLIP-44).
const eosCoinType = 194

// EOSPath returns m/44'/194'/0'/0/index, the path EOS wallets derive their
// account keys from.
func EOSPath(index uint32) []uint32 {
	return []uint32{
		44 | HardenedBit,
		eosCoinType | HardenedBit,
		0 | HardenedBit,
		0,
		index,
	}
}

// ParsePath parses a path such as m/44'/194'/0'/0/0.  Hardened components
// are suffixed with ' or h.  The leading m is required.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q does not start with m", ErrInvalidPath, path)
	}

	res := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		var hardened bool
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}
		i, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(i)&HardenedBit != 0 {
			return nil, fmt.Errorf("%w: bad component %q", ErrInvalidPath, part)
		}
		idx := uint32(i)
		if hardened {
			idx |= HardenedBit
		}
		res = append(res, idx)
	}
	return res, nil
}

// FormatPath is the inverse of ParsePath, writing hardened components with '.
func FormatPath(path []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, i := range path {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(i&^HardenedBit), 10))
		if i&HardenedBit != 0 {
			b.WriteString("'")
		}
	}
	return b.String()
}
