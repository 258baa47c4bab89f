package ecckd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []uint32
	}{
		{"m", []uint32{}},
		{"m/0", []uint32{0}},
		{"m/0'/1", []uint32{HardenedBit, 1}},
		{"m/44h/194h/0h/0/7", EOSPath(7)},
		{"m/44'/194'/0'/0/0", EOSPath(0)},
		{" m/2147483647' ", []uint32{0xffffffff}},
	}
	for _, test := range tests {
		got, err := ParsePath(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	for _, bad := range []string{"", "0/1", "m/", "m/x", "m/-1", "m/2147483648", "m/1''", "M/0"} {
		_, err := ParsePath(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "m/44'/194'/0'/0/3", FormatPath(EOSPath(3)))
	assert.Equal(t, "m", FormatPath(nil))

	path, err := ParsePath(FormatPath(EOSPath(12)))
	require.NoError(t, err)
	assert.Equal(t, EOSPath(12), path)
}
