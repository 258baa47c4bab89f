package eosecc

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/davecgh/go-spew/spew"
)

const testLegacyPub = "FU6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"

// TestParsePrivateKey ensures private keys parse from both textual forms and
// write themselves back out in the form they were read from.
func TestParsePrivateKey(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		format     KeyFormat
		wantString string
		wantPub    string
	}{{
		name:       "wif",
		in:         "5J9b3xMkbvcT6gYv2EpQ8FD4ZBjgypuNKwE1jxkd7Wd1DYzhk88",
		format:     FormatLegacy,
		wantString: "5J9b3xMkbvcT6gYv2EpQ8FD4ZBjgypuNKwE1jxkd7Wd1DYzhk88",
		wantPub:    "FU8Qi58kbERkTJC7A4gabxYU4SbrAxStJHacoke4sf6AvJyEDZXj",
	}, {
		name:       "wif signing key",
		in:         testWIF,
		format:     FormatLegacy,
		wantString: testWIF,
		wantPub:    testLegacyPub,
	}, {
		name:       "compressed wif",
		in:         testCompressWIF,
		format:     FormatLegacy,
		wantString: testWIF,
		wantPub:    testLegacyPub,
	}, {
		name:       "modern",
		in:         testPVT,
		format:     FormatModern,
		wantString: testPVT,
		wantPub:    testPUB,
	}}

	for _, test := range tests {
		priv, err := ParsePrivateKey(test.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if priv.Format() != test.format {
			t.Errorf("%s: mismatched format -- got %v, want %v", test.name,
				priv.Format(), test.format)
		}
		if got := priv.String(); got != test.wantString {
			t.Errorf("%s: mismatched string -- got %s, want %s", test.name,
				got, test.wantString)
		}
		pub, err := priv.PublicKey()
		if err != nil {
			t.Errorf("%s: unexpected public key error: %v", test.name, err)
			continue
		}
		if got := pub.String(); got != test.wantPub {
			t.Errorf("%s: mismatched public key -- got %s, want %s", test.name,
				got, test.wantPub)
		}

		// Round trip through the parsed string.
		again, err := ParsePrivateKey(priv.String())
		if err != nil {
			t.Errorf("%s: unexpected round trip error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(again.Bytes(), priv.Bytes()) {
			t.Errorf("%s: mismatched round trip scalar -- got %s, want %s",
				test.name, spew.Sdump(again.Bytes()), spew.Sdump(priv.Bytes()))
		}
	}
}

// TestPrivateKeyForms ensures a key converts between WIF and PVT_K1_ without
// changing its scalar.
func TestPrivateKeyForms(t *testing.T) {
	priv, err := ParsePrivateKey(testWIF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := priv.ModernString(); got != testPVT {
		t.Errorf("mismatched modern string -- got %s, want %s", got, testPVT)
	}
	if !bytes.Equal(priv.Bytes(), hexToBytes(testScalarHex)) {
		t.Errorf("mismatched scalar -- got %x, want %s", priv.Bytes(), testScalarHex)
	}

	modern, err := ParsePrivateKey(testPVT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := modern.WIF(); got != testWIF {
		t.Errorf("mismatched wif -- got %s, want %s", got, testWIF)
	}
}

// TestParsePrivateKeyErrors ensures invalid private keys are rejected with
// ErrInvalidKey.
func TestParsePrivateKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad checksum", "5KYZdUEo39z3FPrtuX2QbbwGnNP5zTd7yyr2SC1j299sBCnWjsm"},
		{"version mismatch", "5MMh2d3yUkmcqMVSs5f7Cm3BU7vSbaHKrFuXENLsXYPVebj6umC"},
		{"compression flag not 1", "L4Gh6zmE7MGoBuRnbyAJajH8xGME9BdL2yAgsYrcXKnaAP1brSww"},
		{"short wif scalar", "yjaj18vA8x9KFFfjUsmv7fqPCrL26zRV1R7Lm6tKnAzdnwsJJ"},
		{"unsupported key type", "PVT_K2_2bfGi9rYsXQSXXTvJbDAPhHLQUojjaNLomdm3cEJ1XTzLrng1K"},
		{"short modern scalar", "PVT_K1_MzcH7zSoLaQTQDSfsoFpHNptzWAgZ2fUMzGR9tVmykJkNzkV"},
		{"zero scalar", "PVT_K1_111111111111111111111111111111112omJse"},
		{"scalar equal to order", "PVT_K1_2wkBET2rRgE8pahuaczxKbhPFFp7gb6Kvp7zHyaJMz1jGGSEJ4"},
		{"public key", testPUB},
		{"extra separator", "PVT_K1_abc_def"},
		{"empty", ""},
	}

	for _, test := range tests {
		priv, err := ParsePrivateKey(test.in)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				ErrInvalidKey)
			continue
		}
		if priv != nil {
			t.Errorf("%s: returned a key along with an error", test.name)
		}
		if IsValidPrivateKey(test.in) {
			t.Errorf("%s: reported as valid", test.name)
		}
	}
}

// TestPrivateKeyFromSeed ensures seeded keys are deterministic.
func TestPrivateKeyFromSeed(t *testing.T) {
	priv, err := PrivateKeyFromSeed("seed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const wantWIF = "5J1by7KRQujRdXrurEsvEr2zQGcdPaMJRjewER6XsAR2eCcpt3D"
	if got := priv.String(); got != wantWIF {
		t.Errorf("mismatched key -- got %s, want %s", got, wantWIF)
	}
	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const wantPub = "FU6Qz3wuRjyN6gaU3P3XRxpnEZnM4oPxortemaWDwFRvsv2FxgND"
	if got := pub.String(); got != wantPub {
		t.Errorf("mismatched public key -- got %s, want %s", got, wantPub)
	}

	again, err := PrivateKeyFromSeed("seed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.String() != priv.String() {
		t.Errorf("seeded key is not deterministic")
	}
	other, err := PrivateKeyFromSeed("seed2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.String() == priv.String() {
		t.Errorf("different seeds produced the same key")
	}
}

// TestGeneratePrivateKey ensures generated keys are usable and that a failing
// entropy source is reported rather than replaced.
func TestGeneratePrivateKey(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsValidPrivateKey(priv.String()) {
		t.Errorf("generated key does not parse: %s", priv)
	}
	other, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(priv.Bytes(), other.Bytes()) {
		t.Errorf("two generated keys are equal")
	}

	// Deterministic reader: the key is SHA256 of the 12 bytes read.
	fixed, err := GeneratePrivateKeyFrom(bytes.NewReader(make([]byte, 12)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seeded, err := PrivateKeyFromSeed(string(make([]byte, 12)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(fixed.Bytes(), seeded.Bytes()) {
		t.Errorf("mismatched entropy hashing -- got %x, want %x",
			fixed.Bytes(), seeded.Bytes())
	}

	_, err = GeneratePrivateKeyFrom(iotest.ErrReader(errors.New("no entropy")))
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("mismatched err -- got %v, want %v", err, ErrEntropyUnavailable)
	}
	_, err = GeneratePrivateKeyFrom(bytes.NewReader(make([]byte, 8)))
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("short read: mismatched err -- got %v, want %v", err,
			ErrEntropyUnavailable)
	}
}

// TestPrivateKeyFromBytes ensures raw scalars are length and range checked.
func TestPrivateKeyFromBytes(t *testing.T) {
	if _, err := PrivateKeyFromBytes(hexToBytes(testScalarHex)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	tests := []struct {
		name string
		in   []byte
	}{
		{"short", make([]byte, 31)},
		{"long", make([]byte, 33)},
		{"zero", make([]byte, 32)},
		{"order", curveParams.N.Bytes()},
		{"all ones", bytes.Repeat([]byte{0xff}, 32)},
	}
	for _, test := range tests {
		if _, err := PrivateKeyFromBytes(test.in); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				ErrInvalidKey)
		}
	}
}

// TestChildKey ensures child keys are deterministic per name and keep the
// parent format.
func TestChildKey(t *testing.T) {
	parent, err := ParsePrivateKey(testPVT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	owner, err := parent.ChildKey("owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := parent.ChildKey("owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	active, err := parent.ChildKey("active")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.String() != again.String() {
		t.Errorf("child key is not deterministic")
	}
	if owner.String() == active.String() || owner.String() == parent.String() {
		t.Errorf("child keys collide")
	}
	if owner.Format() != FormatModern {
		t.Errorf("mismatched child format -- got %v, want %v", owner.Format(),
			FormatModern)
	}
}
