package common

import (
	"encoding/hex"
	"testing"
)

func TestMakeRandHexString_LengthAndCharset(t *testing.T) {
	t.Parallel()

	s, err := MakeRandHexString(32)
	if err != nil {
		t.Fatalf("MakeRandHexString error: %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("unexpected length: got %d want 64", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("not a hex string: %q", s)
	}
}

func TestMakeRandHexString_Unique(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		s, err := MakeRandHexString(16)
		if err != nil {
			t.Fatalf("MakeRandHexString error: %v", err)
		}
		if _, ok := seen[s]; ok {
			t.Fatalf("duplicate random string: %q", s)
		}
		seen[s] = struct{}{}
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	t.Parallel()

	buf := []byte("s3cret-password")
	WipeByteArray(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %x", i, b)
		}
	}
}
