package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0xab}, 32))
	svc, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !svc.Configured() {
		t.Fatal("expected service to be configured")
	}

	sealed, err := svc.EncryptString("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("EncryptString: %v", err)
	}
	if bytes.Contains(sealed, []byte("JBSWY3DPEHPK3PXP")) {
		t.Fatal("sealed value must not contain the plaintext")
	}
	plain, err := svc.DecryptString(sealed)
	if err != nil {
		t.Fatalf("DecryptString: %v", err)
	}
	if plain != "JBSWY3DPEHPK3PXP" {
		t.Fatalf("round trip mismatch: got %q", plain)
	}
}

func TestPlaintextPassthroughWithoutKey(t *testing.T) {
	svc, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if svc.Configured() {
		t.Fatal("expected unconfigured service")
	}
	sealed, err := svc.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if string(sealed) != "secret" {
		t.Fatalf("expected passthrough, got %q", sealed)
	}
}

func TestRejectsShortKey(t *testing.T) {
	if _, err := New("too-short"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestDecryptRejectsTruncatedValue(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0x01}, 32))
	svc, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := svc.Decrypt([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for truncated value")
	}
}
