package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

func testSeed(b byte) []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func TestIssuerKeyFromSeed(t *testing.T) {
	seed := testSeed(0x42)
	got := IssuerKeyFromSeed(seed)
	if !strings.HasPrefix(got, "ed25519:") {
		t.Fatalf("issuer key %q lacks ed25519 prefix", got)
	}
	pub, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "ed25519:"))
	if err != nil {
		t.Fatalf("issuer key not base64: %v", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		t.Fatalf("decoded public key is %d bytes", len(pub))
	}
	if got != IssuerKeyFromSeed(seed) {
		t.Fatalf("issuer key not deterministic")
	}
}

func TestDeriveRoleSeed(t *testing.T) {
	root := testSeed(0x01)
	a, err := DeriveRoleSeed(root, "editor")
	if err != nil {
		t.Fatalf("DeriveRoleSeed failed: %v", err)
	}
	b, err := DeriveRoleSeed(root, "editor")
	if err != nil {
		t.Fatalf("DeriveRoleSeed failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("derivation not deterministic")
	}
	c, err := DeriveRoleSeed(root, "viewer")
	if err != nil {
		t.Fatalf("DeriveRoleSeed failed: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Fatalf("distinct roles derived the same seed")
	}
	if bytes.Equal(a, root) {
		t.Fatalf("derived seed equals root seed")
	}
	if len(a) != ed25519.SeedSize {
		t.Fatalf("derived seed is %d bytes", len(a))
	}
}

func TestDeriveRoleSeed_Rejects(t *testing.T) {
	if _, err := DeriveRoleSeed(testSeed(0x01)[:16], "editor"); err == nil {
		t.Fatalf("expected error for short root seed")
	}
	if _, err := DeriveRoleSeed(testSeed(0x01), ""); err == nil {
		t.Fatalf("expected error for empty role")
	}
	if _, err := DeriveRoleSeed(testSeed(0x01), "bad role"); err == nil {
		t.Fatalf("expected error for role with space")
	}
}

func TestSignEd25519SHA256_Verifies(t *testing.T) {
	priv := ed25519.NewKeyFromSeed(testSeed(0xA1))
	pub := priv.Public().(ed25519.PublicKey)
	msg := []byte("0,0,0|1,0,0")

	sigB64 := SignEd25519SHA256(msg, priv)
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		t.Fatalf("signature not base64: %v", err)
	}
	digest := sha256.Sum256(msg)
	if !ed25519.Verify(pub, digest[:], sig) {
		t.Fatalf("signature does not verify")
	}
	digest = sha256.Sum256([]byte("0,0,0"))
	if ed25519.Verify(pub, digest[:], sig) {
		t.Fatalf("signature verifies against a different message")
	}
}

func TestSignDilithium3_Verifies(t *testing.T) {
	pub, priv, err := GenerateDilithium3Keypair(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	msg := []byte("0,0,0|1,0,0")
	for _, alg := range []string{"sha256", "sha512", "sha3-256"} {
		sigB64, err := SignDilithium3(msg, alg, priv)
		if err != nil {
			t.Fatalf("%s: sign failed: %v", alg, err)
		}
		sig, err := base64.StdEncoding.DecodeString(sigB64)
		if err != nil {
			t.Fatalf("%s: signature not base64: %v", alg, err)
		}
		digest, err := DigestFor(alg, msg)
		if err != nil {
			t.Fatalf("%s: digest failed: %v", alg, err)
		}
		if !mode3.Verify(pub, digest, sig) {
			t.Fatalf("%s: signature does not verify", alg)
		}
	}
	if _, err := SignDilithium3(msg, "md5", priv); err == nil {
		t.Fatalf("expected error for unsupported hash alg")
	}
	if _, err := SignDilithium3(msg, "sha256", nil); err == nil {
		t.Fatalf("expected error for nil private key")
	}
}

func TestDigestFor_Lengths(t *testing.T) {
	msg := []byte("abc")
	cases := map[string]int{"sha256": 32, "sha512": 64, "sha3-256": 32}
	for alg, n := range cases {
		d, err := DigestFor(alg, msg)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		if len(d) != n {
			t.Fatalf("%s digest is %d bytes, want %d", alg, len(d), n)
		}
	}
	if _, err := DigestFor("blake2b", msg); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
}
