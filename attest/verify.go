package attest

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/fccid/keys"
)

// Verify checks that doc is a canonical, correctly signed shape
// attestation and returns its parsed record.
//
// The issuer key algorithm must match Signature-Alg, and the signature
// must verify over the digest of the signed scope (the document minus
// its Signature line). Primitive failures propagate unchanged and are
// never retried.
func Verify(doc []byte) (*Record, error) {
	rec, err := Parse(doc)
	if err != nil {
		return nil, err
	}

	issuerAlg, issuerB64, ok := strings.Cut(rec.IssuerKey, ":")
	if !ok {
		return nil, errors.New("invalid Issuer-Key encoding")
	}
	if issuerAlg != rec.SignatureAlg {
		return nil, errors.New("Issuer-Key alg does not match Signature-Alg")
	}
	pub, err := base64.StdEncoding.DecodeString(issuerB64)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer key base64: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(rec.Signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature base64: %w", err)
	}

	unsigned := *rec
	unsigned.Signature = ""
	scope, err := Render(unsigned)
	if err != nil {
		return nil, err
	}
	digest, err := keys.DigestFor(rec.HashAlg, scope)
	if err != nil {
		return nil, err
	}

	switch rec.SignatureAlg {
	case "ed25519":
		if len(pub) != ed25519.PublicKeySize {
			return nil, errors.New("invalid ed25519 public key length")
		}
		if len(sig) != ed25519.SignatureSize {
			return nil, errors.New("invalid ed25519 signature length")
		}
		if !ed25519.Verify(ed25519.PublicKey(pub), digest, sig) {
			return nil, errors.New("signature invalid")
		}
	case "dilithium3":
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return nil, fmt.Errorf("invalid dilithium3 public key: %w", err)
		}
		if len(sig) != mode3.SignatureSize {
			return nil, errors.New("invalid dilithium3 signature length")
		}
		if !mode3.Verify(&pk, digest, sig) {
			return nil, errors.New("signature invalid")
		}
	default:
		return nil, fmt.Errorf("unsupported Signature-Alg %q", rec.SignatureAlg)
	}
	return rec, nil
}
