// Package attest renders and verifies canonical shape attestations: a
// small fixed-order document binding a shape CID to an issuer key with
// an Ed25519 or Dilithium3 signature.
//
// Attestation bytes are canonical by construction: LF line endings, a
// fixed section and key order, and a trailing newline. The signature
// covers every byte of the document except the Signature line, so the
// signed scope is recoverable from the document itself.
package attest

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"xdao.co/fccid/fccid"
	"xdao.co/fccid/keys"
)

const (
	Preamble  = "-----BEGIN FCC SHAPE ATTESTATION-----"
	Postamble = "-----END FCC SHAPE ATTESTATION-----"
)

// Record is the parsed form of a shape attestation.
type Record struct {
	ShapeCID    string
	Description string

	HashAlg      string
	IssuerKey    string
	SignatureAlg string
	Signature    string
}

// Render produces canonical attestation bytes for rec. The Signature
// field may be empty, in which case the output is the signed scope.
func Render(rec Record) ([]byte, error) {
	if !fccid.IsValidCID(rec.ShapeCID) {
		return nil, fmt.Errorf("invalid shape CID %q", rec.ShapeCID)
	}
	if strings.ContainsAny(rec.Description, "\n\r") {
		return nil, errors.New("description must be a single line")
	}
	if rec.HashAlg == "" || rec.IssuerKey == "" || rec.SignatureAlg == "" {
		return nil, errors.New("missing crypto fields")
	}

	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\nSHAPE\n")
	sb.WriteString("Cid: " + rec.ShapeCID + "\n")
	if rec.Description != "" {
		sb.WriteString("Description: " + rec.Description + "\n")
	}
	sb.WriteString("CRYPTO\n")
	sb.WriteString("Hash-Alg: " + rec.HashAlg + "\n")
	sb.WriteString("Issuer-Key: " + rec.IssuerKey + "\n")
	if rec.Signature != "" {
		sb.WriteString("Signature: " + rec.Signature + "\n")
	}
	sb.WriteString("Signature-Alg: " + rec.SignatureAlg + "\n")
	sb.WriteString(Postamble)
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// SignEd25519 returns a signed canonical attestation for shapeCID.
// The signature is ed25519 over sha256 of the signed scope.
func SignEd25519(shapeCID, description string, privateKey ed25519.PrivateKey) ([]byte, error) {
	pub := privateKey.Public().(ed25519.PublicKey)
	rec := Record{
		ShapeCID:     shapeCID,
		Description:  description,
		HashAlg:      "sha256",
		IssuerKey:    "ed25519:" + base64.StdEncoding.EncodeToString(pub),
		SignatureAlg: "ed25519",
	}
	scope, err := Render(rec)
	if err != nil {
		return nil, err
	}
	rec.Signature = keys.SignEd25519SHA256(scope, privateKey)
	return Render(rec)
}

// SignDilithium3 returns a signed canonical attestation for shapeCID.
// hashAlg must be one of: sha256, sha512, sha3-256.
func SignDilithium3(shapeCID, description, hashAlg string, publicKey *mode3.PublicKey, privateKey *mode3.PrivateKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("missing public key")
	}
	pub, err := publicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	rec := Record{
		ShapeCID:     shapeCID,
		Description:  description,
		HashAlg:      hashAlg,
		IssuerKey:    "dilithium3:" + base64.StdEncoding.EncodeToString(pub),
		SignatureAlg: "dilithium3",
	}
	scope, err := Render(rec)
	if err != nil {
		return nil, err
	}
	sig, err := keys.SignDilithium3(scope, hashAlg, privateKey)
	if err != nil {
		return nil, err
	}
	rec.Signature = sig
	return Render(rec)
}

// Parse reads canonical attestation bytes into a Record. Non-canonical
// input is rejected; parsing succeeds only on bytes Render would emit.
func Parse(doc []byte) (*Record, error) {
	s := string(doc)
	if strings.Contains(s, "\r") {
		return nil, errors.New("CR line endings not allowed")
	}
	if !strings.HasSuffix(s, Postamble+"\n") {
		return nil, errors.New("missing attestation postamble")
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) < 7 || lines[0] != Preamble {
		return nil, errors.New("missing attestation preamble")
	}
	if lines[1] != "SHAPE" {
		return nil, errors.New("missing SHAPE section")
	}

	rec := &Record{}
	inCrypto := false
	for _, line := range lines[2 : len(lines)-1] {
		if line == "CRYPTO" {
			inCrypto = true
			continue
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok || val == "" {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		switch {
		case !inCrypto && key == "Cid":
			rec.ShapeCID = val
		case !inCrypto && key == "Description":
			rec.Description = val
		case inCrypto && key == "Hash-Alg":
			rec.HashAlg = val
		case inCrypto && key == "Issuer-Key":
			rec.IssuerKey = val
		case inCrypto && key == "Signature":
			rec.Signature = val
		case inCrypto && key == "Signature-Alg":
			rec.SignatureAlg = val
		default:
			return nil, fmt.Errorf("unexpected key %q", key)
		}
	}
	if !inCrypto {
		return nil, errors.New("missing CRYPTO section")
	}
	if rec.Signature == "" {
		return nil, errors.New("missing Signature")
	}

	// Re-render and compare to reject any non-canonical byte form.
	canonical, err := Render(*rec)
	if err != nil {
		return nil, err
	}
	if string(canonical) != s {
		return nil, errors.New("attestation bytes are not canonical")
	}
	return rec, nil
}
