package fccid

import (
	"crypto/sha256"
	"encoding/hex"

	"xdao.co/fccid/cidutil"
	"xdao.co/fccid/lattice"
)

const (
	// Prefix identifies the hash primitive in a CID string.
	Prefix = "sha256:"
	// DigestLen is the hex-rendered digest length following Prefix.
	DigestLen = 64
	// ShortLen is the digest-character length of a short CID.
	ShortLen = 8
)

// CID returns the stable content identifier for a shape:
// "sha256:" followed by the 64 lowercase hex characters of the SHA-256
// digest of its canonical form. A pure function of the shape's
// rotation-and-translation equivalence class.
//
// The empty shape hashes the empty byte sequence, so its CID is the
// well-known sha256("") digest, not a special case.
func CID(pts []lattice.Point) string {
	sum := sha256.Sum256([]byte(Canonicalize(pts)))
	return Prefix + hex.EncodeToString(sum[:])
}

// ShortCID returns the 8-character display abbreviation of a shape's
// CID: digest characters 0-7. It is always derived from the full CID,
// never computed independently, so the two can never disagree. Not
// collision-free; display use only.
func ShortCID(pts []lattice.Point) string {
	return CID(pts)[len(Prefix) : len(Prefix)+ShortLen]
}

// CIDv1 returns an IPFS-compatible CIDv1 (raw + sha2-256) over the
// canonical form, for collaborators that address shapes through a
// multiformat CAS rather than by the sha256-prefixed string.
func CIDv1(pts []lattice.Point) string {
	return cidutil.CIDv1Raw([]byte(Canonicalize(pts)))
}
