// Package fccid derives stable content identifiers for shapes on the
// face-centered-cubic lattice.
//
// Two shapes that are congruent under any of the lattice's 24 proper
// rotations and any integer translation produce the identical CID;
// non-congruent shapes produce different CIDs with the collision
// resistance of SHA-256. Mirror-image (reflection) congruence is
// intentionally not recognized.
//
// All CID derivation MUST pass through Canonicalize: the CID is the
// SHA-256 of the canonical form, so any caller that hashes a
// non-canonical serialization produces an identifier outside the
// equivalence class.
package fccid
