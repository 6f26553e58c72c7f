// Package keys provides the signing primitives used by shape
// attestations: digest selection, Ed25519 and Dilithium3 signing, and
// deterministic role-seed derivation for issuer subkeys.
//
// Everything here is a pure, deterministic function of its inputs; key
// storage is a caller concern.
package keys
