// Package cidutil derives IPFS-compatible multiformat CIDs.
//
// The canonical shape identifier is the bare sha256-prefixed string in
// package fccid; these helpers exist for collaborators that store
// canonical shape bytes in a multiformat-addressed CAS.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1Raw returns a CIDv1 string over data using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1Raw(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256
		// and -1 length this is unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDv1RawCID returns the parsed cid.Cid form of CIDv1Raw.
func CIDv1RawCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
