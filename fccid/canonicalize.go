package fccid

import (
	"sort"
	"strings"

	"xdao.co/fccid/lattice"
)

// Separator joins the sorted per-point triples of a candidate
// serialization. Part of the canonical byte format; must not change.
const Separator = "|"

// Canonicalize is the single mandatory canonicalization choke point.
//
// It maps a shape to the one deterministic string representative of its
// rotation-and-translation equivalence class: for each of the 24 proper
// rotations the shape is rotated, re-centered so every axis minimum is
// zero, serialized as sorted "x,y,z" triples joined by Separator, and
// the lexicographically smallest of the 24 candidates is returned.
//
// Duplicate input points are collapsed first; a shape's points are a
// set, and sorting alone would let repeats split equivalence classes.
//
// The empty shape canonicalizes to the empty string.
func Canonicalize(pts []lattice.Point) string {
	if len(pts) == 0 {
		return ""
	}
	pts = lattice.Dedupe(pts)

	rotated := make([]lattice.Point, len(pts))
	triples := make([]string, len(pts))
	best := ""
	for ri, m := range lattice.Rotations() {
		for i, p := range pts {
			rotated[i] = m.Apply(p)
		}
		minX, minY, minZ := rotated[0].X, rotated[0].Y, rotated[0].Z
		for _, p := range rotated[1:] {
			if p.X < minX {
				minX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Z < minZ {
				minZ = p.Z
			}
		}
		for i, p := range rotated {
			triples[i] = lattice.Point{X: p.X - minX, Y: p.Y - minY, Z: p.Z - minZ}.String()
		}
		sort.Strings(triples)
		cand := strings.Join(triples, Separator)
		// Shapes with internal rotational symmetry yield duplicate
		// candidates; the strict minimum is unaffected.
		if ri == 0 || cand < best {
			best = cand
		}
	}
	return best
}
