package fccid

import (
	"fmt"
	"strconv"
	"strings"

	"xdao.co/fccid/lattice"
)

// ParseShape parses the text interchange form of a shape: one "x,y,z"
// triple per line, with blank lines and '#' comment lines ignored.
// Coordinates must be decimal signed integers; anything else (floats,
// non-numeric tokens, wrong arity) violates the input contract and is
// rejected with a KindInput error before canonicalization can run.
//
// Duplicate points are permitted here; Canonicalize collapses them.
func ParseShape(input []byte) ([]lattice.Point, error) {
	var pts []lattice.Point
	for ln, line := range strings.Split(string(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, wrapError(KindInput, RuleID(err), fmt.Sprintf("line %d: %v", ln+1, err), err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// ParsePoint parses a single "x,y,z" decimal integer triple.
func ParsePoint(s string) (lattice.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return lattice.Point{}, newError(KindInput, "FCCID-INPUT-001",
			fmt.Sprintf("expected 3 comma-separated coordinates, got %d", len(parts)))
	}
	var coords [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return lattice.Point{}, wrapError(KindInput, "FCCID-INPUT-002",
				fmt.Sprintf("coordinate %q is not a signed integer", part), err)
		}
		coords[i] = v
	}
	return lattice.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
