package lattice

import (
	"sort"
	"sync"
)

// Matrix is a 3x3 integer matrix in row-major order. The rotation group
// uses only signed permutation matrices (entries in {-1, 0, 1}, one
// nonzero entry per row and column), so all arithmetic is exact.
type Matrix [3][3]int

// Apply returns m·p, the exact integer matrix-vector product.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// Mul returns the matrix product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Transpose returns the transpose of m. For orthogonal integer matrices
// the transpose is the inverse.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det returns the determinant of m. Proper rotations have Det() == 1.
func (m Matrix) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsOrthogonal reports whether m·mᵀ is the identity.
func (m Matrix) IsOrthogonal() bool {
	return m.Mul(m.Transpose()) == identity
}

var identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Quarter turns about the X, Y, and Z axes. These three generate the
// full 24-element proper-rotation group of the cube.
var (
	quarterX = Matrix{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	quarterY = Matrix{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	quarterZ = Matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
)

var (
	rotOnce  sync.Once
	rotGroup []Matrix
)

// Rotations returns the 24 proper rotations of the cube/FCC lattice.
// The slice is built once, shared, and must not be modified by callers.
// Iteration order is stable across processes: matrices are sorted by
// their row-major entries.
func Rotations() []Matrix {
	rotOnce.Do(func() { rotGroup = generateRotations() })
	return rotGroup
}

func generateRotations() []Matrix {
	gens := []Matrix{quarterX, quarterY, quarterZ}
	seen := map[Matrix]struct{}{identity: {}}
	frontier := []Matrix{identity}
	for len(frontier) > 0 {
		var next []Matrix
		for _, m := range frontier {
			for _, g := range gens {
				c := g.Mul(m)
				if _, ok := seen[c]; ok {
					continue
				}
				seen[c] = struct{}{}
				next = append(next, c)
			}
		}
		frontier = next
	}

	out := make([]Matrix, 0, len(seen))
	for m := range seen {
		// Generators are proper rotations, so every composition has
		// determinant +1 already; the filter guards the generator table
		// against transcription mistakes.
		if m.Det() != 1 {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return matrixLess(out[i], out[j]) })
	return out
}

func matrixLess(a, b Matrix) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a[i][j] != b[i][j] {
				return a[i][j] < b[i][j]
			}
		}
	}
	return false
}
