package lattice

import "testing"

func TestRotations_Exactly24(t *testing.T) {
	rots := Rotations()
	if len(rots) != 24 {
		t.Fatalf("expected 24 rotations, got %d", len(rots))
	}
	seen := make(map[Matrix]struct{}, len(rots))
	for _, m := range rots {
		if _, ok := seen[m]; ok {
			t.Fatalf("duplicate rotation matrix: %v", m)
		}
		seen[m] = struct{}{}
	}
}

func TestRotations_ProperOrthogonal(t *testing.T) {
	for _, m := range Rotations() {
		if d := m.Det(); d != 1 {
			t.Fatalf("rotation %v has determinant %d, want 1", m, d)
		}
		if !m.IsOrthogonal() {
			t.Fatalf("rotation %v is not orthogonal", m)
		}
		for i := 0; i < 3; i++ {
			rowNonzero, colNonzero := 0, 0
			for j := 0; j < 3; j++ {
				switch m[i][j] {
				case -1, 0, 1:
				default:
					t.Fatalf("rotation %v has entry %d outside {-1,0,1}", m, m[i][j])
				}
				if m[i][j] != 0 {
					rowNonzero++
				}
				if m[j][i] != 0 {
					colNonzero++
				}
			}
			if rowNonzero != 1 || colNonzero != 1 {
				t.Fatalf("rotation %v is not a signed permutation matrix", m)
			}
		}
	}
}

func TestRotations_ClosedUnderComposition(t *testing.T) {
	rots := Rotations()
	members := make(map[Matrix]struct{}, len(rots))
	for _, m := range rots {
		members[m] = struct{}{}
	}
	if _, ok := members[identity]; !ok {
		t.Fatalf("identity missing from rotation group")
	}
	for _, a := range rots {
		if _, ok := members[a.Transpose()]; !ok {
			t.Fatalf("inverse of %v missing from group", a)
		}
		for _, b := range rots {
			if _, ok := members[a.Mul(b)]; !ok {
				t.Fatalf("group not closed: %v * %v not a member", a, b)
			}
		}
	}
}

func TestMatrix_Apply(t *testing.T) {
	p := Point{1, 2, 3}
	if got := identity.Apply(p); got != p {
		t.Fatalf("identity.Apply(%v) = %v", p, got)
	}
	// Quarter turn about Z maps (1,0,0) to (0,1,0).
	if got := quarterZ.Apply(Point{1, 0, 0}); got != (Point{0, 1, 0}) {
		t.Fatalf("quarterZ.Apply(1,0,0) = %v, want (0,1,0)", got)
	}
	if got := quarterX.Apply(Point{0, 1, 0}); got != (Point{0, 0, 1}) {
		t.Fatalf("quarterX.Apply(0,1,0) = %v, want (0,0,1)", got)
	}
	if got := quarterY.Apply(Point{0, 0, 1}); got != (Point{1, 0, 0}) {
		t.Fatalf("quarterY.Apply(0,0,1) = %v, want (1,0,0)", got)
	}
}

func TestPoint_String(t *testing.T) {
	cases := []struct {
		p    Point
		want string
	}{
		{Point{0, 0, 0}, "0,0,0"},
		{Point{1, -2, 3}, "1,-2,3"},
		{Point{-10, 0, 42}, "-10,0,42"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("String(%v) = %q, want %q", c.p, got, c.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	in := []Point{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	got := Dedupe(in)
	want := []Point{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	if len(got) != len(want) {
		t.Fatalf("Dedupe returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dedupe[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	in := []Point{{0, 0, 0}, {1, 2, 3}}
	got := Translate(in, -1, 5, 0)
	want := []Point{{-1, 5, 0}, {0, 7, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Translate[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if in[0] != (Point{0, 0, 0}) {
		t.Fatalf("Translate mutated its input")
	}
}
