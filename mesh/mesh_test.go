package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/drape/cloth"
)

func newCloth(t *testing.T, columns, rows int) *cloth.Cloth {
	t.Helper()
	c, err := cloth.New(columns, rows, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestBuildCounts(t *testing.T) {
	c := newCloth(t, 5, 4)
	var b Builder
	m := b.Build(c)

	if want := VerticesPerCell * 4 * 3; len(m.Vertices) != want || len(m.Indices) != want {
		t.Fatalf("vertices/indices = %d/%d, want %d", len(m.Vertices), len(m.Indices), want)
	}
	if len(m.Lines) != c.TotalConstraints() {
		t.Fatalf("lines = %d, want %d", len(m.Lines), c.TotalConstraints())
	}
	if len(m.Points) != c.ParticleCount() {
		t.Fatalf("points = %d, want %d", len(m.Points), c.ParticleCount())
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d", i, idx)
		}
	}
}

func TestBuildLineColours(t *testing.T) {
	c := newCloth(t, 4, 4)
	var b Builder
	m := b.Build(c)

	counts := map[cloth.Kind]int{}
	for _, l := range m.Lines {
		if l.Colour != KindColour(l.Kind) {
			t.Fatalf("%s line coloured %v", l.Kind, l.Colour)
		}
		counts[l.Kind]++
	}
	if counts[cloth.KindStructural] != 24 || counts[cloth.KindShear] != 18 || counts[cloth.KindBending] != 16 {
		t.Fatalf("unexpected line counts %v", counts)
	}
	if KindColour(cloth.KindStructural) != Green || KindColour(cloth.KindShear) != Yellow || KindColour(cloth.KindBending) != Blue {
		t.Fatalf("unexpected kind colours")
	}
}

func TestBuildVertexOrder(t *testing.T) {
	c := newCloth(t, 3, 3)
	var b Builder
	m := b.Build(c)

	// The first cell emits south, south-east, self, east, east, self.
	want := []int{c.Index(0, 1), c.Index(1, 1), c.Index(0, 0), c.Index(1, 0), c.Index(1, 0), c.Index(0, 0)}
	for i, idx := range want {
		if m.Vertices[i].Position != m.Points[idx] {
			t.Fatalf("vertex %d at %v, want particle %d at %v", i, m.Vertices[i].Position, idx, m.Points[idx])
		}
	}
	if m.Vertices[2].UV[0] != 0 || m.Vertices[1].UV[0] != 0.5 || m.Vertices[1].UV[1] != 0.5 {
		t.Fatalf("unexpected UVs %v %v", m.Vertices[2].UV, m.Vertices[1].UV)
	}
}

func TestBuildBoundsContainParticles(t *testing.T) {
	c := newCloth(t, 6, 6)
	c.SetWindForce(mgl64.Vec3{0.3, 0.1, 0.1})
	for range 45 {
		c.Update(1.0/60, cloth.SolverRelaxation)
	}
	var b Builder
	m := b.Build(c)

	min, max := m.Bounds.Min(), m.Bounds.Max()
	for i, p := range m.Points {
		for a := range 3 {
			if p[a] < min[a] || p[a] > max[a] {
				t.Fatalf("point %d at %v outside bounds %v-%v", i, p, min, max)
			}
		}
	}
	if max[2]-min[2] <= 0 {
		t.Fatalf("stepped cloth should no longer be flat: %v-%v", min, max)
	}
}

func TestBuilderReusesBuffers(t *testing.T) {
	c := newCloth(t, 8, 8)
	var b Builder
	first := b.Build(c)
	vertices, lines := &first.Vertices[0], &first.Lines[0]

	c.Update(1.0/60, cloth.SolverSpring)
	second := b.Build(c)
	if second != first {
		t.Fatalf("builder returned a different mesh")
	}
	if &second.Vertices[0] != vertices || &second.Lines[0] != lines {
		t.Fatalf("builder reallocated its buffers")
	}
}
