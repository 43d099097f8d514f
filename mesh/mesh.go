package mesh

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/drape/cloth"
	"github.com/oomph-ac/drape/omath"
)

// VerticesPerCell is the number of vertices emitted for each grid cell: two triangles that do not
// share vertices.
const VerticesPerCell = 6

var (
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Green  = color.RGBA{G: 0xff, A: 0xff}
	Yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	Blue   = color.RGBA{B: 0xff, A: 0xff}
)

// KindColour returns the debug colour used to draw constraints of the given kind.
func KindColour(k cloth.Kind) color.RGBA {
	switch k {
	case cloth.KindStructural:
		return Green
	case cloth.KindShear:
		return Yellow
	case cloth.KindBending:
		return Blue
	}
	return White
}

// Vertex is a single render vertex.
type Vertex struct {
	Position mgl32.Vec3
	Colour   color.RGBA
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Line is a constraint drawn as a debug line.
type Line struct {
	A, B   mgl32.Vec3
	Colour color.RGBA
	Kind   cloth.Kind
}

// Mesh is a render snapshot of a cloth.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Lines    []Line
	// Points holds every particle position, in particle index order.
	Points []mgl32.Vec3
	Bounds cube.BBox
}

// Builder builds meshes from cloths, reusing the same buffers every time. The Mesh returned by
// Build is only valid until the next call to Build.
type Builder struct {
	m Mesh
}

// Build snapshots the current state of c.
func (b *Builder) Build(c *cloth.Cloth) *Mesh {
	m := &b.m
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Lines = m.Lines[:0]
	m.Points = m.Points[:0]

	lo := mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	hi := mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for _, p := range c.Particles() {
		pos := omath.Vec64To32(p.Position)
		m.Points = append(m.Points, pos)
		for i := range 3 {
			lo[i] = math32.Min(lo[i], pos[i])
			hi[i] = math32.Max(hi[i], pos[i])
		}
	}
	m.Bounds = cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])

	cols, rows := c.Columns(), c.Rows()
	for row := range rows - 1 {
		for col := range cols - 1 {
			self := b.vertex(c, col, row)
			east := b.vertex(c, col+1, row)
			south := b.vertex(c, col, row+1)
			southEast := b.vertex(c, col+1, row+1)

			base := uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, south, southEast, self, east, east, self)
			for i := range uint32(VerticesPerCell) {
				m.Indices = append(m.Indices, base+i)
			}
		}
	}

	for _, v := range c.Constraints() {
		m.Lines = append(m.Lines, Line{
			A:      omath.Vec64To32(v.PosA),
			B:      omath.Vec64To32(v.PosB),
			Colour: KindColour(v.Kind),
			Kind:   v.Kind,
		})
	}
	return m
}

func (b *Builder) vertex(c *cloth.Cloth, col, row int) Vertex {
	p := c.Particle(c.Index(col, row))
	return Vertex{
		Position: b.m.Points[p.Index],
		Colour:   White,
		Normal:   omath.Normalize32Or(omath.Vec64To32(p.Normal), mgl32.Vec3{0, 0, 1}, 1e-6),
		UV: mgl32.Vec2{
			float32(col) / float32(c.Columns()-1),
			float32(row) / float32(c.Rows()-1),
		},
	}
}
