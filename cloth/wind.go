package cloth

import "github.com/go-gl/mathgl/mgl64"

// TriangleNormal returns the face normal cross(b-a, c-a) of a triangle. Its length is twice the
// triangle's area. Degenerate triangles return DefaultNormal and false.
func TriangleNormal(a, b, c mgl64.Vec3) (mgl64.Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() <= Epsilon {
		return DefaultNormal, false
	}
	return n, true
}

// WindForce returns the force wind exerts on a face with the given (non-unit) normal: the normal
// scaled by the component of the wind along it.
func WindForce(normal, wind mgl64.Vec3) mgl64.Vec3 {
	l := normal.Len()
	if l <= Epsilon {
		normal, l = DefaultNormal, 1
	}
	return normal.Mul(normal.Dot(wind) / l)
}

// ApplyWind adds the wind force of every triangle to each of its three vertices.
func ApplyWind(particles []Particle, triangles [][3]int, wind mgl64.Vec3) {
	for _, tri := range triangles {
		p1, p2, p3 := &particles[tri[0]], &particles[tri[1]], &particles[tri[2]]
		n, _ := TriangleNormal(p1.Pos, p2.Pos, p3.Pos)
		f := WindForce(n, wind)

		p1.AddForce(f)
		p2.AddForce(f)
		p3.AddForce(f)
	}
}

// ComputeNormals recomputes the shading normal of every particle as the normalised sum of the
// face normals of the triangles around it.
func ComputeNormals(particles []Particle, triangles [][3]int) {
	for i := range particles {
		particles[i].Normal = mgl64.Vec3{}
	}
	for _, tri := range triangles {
		n, _ := TriangleNormal(particles[tri[0]].Pos, particles[tri[1]].Pos, particles[tri[2]].Pos)
		for _, i := range tri {
			particles[i].Normal = particles[i].Normal.Add(n)
		}
	}
	for i := range particles {
		p := &particles[i]
		if l := p.Normal.Len(); l > Epsilon {
			p.Normal = p.Normal.Mul(1 / l)
		} else {
			p.Normal = DefaultNormal
		}
	}
}
