package mesh

import (
	"github.com/philipparndt/goslice/pkg/geometry"
)

// Cube builds the synthetic test cube: side length size, centered at
// the origin, 12 triangles. It is the demo-mode mesh used when no real
// model is supplied.
func Cube(size float64) *Mesh {
	h := size / 2
	p1 := geometry.NewVector3(-h, -h, -h)
	p2 := geometry.NewVector3(h, -h, -h)
	p3 := geometry.NewVector3(h, h, -h)
	p4 := geometry.NewVector3(-h, h, -h)
	p5 := geometry.NewVector3(-h, -h, h)
	p6 := geometry.NewVector3(h, -h, h)
	p7 := geometry.NewVector3(h, h, h)
	p8 := geometry.NewVector3(-h, h, h)

	faces := [][3]geometry.Vector3{
		{p1, p2, p3}, {p1, p3, p4}, // bottom
		{p5, p6, p7}, {p5, p7, p8}, // top
		{p1, p2, p6}, {p1, p6, p5}, // front
		{p3, p4, p8}, {p3, p8, p7}, // back
		{p2, p3, p7}, {p2, p7, p6}, // right
		{p1, p4, p8}, {p1, p8, p5}, // left
	}

	m := New("cube")
	for _, f := range faces {
		tri := geometry.Triangle{V1: f[0], V2: f[1], V3: f[2]}
		tri.Normal = tri.CalculateNormal()
		m.AddTriangle(tri)
	}
	return m
}
