// Package mesh triangulates trail history into a ribbon.
//
// Vertices are laid out exactly like the history: vertex i is record i, with
// its epoch as a third coordinate. Indices join every adjacent pair of
// particle slots across every adjacent pair of epochs, two triangles per
// quad, all with the same winding. The strip is open: the last slot is never
// joined back to slot 0.
package mesh

import (
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/trail"
	"gonum.org/v1/gonum/spatial/r3"
)

type Vertex struct {
	Pos   r3.Vec
	Color hsla.Color
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Source is the read side of a trail history.
type Source interface {
	Len() int
	At(i int) trail.Record
}

// Builder reuses its buffers between ticks. The returned mesh is only valid
// until the next call to Build.
type Builder struct {
	mesh Mesh
}

// Build triangulates a history of particleCount-sized epochs. Len must be a
// multiple of particleCount, which trail.History guarantees.
func Build(h Source, particleCount int) *Mesh {
	var b Builder
	return b.Build(h, particleCount)
}

func (b *Builder) Build(h Source, particleCount int) *Mesh {
	m := &b.mesh
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]

	n := h.Len()
	if n == 0 || particleCount <= 0 {
		return m
	}
	epochs := n / particleCount

	for i := range n {
		r := h.At(i)
		m.Vertices = append(m.Vertices, Vertex{
			Pos:   r3.Vec{X: r.Pos.X, Y: r.Pos.Y, Z: float64(i / particleCount)},
			Color: r.Color,
		})
	}

	idx := func(epoch, slot int) uint32 {
		return uint32(epoch*particleCount + slot)
	}
	for a := 0; a+1 < particleCount; a++ {
		for past := epochs - 2; past >= 0; past-- {
			present := past + 1
			m.Indices = append(m.Indices,
				idx(past, a), idx(present, a), idx(present, a+1),
				idx(past, a), idx(present, a+1), idx(past, a+1),
			)
		}
	}
	return m
}

// IndexCount is the number of indices Build emits for the given shape.
func IndexCount(particleCount, epochs int) int {
	if particleCount < 2 || epochs < 2 {
		return 0
	}
	return (particleCount - 1) * (epochs - 1) * 6
}

func (m *Mesh) Empty() bool { return len(m.Indices) == 0 }

func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Triangle returns the vertices of triangle t.
func (m *Mesh) Triangle(t int) (a, b, c Vertex) {
	i := m.Indices[t*3 : t*3+3]
	return m.Vertices[i[0]], m.Vertices[i[1]], m.Vertices[i[2]]
}

// Bounds returns the axis-aligned extent of all vertices. ok is false for an
// empty mesh.
func (m *Mesh) Bounds() (lo, hi r3.Vec, ok bool) {
	if len(m.Vertices) == 0 {
		return lo, hi, false
	}
	lo, hi = m.Vertices[0].Pos, m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		lo = r3.Vec{X: min(lo.X, v.Pos.X), Y: min(lo.Y, v.Pos.Y), Z: min(lo.Z, v.Pos.Z)}
		hi = r3.Vec{X: max(hi.X, v.Pos.X), Y: max(hi.Y, v.Pos.Y), Z: max(hi.Z, v.Pos.Z)}
	}
	return lo, hi, true
}
