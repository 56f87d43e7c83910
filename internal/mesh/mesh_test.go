package mesh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/mesh"
	"github.com/san-kum/ribbons/internal/trail"
	"gonum.org/v1/gonum/spatial/r2"
)

// fill pushes epochs ticks into a history; slot k sits at (k, tick) so
// epoch-pairs form a regular grid.
func fill(n, maxEpochs, ticks int) *trail.History {
	h := trail.New(n, maxEpochs)
	for tick := range ticks {
		b := make([]trail.Record, n)
		for k := range b {
			b[k] = trail.Record{
				Pos:   r2.Vec{X: float64(k), Y: float64(tick)},
				Color: hsla.Color{H: float64(k) / 10, S: 0.5, L: 0.5, A: 0.5},
			}
		}
		Expect(h.PushBatch(b)).To(Succeed())
	}
	return h
}

// paramCross is the signed area of a triangle in (epoch, slot) space.
func paramCross(n int, a, b, c uint32) int {
	ae, as := int(a)/n, int(a)%n
	be, bs := int(b)/n, int(b)%n
	ce, cs := int(c)/n, int(c)%n
	return (be-ae)*(cs-as) - (bs-as)*(ce-ae)
}

var _ = Describe("Build", func() {
	It("returns an empty mesh for an empty history", func() {
		m := mesh.Build(trail.New(4, 10), 4)
		Expect(m.Vertices).To(BeEmpty())
		Expect(m.Indices).To(BeEmpty())
		Expect(m.Empty()).To(BeTrue())
		_, _, ok := m.Bounds()
		Expect(ok).To(BeFalse())
	})

	It("emits (n-1)*(epochs-1)*6 indices", func() {
		m := mesh.Build(fill(3, 10, 2), 3)
		Expect(m.Vertices).To(HaveLen(6))
		Expect(m.Indices).To(HaveLen(12))
		Expect(m.Indices).To(HaveLen(mesh.IndexCount(3, 2)))
	})

	It("emits the two triangles of each quad in order", func() {
		m := mesh.Build(fill(3, 10, 2), 3)
		Expect(m.Indices).To(Equal([]uint32{
			0, 3, 4, 0, 4, 1,
			1, 4, 5, 1, 5, 2,
		}))
	})

	It("walks from the oldest epoch pair toward the newest", func() {
		m := mesh.Build(fill(2, 10, 3), 2)
		Expect(m.Indices).To(Equal([]uint32{
			2, 4, 5, 2, 5, 3,
			0, 2, 3, 0, 3, 1,
		}))
	})

	It("never joins the last slot back to slot 0", func() {
		n := 4
		m := mesh.Build(fill(n, 10, 5), n)
		for t := 0; t < m.Triangles(); t++ {
			tri := m.Indices[t*3 : t*3+3]
			slots := map[int]bool{}
			for _, i := range tri {
				slots[int(i)%n] = true
			}
			Expect(slots[0] && slots[n-1]).To(BeFalse())
		}
	})

	It("keeps the winding consistent", func() {
		n := 5
		m := mesh.Build(fill(n, 8, 8), n)
		Expect(m.Triangles()).To(Equal(4 * 7 * 2))
		for t := 0; t < m.Triangles(); t++ {
			tri := m.Indices[t*3 : t*3+3]
			Expect(paramCross(n, tri[0], tri[1], tri[2])).To(Equal(1))
		}
	})

	It("uses epoch age as depth and carries record colours", func() {
		h := fill(3, 4, 6)
		m := mesh.Build(h, 3)
		Expect(m.Vertices).To(HaveLen(h.Len()))
		for i, v := range m.Vertices {
			r := h.At(i)
			Expect(v.Pos.X).To(Equal(r.Pos.X))
			Expect(v.Pos.Y).To(Equal(r.Pos.Y))
			Expect(v.Pos.Z).To(Equal(float64(i / 3)))
			Expect(v.Color).To(Equal(r.Color))
		}
		lo, hi, ok := m.Bounds()
		Expect(ok).To(BeTrue())
		Expect(lo.Z).To(Equal(0.0))
		Expect(hi.Z).To(Equal(3.0))
	})

	It("produces no triangles for a single particle or single epoch", func() {
		Expect(mesh.Build(fill(1, 5, 5), 1).Indices).To(BeEmpty())
		one := mesh.Build(fill(4, 5, 1), 4)
		Expect(one.Vertices).To(HaveLen(4))
		Expect(one.Indices).To(BeEmpty())
	})

	It("reuses builder buffers between ticks", func() {
		var b mesh.Builder
		first := b.Build(fill(3, 10, 4), 3)
		Expect(first.Indices).To(HaveLen(mesh.IndexCount(3, 4)))

		second := b.Build(fill(3, 10, 2), 3)
		Expect(second.Vertices).To(HaveLen(6))
		Expect(second.Indices).To(HaveLen(12))
	})

	It("exposes triangles by vertex", func() {
		m := mesh.Build(fill(3, 10, 2), 3)
		a, b, c := m.Triangle(0)
		Expect(a).To(Equal(m.Vertices[0]))
		Expect(b).To(Equal(m.Vertices[3]))
		Expect(c).To(Equal(m.Vertices[4]))
	})
})
