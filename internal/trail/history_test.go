package trail_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/trail"
	"gonum.org/v1/gonum/spatial/r2"
)

// batch tags every record with its tick in X and its slot in Y.
func batch(tick, n int) []trail.Record {
	out := make([]trail.Record, n)
	for i := range out {
		out[i] = trail.Record{
			Pos:   r2.Vec{X: float64(tick), Y: float64(i)},
			Color: hsla.Color{H: 0.1, S: 0.5, L: 0.5, A: 0.5},
		}
	}
	return out
}

var _ = Describe("History", func() {
	var h *trail.History

	BeforeEach(func() {
		h = trail.New(3, 4)
	})

	It("starts empty", func() {
		Expect(h.Len()).To(Equal(0))
		Expect(h.Epochs()).To(Equal(0))
		Expect(h.Capacity()).To(Equal(12))
		Expect(h.Records()).To(BeEmpty())
	})

	It("rejects batches of the wrong size", func() {
		err := h.PushBatch(batch(0, 2))
		Expect(errors.Is(err, dynamo.ErrBatchSize)).To(BeTrue())
		Expect(h.Len()).To(Equal(0))
	})

	It("puts the newest batch at epoch 0", func() {
		Expect(h.PushBatch(batch(1, 3))).To(Succeed())
		Expect(h.PushBatch(batch(2, 3))).To(Succeed())

		Expect(h.Len()).To(Equal(6))
		Expect(h.At(0).Pos).To(Equal(r2.Vec{X: 2, Y: 0}))
		Expect(h.At(2).Pos).To(Equal(r2.Vec{X: 2, Y: 2}))
		Expect(h.At(3).Pos).To(Equal(r2.Vec{X: 1, Y: 0}))
		Expect(h.At(5).Pos).To(Equal(r2.Vec{X: 1, Y: 2}))
	})

	It("keeps slot order stable across epochs", func() {
		for tick := range 3 {
			Expect(h.PushBatch(batch(tick, 3))).To(Succeed())
		}
		for i := range h.Len() {
			Expect(h.At(i).Pos.Y).To(Equal(float64(i % 3)))
		}
	})

	It("evicts the oldest whole epochs past capacity", func() {
		for tick := range 10 {
			Expect(h.PushBatch(batch(tick, 3))).To(Succeed())
			Expect(h.Len() % 3).To(Equal(0))
			Expect(h.Len()).To(BeNumerically("<=", h.Capacity()))
		}

		Expect(h.Epochs()).To(Equal(4))
		Expect(h.At(0).Pos.X).To(Equal(9.0))
		Expect(h.At(h.Len() - 1).Pos.X).To(Equal(6.0))
	})

	It("copies pushed batches", func() {
		b := batch(5, 3)
		Expect(h.PushBatch(b)).To(Succeed())
		b[0].Pos = r2.Vec{X: -1, Y: -1}

		Expect(h.At(0).Pos).To(Equal(r2.Vec{X: 5, Y: 0}))
	})

	It("flattens newest first", func() {
		for tick := range 6 {
			Expect(h.PushBatch(batch(tick, 3))).To(Succeed())
		}
		recs := h.Records()
		Expect(recs).To(HaveLen(12))
		Expect(recs[0].Pos.X).To(Equal(5.0))
		Expect(recs[11].Pos.X).To(Equal(2.0))
		Expect(h.Epoch(1)).To(Equal(batch(4, 3)))
		Expect(h.Epoch(4)).To(BeNil())
	})

	It("panics on out of range indices", func() {
		Expect(h.PushBatch(batch(0, 3))).To(Succeed())
		Expect(func() { h.At(3) }).To(Panic())
		Expect(func() { h.At(-1) }).To(Panic())
	})

	It("resets without losing capacity", func() {
		Expect(h.PushBatch(batch(0, 3))).To(Succeed())
		h.Reset()
		Expect(h.Len()).To(Equal(0))
		Expect(h.PushBatch(batch(7, 3))).To(Succeed())
		Expect(h.At(0).Pos.X).To(Equal(7.0))
		Expect(h.Epochs()).To(Equal(1))
	})

	Context("with zero epochs", func() {
		It("keeps nothing", func() {
			h = trail.New(3, 0)
			Expect(h.PushBatch(batch(0, 3))).To(Succeed())
			Expect(h.Len()).To(Equal(0))
		})
	})
})
