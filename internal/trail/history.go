// Package trail keeps the bounded, newest-first history of particle snapshots
// that the ribbon mesh is built from.
package trail

import (
	"fmt"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"gonum.org/v1/gonum/spatial/r2"
)

// Record is one particle's position and trail colour at one tick.
type Record struct {
	Pos   r2.Vec
	Color hsla.Color
}

// History is a fixed-capacity ring of epochs. Each epoch holds exactly one
// record per particle slot, so Len is always a multiple of ParticleCount.
// Epoch 0 is the newest; flat index i belongs to epoch i/ParticleCount and
// slot i%ParticleCount.
type History struct {
	epochs [][]Record
	n      int
	head   int // ring slot of epoch 0
	count  int // materialized epochs
}

// New allocates every epoch up front; pushes never reallocate.
func New(particleCount, maxEpochs int) *History {
	if particleCount < 0 {
		particleCount = 0
	}
	if maxEpochs < 0 {
		maxEpochs = 0
	}
	epochs := make([][]Record, maxEpochs)
	backing := make([]Record, maxEpochs*particleCount)
	for i := range epochs {
		epochs[i] = backing[i*particleCount : (i+1)*particleCount : (i+1)*particleCount]
	}
	return &History{epochs: epochs, n: particleCount, head: -1}
}

// PushBatch records one tick. The batch becomes epoch 0 and, once the ring is
// full, the oldest epoch is overwritten.
func (h *History) PushBatch(records []Record) error {
	if len(records) != h.n {
		return fmt.Errorf("%w: got %d, want %d", dynamo.ErrBatchSize, len(records), h.n)
	}
	if len(h.epochs) == 0 {
		return nil
	}
	h.head = (h.head + 1) % len(h.epochs)
	copy(h.epochs[h.head], records)
	if h.count < len(h.epochs) {
		h.count++
	}
	return nil
}

func (h *History) ParticleCount() int { return h.n }
func (h *History) MaxEpochs() int     { return len(h.epochs) }
func (h *History) Capacity() int      { return len(h.epochs) * h.n }
func (h *History) Epochs() int        { return h.count }
func (h *History) Len() int           { return h.count * h.n }

// At returns the record at flat index i, newest first. It panics when i is
// out of range, like a slice index.
func (h *History) At(i int) Record {
	if i < 0 || i >= h.Len() {
		panic(fmt.Sprintf("trail: index %d out of range [0, %d)", i, h.Len()))
	}
	return h.epoch(i / h.n)[i%h.n]
}

func (h *History) epoch(e int) []Record {
	slot := (h.head - e) % len(h.epochs)
	if slot < 0 {
		slot += len(h.epochs)
	}
	return h.epochs[slot]
}

// Epoch returns a copy of epoch e, in slot order.
func (h *History) Epoch(e int) []Record {
	if e < 0 || e >= h.count {
		return nil
	}
	out := make([]Record, h.n)
	copy(out, h.epoch(e))
	return out
}

// Records flattens the history newest-first.
func (h *History) Records() []Record {
	out := make([]Record, 0, h.Len())
	for e := 0; e < h.count; e++ {
		out = append(out, h.epoch(e)...)
	}
	return out
}

// Reset forgets every epoch but keeps the allocation.
func (h *History) Reset() {
	h.head = -1
	h.count = 0
}
