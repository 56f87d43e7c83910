package render

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/mesh"
)

func TestMultiSubmitsToAll(t *testing.T) {
	g := NewWithT(t)

	boom := errors.New("boom")
	var a, b Recorder
	s := Multi(&a, SinkFunc(func(Frame) error { return boom }), &b)

	err := s.Submit(Frame{Background: hsla.HSL(0.1, 0.2, 0.3)})
	g.Expect(errors.Is(err, boom)).To(BeTrue())
	g.Expect(a.Frames).To(Equal(1))
	g.Expect(b.Frames).To(Equal(1))
	g.Expect(b.Last.Background.H).To(BeNumerically("~", 0.1, 1e-12))
}

func TestRecorderCopiesMesh(t *testing.T) {
	g := NewWithT(t)

	m := &mesh.Mesh{Vertices: make([]mesh.Vertex, 3), Indices: []uint32{0, 1, 2}}
	var r Recorder
	g.Expect(r.Submit(Frame{Mesh: m})).To(Succeed())

	m.Indices[0] = 9
	g.Expect(r.Last.Mesh.Indices).To(Equal([]uint32{0, 1, 2}))
}

func TestFitScale(t *testing.T) {
	g := NewWithT(t)

	g.Expect(FitScale(800, 600, 1000)).To(BeNumerically("~", 300.0/1000/1.1, 1e-12))
	g.Expect(FitScale(600, 800, 1000)).To(Equal(FitScale(800, 600, 1000)))
}

func TestRegistry(t *testing.T) {
	g := NewWithT(t)

	r := NewRegistry()
	r.Register("png", func(o Options) (Sink, error) { return Discard, nil })
	r.Register("svg", func(o Options) (Sink, error) { return &Recorder{}, nil })

	g.Expect(r.List()).To(Equal([]string{"png", "svg"}))

	s, err := r.ForPath(Options{Path: "out/Frame.SVG"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s).To(BeAssignableToTypeOf(&Recorder{}))

	_, err = r.Get("gif", Options{})
	g.Expect(errors.Is(err, dynamo.ErrUnknownSink)).To(BeTrue())
}
