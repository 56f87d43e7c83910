package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/export"
)

const scenarioYAML = `
name: demo
width: 64
height: 48
steps:
  - preset: calm
    ticks: 5
    seed: 3
    out: calm.svg
  - options:
      particle_count: 4
      history_epochs: 3
    ticks: 10
    seed: 4
    out: four.svg
`

func writeScenario(t *testing.T, dir, body string) string {
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	g := NewWithT(t)

	sc, err := LoadScenario(writeScenario(t, t.TempDir(), scenarioYAML))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sc.Name).To(Equal("demo"))
	g.Expect(sc.Width).To(Equal(64))
	g.Expect(sc.Steps).To(HaveLen(2))
	g.Expect(sc.Steps[1].Options).To(HaveKeyWithValue("particle_count", 4.0))
}

func TestLoadScenarioDefaultsSize(t *testing.T) {
	g := NewWithT(t)

	sc, err := LoadScenario(writeScenario(t, t.TempDir(), "name: bare\n"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sc.Width).To(Equal(1024))
	g.Expect(sc.Height).To(Equal(1024))
}

func TestRunScenario(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	sc, err := LoadScenario(writeScenario(t, dir, scenarioYAML))
	g.Expect(err).NotTo(HaveOccurred())

	results, err := RunScenario(context.Background(), sc, config.DefaultConfig(), export.NewRegistry(), dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(2))

	g.Expect(results[0].Ticks).To(Equal(5))
	g.Expect(results[0].Seed).To(Equal(int64(3)))
	// 8 particles, 5 epochs
	g.Expect(results[0].Triangles).To(Equal(7 * 4 * 2))

	g.Expect(results[1].Ticks).To(Equal(10))
	g.Expect(results[1].Triangles).To(Equal(3 * 2 * 2))
	g.Expect(filepath.Join(dir, "four.svg")).To(BeAnExistingFile())
}

func TestRunScenarioStopsOnBadStep(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	sc := &Scenario{Width: 32, Height: 32, Steps: []ScenarioStep{
		{Ticks: 1, Seed: 1, Out: "ok.svg"},
		{Preset: "missing", Out: "bad.svg"},
		{Ticks: 1, Seed: 1, Out: "never.svg"},
	}}

	results, err := RunScenario(context.Background(), sc, config.DefaultConfig(), export.NewRegistry(), dir)
	g.Expect(errors.Is(err, dynamo.ErrInvalidConfig)).To(BeTrue())
	g.Expect(results).To(HaveLen(1))
	g.Expect(filepath.Join(dir, "never.svg")).NotTo(BeAnExistingFile())
}

func TestRunScenarioUnknownSink(t *testing.T) {
	g := NewWithT(t)

	sc := &Scenario{Width: 32, Height: 32, Steps: []ScenarioStep{{Ticks: 1, Seed: 1, Out: "frame.bmp"}}}
	_, err := RunScenario(context.Background(), sc, config.DefaultConfig(), export.NewRegistry(), t.TempDir())
	g.Expect(errors.Is(err, dynamo.ErrUnknownSink)).To(BeTrue())
}
