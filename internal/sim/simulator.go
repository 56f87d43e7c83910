package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/mesh"
	"github.com/san-kum/ribbons/internal/physics"
	"github.com/san-kum/ribbons/internal/render"
	"github.com/san-kum/ribbons/internal/trail"
)

// Simulator owns the particles, their trail colours and history, and the
// mesh rebuilt from that history. It is single-threaded: one Tick per
// external clock tick.
type Simulator struct {
	params     Params
	swarm      *physics.Swarm
	colors     []hsla.Color
	drifter    *hsla.Drifter
	history    *trail.History
	batch      []trail.Record
	builder    mesh.Builder
	mesh       *mesh.Mesh
	background hsla.Color
	circle     render.Circle
	sink       render.Sink
	metrics    []Metric
	observers  []Observer
	ticks      int
	time       float64
}

// New seeds the particles from rng and keeps rng for colour drift. A nil
// sink discards frames.
func New(p Params, rng dynamo.Rand, sink render.Sink) *Simulator {
	if sink == nil {
		sink = render.Discard
	}
	s := &Simulator{
		params:     p,
		swarm:      physics.NewSwarm(p.ParticleCount, p.OrbitalRadius, p.GM, p.VelocityJitter, rng),
		colors:     hsla.Palette(p.ParticleCount, p.HueStart, p.HueRange),
		drifter:    hsla.NewDrifter(p.ColorDrift, rng),
		history:    trail.New(p.ParticleCount, p.HistoryEpochs),
		batch:      make([]trail.Record, p.ParticleCount),
		background: hsla.Background(p.BackgroundHue),
		circle: render.Circle{
			Radius: p.OrbitalRadius,
			Color:  hsla.CircleColor(p.BackgroundHue),
		},
		sink:      sink,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	s.mesh = s.builder.Build(s.history, p.ParticleCount)

	dynamo.Logger().Debug("simulator ready",
		"particles", p.ParticleCount,
		"hue_start", p.HueStart,
		"hue_range", p.HueRange,
		"background_hue", p.BackgroundHue,
	)
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Update advances the model by dt seconds without submitting a frame:
// particles move, each slot's colour drifts, the batch is recorded and the
// mesh is rebuilt. dt is not validated.
func (s *Simulator) Update(dt float64) {
	s.swarm.Step(dt)
	s.drifter.DriftAll(s.colors)
	for i, p := range s.swarm.Particles {
		s.batch[i] = trail.Record{Pos: p.Pos, Color: s.colors[i]}
	}
	// The batch always matches the particle count.
	_ = s.history.PushBatch(s.batch)
	s.mesh = s.builder.Build(s.history, s.params.ParticleCount)

	s.ticks++
	s.time += dt
	for _, m := range s.metrics {
		m.Observe(s.swarm, s.time)
	}
	for _, o := range s.observers {
		o.OnTick(s.swarm, s.time)
	}
}

// Frame is the current background, reference circle and mesh.
func (s *Simulator) Frame() render.Frame {
	return render.Frame{Background: s.background, Circle: s.circle, Mesh: s.mesh}
}

// Tick runs one update-then-render cycle.
func (s *Simulator) Tick(dt float64) error {
	s.Update(dt)
	return s.sink.Submit(s.Frame())
}

// Run drives cfg.Ticks fixed steps of cfg.Dt, submitting every frame. With
// ValidateState set, the first non-finite particle is recorded in
// Result.Errors and the run stops; the state is not corrected.
func (s *Simulator) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Tick(cfg.Dt); err != nil {
			return result, fmt.Errorf("tick %d: %w", s.ticks, err)
		}
		result.Ticks++

		if cfg.ValidateState {
			if slot := s.firstNonFinite(); slot >= 0 {
				err := &dynamo.TickError{Tick: s.ticks, Time: s.time, Slot: slot, Wrapped: dynamo.ErrNonFinite}
				dynamo.Logger().Warn("non-finite particle", "tick", s.ticks, "slot", slot)
				result.Errors = append(result.Errors, err)
				break
			}
		}
	}

	result.Time = s.time
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) firstNonFinite() int {
	for i := range s.swarm.Particles {
		if !s.swarm.Particles[i].IsFinite() {
			return i
		}
	}
	return -1
}

func validateRunConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", dynamo.ErrInvalidConfig, cfg.Ticks)
	}
	return nil
}

func (s *Simulator) Params() Params           { return s.params }
func (s *Simulator) Swarm() *physics.Swarm    { return s.swarm }
func (s *Simulator) History() *trail.History  { return s.history }
func (s *Simulator) Mesh() *mesh.Mesh         { return s.mesh }
func (s *Simulator) Ticks() int               { return s.ticks }
func (s *Simulator) Time() float64            { return s.time }
func (s *Simulator) SetSink(sink render.Sink) { s.sink = sink }

// Colors returns a copy of the current per-slot trail colours.
func (s *Simulator) Colors() []hsla.Color {
	return append([]hsla.Color(nil), s.colors...)
}
