// Package physics provides the particle model driven by the ribbon simulator.
//
// Each [Particle] moves independently under a stylized central force:
//
//   - [PointOnCircle]: rejection-sampled direction on the unit circle
//   - [NewSwarm]: particles seeded on a circular orbit with jittered speed
//   - [Particle.Step]: the per-tick position/velocity update
//
// Particles never interact. The force law is a design choice, not a physical
// model, and the update is deliberately left unguarded at the origin: a
// particle passing exactly through (0, 0) produces non-finite state.
//
// # Example
//
//	rng := dynamo.NewRand(1)
//	swarm := physics.NewSwarm(16, 1000, 1000*57, 100, rng)
//	for range 60 {
//	    swarm.Step(1.0 / 60)
//	}
package physics
