// Package dynamo provides the primitives shared by the ribbon simulation core.
//
// The package defines the small set of types every other package leans on:
//
//   - [Rand]: the injectable random source used for seeding and colour drift
//   - [Uniform], [Coin]: helpers drawing from a [Rand]
//   - sentinel errors such as [ErrBatchSize] and [ErrInvalidConfig]
//   - [Logger] / [SetLogger]: the package-wide structured logger
//
// # Reproducibility
//
// Nothing in the core reads process-wide randomness. A run is fully
// determined by the seed handed to [NewRand]:
//
//	rng := dynamo.NewRand(42)
//	swarm := physics.NewSwarm(16, 1000, 57000, 100, rng)
//
// # Thread Safety
//
// A [Rand] returned by [NewRand] is NOT safe for concurrent use. The core is
// single-threaded and tick-driven, so each simulator owns its own source.
package dynamo
