// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures as coordinate lists
// ready for matrix.Build and bfs.FromCoordinates.
//
// What:
//
//   - Constructor: a closure that appends the arcs of one topology to a
//     shared *matrix.Coordinates (Path, Cycle, Star, Wheel, Grid, Complete,
//     RandomSparse).
//   - Build: runs constructors in order over one vertex set. The vertex
//     count of the result is the largest count any constructor asked for,
//     so constructors overlay on the same ids 0..n-1.
//   - BuilderOption: functional options resolved into an immutable
//     builderConfig (WithSeed, WithRand, WithUndirected).
//
// Orientation:
//
//	Every arc u→v is stored as the coordinate (row=u, col=v), the same
//	orientation the coordinate file format uses. WithUndirected also emits
//	v→u for every arc that is not a self-loop.
//
// Determinism:
//
//	Same constructors, same order, same options and seed ⇒ identical
//	coordinate lists. Stochastic constructors draw only from the
//	configured RNG.
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter below the constructor minimum.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource: a stochastic draw is needed but no RNG is set.
//   - ErrConstructFailed: nil constructor passed to Build.
//
// Constructors never panic; option constructors panic on nil inputs.
package builder
