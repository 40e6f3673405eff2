// Package llg provides the core value types for zero-dimensional
// Landau-Lifshitz-Gilbert macrospin calculations:
//
//   - [MagParams]: immutable magnetic parameter set (H, Hk, alpha, gamma)
//   - [SphPoint]: unit magnetization direction in spherical coordinates
//   - [Trajectory]: ordered (direction, time) samples of one switching event
//
// All types are plain values with no shared state; every function in this
// module tree is safe to call from concurrent goroutines.
package llg
