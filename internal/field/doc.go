// Package field provides the animated particle network simulated behind
// every plexus host.
//
// The package owns the whole per-frame pipeline:
//
//   - [SizeViewport]: logical and raster size of a host surface
//   - [Populate]: fresh, independently sampled particle store
//   - [Step]: integration, toroidal wrap and pointer repulsion
//   - [AppendLinks]: pairwise proximity links with linear opacity falloff
//   - [Paint]: clears a [Surface] and draws links, then discs
//   - [Simulator]: store, pointer and scheduling state of one field
//
// # Example
//
//	sim, _ := field.New(field.DefaultConfig(), field.WithSeed(42))
//	sim.Resize(1280, 720, 2)
//	sim.SetPointer(640, 360)
//	sim.Tick(time.Now(), surface)
//
// # Thread Safety
//
// A [Simulator] is driven by exactly one goroutine: the host's frame
// callback and its input handlers never overlap. Hosts that receive input
// on other goroutines feed it through a [Loop].
package field
