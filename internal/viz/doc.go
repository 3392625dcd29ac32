// Package viz renders a particle field in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: bubbletea model driving a field.Simulator from tick,
//     resize and mouse messages
//   - [Canvas]: Braille-based pixel canvas implementing field.Surface
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Rebuild the field
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	S     - Save an SVG snapshot
//	?     - Show help overlay
//	Q     - Quit
//
// Mouse motion over the canvas is the repulsion pointer; leaving the
// canvas parks it.
package viz
