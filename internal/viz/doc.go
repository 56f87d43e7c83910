// Package viz draws the ribbon in a terminal.
//
// [Canvas] is a braille dot grid with a colour per cell; [CanvasSink]
// rasterizes simulator frames onto it. [Model] is the Bubble Tea program
// that ticks the simulator with wall-clock time and shows the canvas beside
// a stats panel.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Restart with the next seed
//	?     - Show help overlay
//	Q     - Quit
package viz
