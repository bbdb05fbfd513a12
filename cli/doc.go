// Package cli renders a vgacon console inside a real ANSI terminal.
//
// The viewer treats the console strictly as a read-back surface: it
// snapshots the cell grid at a fixed frame rate and repaints the cells
// that changed, mapping the 16 text-mode colors onto the standard and
// bright ANSI SGR colors. All writing still goes through the console's
// own entry points.
//
// Terminal capability and size detection uses golang.org/x/term; the
// viewer refuses to start when the output is not a terminal or is too
// small to hold the grid.
package cli
