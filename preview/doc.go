// Package preview draws a spinning helix in a terminal.
//
// Rasterize projects a scene.Scene into a character-cell Frame with a depth
// test, so nearer strands hide farther ones. Run drives a tcell.Screen: it
// redraws at a fixed frame period, turns the helix about its axis and reacts
// to keys until the context ends or the user quits.
//
//	space  pause / resume rotation
//	r      reset rotation and zoom
//	+ -    zoom in / out
//	q Esc  quit (Ctrl-C too)
package preview
