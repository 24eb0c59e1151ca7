// Package viz renders a running galaxy in the terminal.
//
// Stars are drawn on a braille [Canvas] (2x4 sub-pixels per cell) projected
// onto one of the cube's axis planes. [Model] is a Bubble Tea model that
// advances the galaxy once per frame:
//
//	m, _ := viz.NewModel(g, viz.Options{Mode: galaxy.ModeParallel, FPS: 30})
//	tea.NewProgram(m).Run()
package viz
