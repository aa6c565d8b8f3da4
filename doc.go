// Package lovetree plays a small decorative animation built from drawing
// primitives: a heart-shaped seed waits for a click, shrinks and drops to the
// ground, a tree of bezier branches grows from the ground line, heart-shaped
// blooms fill a heart-shaped crown, the finished picture slides aside, and
// petals drift off the tree forever while a clock counts elapsed time.
//
// # Layers
//
// Everything draws onto a [Surface]. [Canvas] is the CPU implementation used
// by both the window and headless runs. On top of it:
//
//   - [Tree] owns the seed, footer, branches and blooms, and the pixel
//     snapshots taken for the move phase.
//   - [Director] steps a Tree through every [Phase] on fixed tick intervals
//     and composites the final frame.
//   - [Overlay] is the text layer with names, lines and the elapsed clock.
//
// # Running
//
// [Run] opens an Ebitengine window and forwards mouse and touch presses to
// [Director.Click]:
//
//	cfg := lovetree.DefaultConfig()
//	tree := lovetree.NewTree(lovetree.NewCanvas(cfg.Width, cfg.Height), cfg)
//	d := lovetree.NewDirector(tree, lovetree.DirectorOptions{})
//	if err := lovetree.Run(d, lovetree.RunConfig{Title: "lovetree"}); err != nil {
//		log.Fatal(err)
//	}
//
// [RunHeadless] drives the same Director without a window, optionally from a
// JSON [ScriptRunner], and is what the render command and the tests use.
//
// # Configuration
//
// [Config] is loaded from TOML with [LoadConfig]. Branches are written in a
// compact nested-array form; see [ParseBranchDefs].
package lovetree
