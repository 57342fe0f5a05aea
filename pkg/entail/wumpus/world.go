// Package wumpus holds a small grid-world fact store used as a demo
// harness for the propositional engine. It is illustrative only; the
// inference engine does not depend on it.
package wumpus

import "github.com/cognicore/entail/pkg/entail/prop"

// World is a 4×4 grid of cell descriptors plus the set of facts an
// agent has been told. Cell codes combine percepts and contents:
// E empty, B breeze, S stench, P pit, W wumpus, G gold; the trailing
// digits are the column and row.
type World struct {
	layout []string
	facts  map[string]bool
}

// NewWorld builds the canonical demo world.
func NewWorld() *World {
	return &World{
		layout: []string{
			"E11", "B21", "P31", "B41",
			"S12", "E22", "B32", "E42",
			"W13", "BSG23", "P33", "B43",
			"S14", "E24", "B34", "P44",
		},
		facts: make(map[string]bool),
	}
}

// Layout returns the grid cells in row-major order.
func (w *World) Layout() []string {
	return w.layout
}

// Tell adds a fact to the world's known facts.
func (w *World) Tell(fact string) {
	w.facts[fact] = true
}

// Ask evaluates a formula against the known facts; atoms not told are
// false.
func (w *World) Ask(f prop.Formula) bool {
	return f.Eval(w.facts)
}

// DemoKB is the illustrative knowledge base used by the demo driver:
// it entails B but says nothing about pit P21.
func DemoKB() []string {
	return []string{
		"A",
		"(IMPLIES, A, B)",
		"(NOT, P11)",
		"(NOT, W11)",
		"(NOT, B11)",
		"(NOT, S11)",
		"(IFF, B11, (OR, P12, P21))",
	}
}
