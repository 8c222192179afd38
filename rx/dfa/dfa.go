/*
Package dfa builds a deterministic finite automaton directly from a vector
of RegEx patterns via Brzozowski derivatives (subset construction), and
minimizes it with Hopcroft partition refinement, per spec.md §4.3.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dfa

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/gopherlr/parsegen/rx"
)

func tracer() tracing.Trace {
	return tracing.Select("parsegen.dfa")
}

// State is a single DFA row: 256 possible transitions plus an optional
// accepting class. Class holds the index of the lowest-ranked pattern
// whose derivative trajectory is nullable at this state, or -1.
type State struct {
	Class int
	Next  [256]int
}

// DFA is a vector of States. State 0 is always the sink: non-accepting,
// every byte self-loops.
type DFA struct {
	states []State
}

const noClass = -1

// Build runs derivative-based subset construction over an ordered list of
// patterns. The combined state is the tuple of per-pattern derivative
// values; the sink is the all-None tuple and is always placed at index 0.
func Build(patterns []rx.RegEx) *DFA {
	type key = string // canonical tuple key: concatenation of per-pattern node identities

	tupleKey := func(tup []rx.RegEx) key {
		var sb strings.Builder
		for _, r := range tup {
			sb.WriteString(r.Key())
			sb.WriteByte(';')
		}
		return sb.String()
	}

	sink := make([]rx.RegEx, len(patterns))
	for i := range sink {
		sink[i] = rx.None()
	}

	index := map[key]int{}
	var tuples [][]rx.RegEx
	add := func(tup []rx.RegEx) int {
		k := tupleKey(tup)
		if id, ok := index[k]; ok {
			return id
		}
		id := len(tuples)
		index[k] = id
		tuples = append(tuples, tup)
		return id
	}

	add(sink) // always state 0
	add(patterns)

	var states []State
	for i := 0; i < len(tuples); i++ {
		tup := tuples[i]
		st := State{Class: classOf(tup)}
		for b := 0; b < 256; b++ {
			next := make([]rx.RegEx, len(tup))
			allNone := true
			for j, r := range tup {
				d := r.Deriv(byte(b))
				next[j] = d
				if d.Kind() != rx.KNone {
					allNone = false
				}
			}
			if allNone {
				st.Next[b] = 0
			} else {
				st.Next[b] = add(next)
			}
		}
		states = append(states, st)
	}

	tracer().Debugf("dfa: subset construction produced %d states from %d patterns", len(states), len(patterns))
	return &DFA{states: states}
}

func classOf(tup []rx.RegEx) int {
	for i, r := range tup {
		if r.IsNullable() {
			return i
		}
	}
	return noClass
}

// States returns the DFA's state vector (state 0 is the sink).
func (d *DFA) States() []State { return d.states }

// Step returns the next state id reached from id on byte b, or 0 (the sink)
// if no transition is defined for id.
func (d *DFA) Step(id int, b byte) int {
	if id < 0 || id >= len(d.states) {
		return 0
	}
	return d.states[id].Next[b]
}

// Class returns the accepting class of state id, or (0, false) if the state
// is not accepting.
func (d *DFA) Class(id int) (int, bool) {
	if id < 0 || id >= len(d.states) {
		return 0, false
	}
	c := d.states[id].Class
	if c == noClass {
		return 0, false
	}
	return c, true
}

// Matches reports whether text is wholly recognized by the DFA starting
// from state 1 (the start state following subset construction's
// sink-then-start convention).
func (d *DFA) Matches(text string) bool {
	id := 1
	for i := 0; i < len(text); i++ {
		id = d.Step(id, text[i])
	}
	_, ok := d.Class(id)
	return ok
}

// NumStates returns the number of states, including the sink.
func (d *DFA) NumStates() int { return len(d.states) }
