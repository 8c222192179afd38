/*
Package scan builds a dense scan table from a minimized DFA and drives
maximal-munch scanning over a byte input, per spec.md §4.4.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/gopherlr/parsegen/rx"
	"github.com/gopherlr/parsegen/rx/dfa"
)

func tracer() tracing.Trace {
	return tracing.Select("parsegen.scan")
}

// Command says what a scanner does when it completes a match of a given
// class: Emit a token, or Skip it (e.g. whitespace) and keep scanning.
type Command int

const (
	Emit Command = iota
	Skip
)

// Table is a dense scan table: 256 next-state columns per row, one row per
// non-sink DFA state, plus the per-row accepting class and the per-class
// command. The sink is always the last row (index len(classes)-1), matching
// the reference scanner's layout.
type Table struct {
	next     []int // row-major, 256 columns per row
	classes  []int // classes[row], -1 if non-accepting; last entry is the sink's (-1)
	commands []Command
	nrows    int // rows excluding the sink
}

const noClass = -1

// Build constructs a Table from an ordered list of patterns and, aligned by
// index, the command to run when each pattern's class is matched. The DFA is
// built via subset construction and minimized before the table is laid out.
func Build(patterns []rx.RegEx, commands []Command) *Table {
	d := dfa.Minimize(dfa.Build(patterns))
	states := d.States()
	nrows := len(states) - 1 // excluding the sink at state 0

	next := make([]int, 256*nrows)
	classes := make([]int, nrows+1)

	for row := 0; row < nrows; row++ {
		st := states[row+1]
		for b := 0; b < 256; b++ {
			dest := st.Next[b]
			if dest == 0 {
				next[256*row+b] = nrows // sink row, by convention the last row
			} else {
				next[256*row+b] = dest - 1
			}
		}
		if c, ok := d.Class(row + 1); ok {
			classes[row] = c
		} else {
			classes[row] = noClass
		}
	}
	classes[nrows] = noClass // the sink's class slot

	tracer().Debugf("scan: built table with %d rows from %d patterns", nrows, len(patterns))
	return &Table{next: next, classes: classes, commands: append([]Command(nil), commands...), nrows: nrows}
}

// Start is the table's start row (always 0: the minimized DFA's start state,
// renumbered down by one to exclude the sink).
const Start = 0

// Sink returns the row index representing the dead/sink state.
func (t *Table) Sink() int { return t.nrows }

// Step returns the row reached from state on byte b.
func (t *Table) Step(state int, b byte) int {
	return t.next[256*state+b]
}

// Class returns the accepting class of state, if any.
func (t *Table) Class(state int) (int, bool) {
	c := t.classes[state]
	if c == noClass {
		return 0, false
	}
	return c, true
}

// Command returns the command registered for class.
func (t *Table) Command(class int) Command {
	return t.commands[class]
}
