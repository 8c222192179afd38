/*
Package cst is a minimal concrete-syntax-tree builder consuming package
lr's Shift/Reduce parse-event stream. It demonstrates the external
collaborator boundary: package lr commits to no tree shape of its own, and
a caller who wants one builds it from the event stream as shown here.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cst

import (
	"fmt"

	"github.com/gopherlr/parsegen"
	"github.com/gopherlr/parsegen/lr"
)

// Node is either a leaf (Token set, Children nil) carrying the shifted
// token, or an interior node (Var the reducing production's LHS,
// Children the popped frontier in left-to-right order).
type Node struct {
	Token    parsegen.Token
	Var      int
	Prod     *lr.Production
	Children []*Node
}

// IsLeaf reports whether n was built from a ShiftEvent.
func (n *Node) IsLeaf() bool { return n.Prod == nil }

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%v", n.Token.Lexeme())
	}
	return fmt.Sprintf("V%d(%d children)", n.Var, len(n.Children))
}

// Build drains p, folding its ShiftEvent/ReduceEvent stream into a single
// concrete-syntax tree. A ReduceEvent with child count c pops the last c
// nodes off the frontier and replaces them with one interior node; a
// ShiftEvent pushes one leaf. On Accept exactly one node remains, the root.
func Build(p *lr.Parser) (*Node, error) {
	var frontier []*Node
	for {
		ev, err, ok := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch ev.Kind {
		case lr.ShiftEvent:
			frontier = append(frontier, &Node{Token: ev.Token})
		case lr.ReduceEvent:
			n := ev.ChildCount
			children := append([]*Node(nil), frontier[len(frontier)-n:]...)
			frontier = frontier[:len(frontier)-n]
			frontier = append(frontier, &Node{Var: ev.Var, Prod: ev.Prod, Children: children})
		}
	}
	if len(frontier) != 1 {
		return nil, fmt.Errorf("cst: expected exactly one root node, got %d", len(frontier))
	}
	return frontier[0], nil
}

// Walk calls visit for n and then, depth-first, for every descendant.
func Walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
