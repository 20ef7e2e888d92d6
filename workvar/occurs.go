package workvar

import (
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

// Occurs classifies the occurrence of a work variable in a candidate
// binding.
type Occurs int

const (
	// NoOccurrence: the variable does not occur in the term.
	NoOccurrence Occurs = iota
	// RenameLoop: the term is a chain of bound work variables leading back
	// to the variable with no other structure. Binding would be a no-op.
	RenameLoop
	// OccursError: the variable occurs inside the term; binding would
	// create an infinite term.
	OccursError
)

func (o Occurs) String() string {
	switch o {
	case NoOccurrence:
		return "no occurrence"
	case RenameLoop:
		return "rename loop"
	case OccursError:
		return "occurs error"
	}
	return "<unknown occurs>"
}

// CheckOccurs classifies binding the unbound work variable v to t under
// the pool's current bindings.
func (p *Pool) CheckOccurs(v *stmt.Stmt, t *tree.Node) Occurs {
	cur := t
	chain := map[*stmt.Stmt]bool{}
	for cur.IsWorkVar() && cur.IsLeaf() {
		if cur.Stmt == v {
			return RenameLoop
		}
		if chain[cur.Stmt] {
			break
		}
		chain[cur.Stmt] = true
		next := p.b.Get(cur.Stmt)
		if next == nil {
			return NoOccurrence
		}
		cur = next
	}
	if p.occursIn(v, cur) {
		return OccursError
	}
	return NoOccurrence
}

// occursIn reports whether v occurs in n, looking through bound work
// variables.
func (p *Pool) occursIn(v *stmt.Stmt, n *tree.Node) bool {
	seen := map[*stmt.Stmt]bool{}
	stack := []*tree.Node{n}
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if y.Stmt == v {
			return true
		}
		if y.IsWorkVar() && !seen[y.Stmt] {
			seen[y.Stmt] = true
			if b := p.b.Get(y.Stmt); b != nil {
				stack = append(stack, b)
			}
		}
		stack = append(stack, y.Child...)
	}
	return false
}
