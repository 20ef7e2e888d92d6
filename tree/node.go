package tree

import (
	"strings"

	"github.com/signadot/mmproof/stmt"
)

// first appearance markers; positive values are back-reference indices
// assigned by ToRPN.
const (
	markUnvisited = 0
	markOnce      = -1
	markShared    = -2
)

type Node struct {
	Stmt  *stmt.Stmt
	Child []*Node

	size       int
	expSize    int
	formulaLen int
	mark       int
}

// NewNode returns a node labelled s with the given children.
func NewNode(s *stmt.Stmt, children ...*Node) *Node {
	return &Node{Stmt: s, Child: children}
}

// Leaf returns a childless node labelled s.
func Leaf(s *stmt.Stmt) *Node {
	return &Node{Stmt: s}
}

func (n *Node) IsLeaf() bool {
	return len(n.Child) == 0
}

// IsWorkVar reports whether n is a work variable leaf.
func (n *Node) IsWorkVar() bool {
	return n.Stmt != nil && n.Stmt.IsWorkVar()
}

// IsVarHyp reports whether n is labelled by a variable hypothesis,
// work variables included.
func (n *Node) IsVarHyp() bool {
	return n.Stmt != nil && n.Stmt.IsVarHyp()
}

// Label is the label of n, or "?" for an unknown step.
func (n *Node) Label() string {
	return n.Stmt.String()
}

// Visit calls f on every node occurrence of the tree rooted at n, in
// preorder with isPost false and in postorder with isPost true. If f
// returns false on the preorder call the children are skipped.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	type frame struct {
		n    *Node
		i    int
		dive bool
	}
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	stack := []frame{{n: n, dive: dive}}
	for len(stack) > 0 {
		top := len(stack) - 1
		fr := &stack[top]
		if fr.dive && fr.i < len(fr.n.Child) {
			c := fr.n.Child[fr.i]
			fr.i++
			dive, err := f(c, false)
			if err != nil {
				return err
			}
			stack = append(stack, frame{n: c, dive: dive})
			continue
		}
		if _, err := f(fr.n, true); err != nil {
			return err
		}
		stack = stack[:top]
	}
	return nil
}

// String renders n in prefix form, e.g. "wi(wph,wps)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	sep := false
	n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			if !y.IsLeaf() {
				b.WriteByte(')')
			}
			sep = true
			return true, nil
		}
		if sep {
			b.WriteByte(',')
		}
		b.WriteString(y.Label())
		sep = false
		if !y.IsLeaf() {
			b.WriteByte('(')
		}
		return true, nil
	})
	return b.String()
}

// ResetCaches clears the size, expanded size and formula length caches and
// the first appearance markers of every node reachable from n.
func (n *Node) ResetCaches() {
	seen := map[*Node]bool{}
	stack := []*Node{n}
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[y] {
			continue
		}
		seen[y] = true
		y.size, y.expSize, y.formulaLen, y.mark = 0, 0, 0, markUnvisited
		stack = append(stack, y.Child...)
	}
}
