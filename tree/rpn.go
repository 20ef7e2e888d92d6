package tree

import (
	"fmt"

	"github.com/signadot/mmproof/stmt"
)

// RPNStep is one entry of a postfix linearization.
//
// A step with BackRef > 0 stands for the BackRef-th marked subtree (1-based)
// emitted earlier in the sequence. Otherwise the step is Stmt applied to the
// Stmt.Arity() subtrees preceding it. Mark is set on the step completing a
// subtree that is referenced again later.
type RPNStep struct {
	Stmt    *stmt.Stmt
	BackRef int
	Mark    bool
}

func (s RPNStep) String() string {
	if s.BackRef > 0 {
		return fmt.Sprintf("#%d", s.BackRef)
	}
	if s.Mark {
		return s.Stmt.String() + "*"
	}
	return s.Stmt.String()
}

// CountParseNodes returns the number of nodes of the tree rooted at n.
//
// When expanded is true every occurrence of a shared subtree is counted.
// Otherwise the first appearance markers are reset and recomputed, and each
// distinct node is counted once: nodes reached from a single parent are
// marked as appearing once, nodes reached again are marked shared and
// neither recounted nor descended into. The result is cached on n until
// ResetCaches.
func (n *Node) CountParseNodes(expanded bool) int {
	if expanded {
		if n.expSize == 0 {
			n.expSize = n.countExpanded()
		}
		return n.expSize
	}
	size, _ := n.countCollapsed()
	n.size = size
	return size
}

func (n *Node) countExpanded() int {
	ttl := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ttl++
		stack = append(stack, y.Child...)
	}
	return ttl
}

// countCollapsed classifies every node and returns the number of distinct
// nodes and the number of repeated encounters of shared nodes, which is
// the number of back-references a de-duplicated linearization emits.
func (n *Node) countCollapsed() (size, refs int) {
	n.resetMarks()
	stack := []*Node{n}
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch y.mark {
		case markUnvisited:
			y.mark = markOnce
			size++
			stack = append(stack, y.Child...)
		default:
			y.mark = markShared
			refs++
		}
	}
	return size, refs
}

func (n *Node) resetMarks() {
	seen := map[*Node]bool{}
	stack := []*Node{n}
	for len(stack) > 0 {
		y := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[y] {
			continue
		}
		seen[y] = true
		y.mark = markUnvisited
		stack = append(stack, y.Child...)
	}
}

// ToRPN returns the postorder linearization of the tree rooted at n.
//
// When expanded is true every occurrence is written out and no step is
// marked. Otherwise a shared subtree is written out once, its last step
// marked, and each later occurrence becomes a back-reference to it.
func (n *Node) ToRPN(expanded bool) []RPNStep {
	var out []RPNStep
	if expanded {
		out = make([]RPNStep, 0, n.CountParseNodes(true))
	} else {
		size, refs := n.countCollapsed()
		n.size = size
		out = make([]RPNStep, 0, size+refs)
	}
	want := cap(out)

	type frame struct {
		n *Node
		i int
	}
	nextRef := 0
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		top := len(stack) - 1
		y := stack[top].n
		if !expanded && stack[top].i == 0 && y.mark > 0 {
			out = append(out, RPNStep{BackRef: y.mark})
			stack = stack[:top]
			continue
		}
		if stack[top].i < len(y.Child) {
			c := y.Child[stack[top].i]
			stack[top].i++
			stack = append(stack, frame{n: c})
			continue
		}
		step := RPNStep{Stmt: y.Stmt}
		if !expanded && y.mark == markShared {
			step.Mark = true
			nextRef++
			y.mark = nextRef
		}
		out = append(out, step)
		stack = stack[:top]
	}
	if len(out) != want {
		panic(internalf("linearization wrote %d steps into a buffer of %d", len(out), want))
	}
	return out
}

// BuildFromRPN rebuilds a tree from a postfix sequence by simulating a
// push-down evaluator. Each plain step pops as many subtrees as its
// statement's arity; a back-reference pushes the referenced marked subtree,
// which then becomes shared. The sequence must leave exactly one tree.
func BuildFromRPN(steps []RPNStep) (*Tree, error) {
	var (
		stack  []*Node
		marked []*Node
	)
	for i, s := range steps {
		var n *Node
		if s.BackRef > 0 {
			if s.BackRef > len(marked) {
				return nil, fmt.Errorf("%w: back-reference %d at step %d, only %d marked",
					ErrRPNShape, s.BackRef, i, len(marked))
			}
			n = marked[s.BackRef-1]
		} else {
			arity := 0
			if s.Stmt != nil {
				arity = s.Stmt.Arity()
			}
			if arity > len(stack) {
				return nil, fmt.Errorf("%w: %s at step %d needs %d operands, have %d",
					ErrRPNShape, s.Stmt.Label, i, arity, len(stack))
			}
			n = &Node{Stmt: s.Stmt}
			if arity > 0 {
				n.Child = make([]*Node, arity)
				copy(n.Child, stack[len(stack)-arity:])
				stack = stack[:len(stack)-arity]
			}
		}
		if s.Mark {
			marked = append(marked, n)
		}
		stack = append(stack, n)
	}
	switch len(stack) {
	case 0:
		return nil, fmt.Errorf("%w: empty sequence", ErrRPNShape)
	case 1:
		return New(stack[0]), nil
	default:
		return nil, fmt.Errorf("%w: %d subtrees left over", ErrRPNShape, len(stack)-1)
	}
}

// FromStmts builds a tree from a fully expanded postfix label sequence. A
// nil entry is an unknown step.
func FromStmts(steps []*stmt.Stmt) (*Tree, error) {
	rpn := make([]RPNStep, len(steps))
	for i, s := range steps {
		rpn[i].Stmt = s
	}
	return BuildFromRPN(rpn)
}

// FromLabels builds a tree from postfix labels, resolving them with lookup.
// "?" is an unknown step.
func FromLabels(labels []string, lookup func(string) *stmt.Stmt) (*Tree, error) {
	steps := make([]*stmt.Stmt, len(labels))
	for i, l := range labels {
		if l == "?" {
			continue
		}
		s := lookup(l)
		if s == nil {
			return nil, fmt.Errorf("%w: unknown label %q at step %d", ErrRPNShape, l, i)
		}
		steps[i] = s
	}
	return FromStmts(steps)
}
