package tree

import (
	"slices"

	"github.com/signadot/mmproof/stmt"
)

// substRule returns the subtree to place instead of a copy of n, or nil to
// copy n and continue into its children.
type substRule func(n *Node) *Node

// cloneWith is the clone-with-substitution walk of the Clone variants whose
// replacements are final. Shared source subtrees are copied at each
// occurrence.
func cloneWith(root *Node, rule substRule) *Node {
	if repl := rule(root); repl != nil {
		return repl
	}
	type frame struct {
		src, dst *Node
	}
	res := &Node{Stmt: root.Stmt}
	stack := []frame{{root, res}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(f.src.Child) == 0 {
			continue
		}
		f.dst.Child = make([]*Node, len(f.src.Child))
		for i, c := range f.src.Child {
			if repl := rule(c); repl != nil {
				f.dst.Child[i] = repl
				continue
			}
			d := &Node{Stmt: c.Stmt}
			f.dst.Child[i] = d
			stack = append(stack, frame{c, d})
		}
	}
	return res
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	return cloneWith(n, func(*Node) *Node { return nil })
}

// CloneReplacing returns a deep copy of n in which every occurrence of the
// node instance target (by reference) is replaced by repl. The replacement
// is inserted as is, not copied.
func (n *Node) CloneReplacing(target, repl *Node) *Node {
	return cloneWith(n, func(y *Node) *Node {
		if y == target {
			return repl
		}
		return nil
	})
}

// CloneSubstHyps returns a deep copy of n in which every variable
// hypothesis leaf labelled hyps[i] is replaced by a deep copy of repl[i].
// hyps and repl are parallel. A variable hypothesis label with no entry, or
// with a nil entry, is a programmer error and panics.
func (n *Node) CloneSubstHyps(hyps []*stmt.Stmt, repl []*Node) *Node {
	if len(hyps) != len(repl) {
		panic(internalf("substitution table sizes differ: %d hyps, %d replacements",
			len(hyps), len(repl)))
	}
	return cloneWith(n, func(y *Node) *Node {
		if !y.IsVarHyp() {
			return nil
		}
		i := slices.Index(hyps, y.Stmt)
		if i < 0 || repl[i] == nil {
			panic(internalf("no substitution for %s", y.Stmt.Label))
		}
		return repl[i].Clone()
	})
}

// CloneResolvingWorkVars returns a deep copy of n in which every bound
// work variable is replaced by a copy of its binding, resolved the same way.
// Alias chains collapse to their final value. Unbound work variables are
// copied. A binding cycle is a programmer error and panics.
func (n *Node) CloneResolvingWorkVars(b *Bindings) *Node {
	// exit frames deactivate a variable once its binding has been copied,
	// so active holds the chain of bindings being expanded.
	type frame struct {
		src  *Node
		dst  **Node
		exit *stmt.Stmt
	}
	active := map[*stmt.Stmt]bool{}
	var res *Node
	stack := []frame{{src: n, dst: &res}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.exit != nil {
			delete(active, f.exit)
			continue
		}
		y := f.src
		if y.IsWorkVar() {
			if v := b.Get(y.Stmt); v != nil {
				if active[y.Stmt] {
					panic(internalf("work variable %s is bound to a term containing itself", y.Stmt.Label))
				}
				active[y.Stmt] = true
				stack = append(stack, frame{exit: y.Stmt}, frame{src: v, dst: f.dst})
				continue
			}
		}
		d := &Node{Stmt: y.Stmt}
		*f.dst = d
		if len(y.Child) == 0 {
			continue
		}
		d.Child = make([]*Node, len(y.Child))
		for i := len(y.Child) - 1; i >= 0; i-- {
			stack = append(stack, frame{src: y.Child[i], dst: &d.Child[i]})
		}
	}
	return res
}

// HasBoundWorkVar reports whether some work variable in n is bound in b.
func (n *Node) HasBoundWorkVar(b *Bindings) bool {
	found := false
	n.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost && y.IsWorkVar() && b.IsBound(y.Stmt) {
			found = true
		}
		return !found, nil
	})
	return found
}

// CloneTargetToSource returns a deep copy of n in which every variable
// hypothesis leaf is replaced by a deep copy of its binding. It must only be
// used when every variable of n is bound; a missing binding panics.
func (n *Node) CloneTargetToSource(b *Bindings) *Node {
	return cloneWith(n, func(y *Node) *Node {
		if !y.IsVarHyp() {
			return nil
		}
		v := b.Get(y.Stmt)
		if v == nil {
			panic(internalf("no binding for %s", y.Stmt.Label))
		}
		return v.Clone()
	})
}
