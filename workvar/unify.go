package workvar

import (
	"fmt"

	"github.com/signadot/mmproof/debug"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

// Instantiate returns a copy of expr, the formula of assertion a, in which
// each mandatory variable hypothesis of a is replaced by a freshly
// allocated work variable of the same type code. The allocated variables
// are returned in frame order.
func (p *Pool) Instantiate(a *stmt.Stmt, expr *tree.Node) (*tree.Node, []*stmt.Stmt, error) {
	hyps := a.VarHyps()
	fresh := make([]*stmt.Stmt, 0, len(hyps))
	repl := make([]*tree.Node, len(hyps))
	for i, h := range hyps {
		v, err := p.Alloc(h.TypeCode)
		if err != nil {
			for _, w := range fresh {
				p.Dealloc(w)
			}
			return nil, nil, fmt.Errorf("instantiating %s: %w", a.Label, err)
		}
		fresh = append(fresh, v)
		repl[i] = tree.Leaf(v)
	}
	return expr.CloneSubstHyps(hyps, repl), fresh, nil
}

// Unify makes a and b equal by binding work variables occurring in either
// side. Binding a work variable to a term containing it fails, except for
// pure alias chains leading back to it, which are left unbound. On failure
// every binding made by this call is undone.
func (p *Pool) Unify(a, b *tree.Node) bool {
	var bound []*stmt.Stmt
	ok := p.unify(a, b, &bound)
	if !ok {
		for _, v := range bound {
			p.b.Clear(v)
		}
	}
	if debug.Unify() {
		debug.Logf("workvar: unify %s with %s: %v (%d bound)\n", a, b, ok, len(bound))
	}
	return ok
}

func (p *Pool) unify(a, b *tree.Node, bound *[]*stmt.Stmt) bool {
	xs := []*tree.Node{a}
	ys := []*tree.Node{b}
	for len(xs) > 0 {
		x, y := p.walk(xs[len(xs)-1]), p.walk(ys[len(ys)-1])
		xs, ys = xs[:len(xs)-1], ys[:len(ys)-1]
		if x == y {
			continue
		}
		switch {
		case x.IsWorkVar() && y.IsWorkVar() && x.Stmt == y.Stmt:
			continue
		case x.IsWorkVar():
			if !p.bind(x.Stmt, y, bound) {
				return false
			}
			continue
		case y.IsWorkVar():
			if !p.bind(y.Stmt, x, bound) {
				return false
			}
			continue
		}
		if x.Stmt != y.Stmt || len(x.Child) != len(y.Child) {
			return false
		}
		xs = append(xs, x.Child...)
		ys = append(ys, y.Child...)
	}
	return true
}

// walk follows the bindings of a work variable leaf to the first unbound
// work variable or non work variable node.
func (p *Pool) walk(n *tree.Node) *tree.Node {
	seen := map[*stmt.Stmt]bool{}
	for n.IsWorkVar() && !seen[n.Stmt] {
		next := p.b.Get(n.Stmt)
		if next == nil {
			break
		}
		seen[n.Stmt] = true
		n = next
	}
	return n
}

func (p *Pool) bind(v *stmt.Stmt, t *tree.Node, bound *[]*stmt.Stmt) bool {
	if t.Stmt == nil || t.Stmt.TypeCode != v.TypeCode {
		return false
	}
	switch p.CheckOccurs(v, t) {
	case RenameLoop:
		return true
	case OccursError:
		return false
	}
	p.b.Set(v, t)
	*bound = append(*bound, v)
	return true
}
