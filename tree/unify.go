package tree

import (
	"slices"

	"github.com/signadot/mmproof/stmt"
)

// UnifyWithSubtree matches pattern against ground. The variable hypotheses
// listed in vars are the unification variables of pattern; every other
// label must match ground exactly.
//
// On success the result holds, for each vars[i], the ground subtree it
// matched, or nil if vars[i] does not occur in pattern. A variable matches a
// ground subtree only if the subtree has the variable's type code, and all
// occurrences of a variable must match structurally equal subtrees.
//
// Ground trees are acyclic, so no occurs check is needed here.
func UnifyWithSubtree(pattern, ground *Node, vars []*stmt.Stmt) ([]*Node, bool) {
	res := make([]*Node, len(vars))
	ps := []*Node{pattern}
	gs := []*Node{ground}
	for len(ps) > 0 {
		p, g := ps[len(ps)-1], gs[len(gs)-1]
		ps, gs = ps[:len(ps)-1], gs[:len(gs)-1]
		if p.IsVarHyp() {
			if i := slices.Index(vars, p.Stmt); i >= 0 {
				if g.Stmt == nil || g.Stmt.TypeCode != p.Stmt.TypeCode {
					return nil, false
				}
				if res[i] == nil {
					res[i] = g
					continue
				}
				if !IsDeepDup(res[i], g) {
					return nil, false
				}
				continue
			}
		}
		if p.Stmt != g.Stmt || len(p.Child) != len(g.Child) {
			return nil, false
		}
		ps = append(ps, p.Child...)
		gs = append(gs, g.Child...)
	}
	return res, true
}
