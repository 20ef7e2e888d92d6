package tree

// MaxDepth returns the depth of the tree rooted at n. A leaf has depth 1,
// except a work variable leaf which has depth 0, so the result measures
// the real structure a match would need regardless of outstanding
// placeholders.
func (n *Node) MaxDepth() int {
	type frame struct {
		n     *Node
		level int
	}
	res := 0
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := f.level
		if f.n.IsWorkVar() && f.n.IsLeaf() {
			d--
		}
		res = max(res, d)
		for _, c := range f.n.Child {
			stack = append(stack, frame{c, f.level + 1})
		}
	}
	return res
}

// FormulaLength returns the number of math symbols of the formula denoted
// by the syntax tree rooted at n. Each symbol of an assertion's formula
// counts one, except a variable of one of its mandatory variable
// hypotheses, which counts the length of the corresponding child. Results
// are cached per node until ResetCaches.
func (n *Node) FormulaLength() int {
	type frame struct {
		n    *Node
		post bool
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		y := f.n
		if y.formulaLen > 0 {
			continue
		}
		if !f.post {
			stack = append(stack, frame{n: y, post: true})
			for _, c := range y.Child {
				stack = append(stack, frame{n: c})
			}
			continue
		}
		y.formulaLen = y.ownFormulaLength()
	}
	return n.formulaLen
}

// ownFormulaLength assumes the children's lengths are computed.
func (n *Node) ownFormulaLength() int {
	s := n.Stmt
	switch {
	case s == nil:
		return 1
	case !s.IsAssertion():
		return max(1, len(s.Formula))
	}
	ttl := 0
	for _, sym := range s.Formula {
		j := -1
		for k, h := range s.MandHyps {
			if h.IsVarHyp() && h.Var == sym {
				j = k
				break
			}
		}
		if j < 0 || j >= len(n.Child) {
			ttl++
			continue
		}
		ttl += n.Child[j].formulaLen
	}
	return max(1, ttl)
}
