package proof

import (
	"fmt"
	"slices"

	"github.com/signadot/mmproof/debug"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

// ExprSource gives the expression tree of a hypothesis or assertion
// formula. Variable hypotheses need not be covered.
type ExprSource interface {
	Expr(s *stmt.Stmt) *tree.Node
}

// DefaultProvable is the type code of provable statements.
const DefaultProvable = "|-"

type Checker struct {
	Exprs    ExprSource
	Provable string
}

func NewChecker(exprs ExprSource) *Checker {
	return &Checker{Exprs: exprs, Provable: DefaultProvable}
}

// Check verifies that pt proves thm.
func (c *Checker) Check(thm *stmt.Stmt, pt *tree.Tree) error {
	root := pt.Root()
	if root == nil {
		return &StepError{Theorem: thm.Label, Step: "?", Err: ErrIncomplete}
	}
	concl := map[*tree.Node]*tree.Node{}
	err := root.Visit(func(n *tree.Node, isPost bool) (bool, error) {
		if _, ok := concl[n]; ok {
			return false, nil
		}
		if !isPost {
			return true, nil
		}
		e, err := c.conclude(thm, n, concl)
		if err != nil {
			return false, &StepError{Theorem: thm.Label, Step: n.Label(), Err: err}
		}
		concl[n] = e
		return true, nil
	})
	if err != nil {
		return err
	}
	got := concl[root]
	if root.Stmt.TypeCode != thm.TypeCode {
		return &StepError{Theorem: thm.Label, Step: root.Label(),
			Err: fmt.Errorf("%w: proves type code %s, want %s", ErrMismatch, root.Stmt.TypeCode, thm.TypeCode)}
	}
	if thm.TypeCode != c.Provable {
		return nil
	}
	want := c.Exprs.Expr(thm)
	if want == nil {
		return &StepError{Theorem: thm.Label, Step: root.Label(), Err: ErrNoExpr}
	}
	if !tree.IsDeepDup(got, want) {
		return &StepError{Theorem: thm.Label, Step: root.Label(),
			Err: fmt.Errorf("%w: proves %s, want %s", ErrMismatch, got, want)}
	}
	if debug.Check() {
		debug.Logf("proof: %s proves %s\n", thm.Label, got)
	}
	return nil
}

// conclude computes the conclusion of n from those of its children.
func (c *Checker) conclude(thm *stmt.Stmt, n *tree.Node, concl map[*tree.Node]*tree.Node) (*tree.Node, error) {
	s := n.Stmt
	switch {
	case s == nil:
		return nil, ErrIncomplete
	case s.IsVarHyp():
		return n, nil
	case s.IsHyp():
		if thm.HypIndex(s) < 0 {
			return nil, fmt.Errorf("%w: hypothesis %s is not in the frame of %s", ErrMismatch, s.Label, thm.Label)
		}
		return c.expr(s)
	}
	if len(n.Child) != s.Arity() {
		return nil, fmt.Errorf("%w: %d children, want %d", ErrMismatch, len(n.Child), s.Arity())
	}
	for i, h := range s.MandHyps {
		if ct := n.Child[i].Stmt.TypeCode; ct != h.TypeCode {
			return nil, fmt.Errorf("%w: %s given a step of type %s, want %s", ErrMismatch,
				h.Label, ct, h.TypeCode)
		}
	}
	hyps := s.VarHyps()
	repl := make([]*tree.Node, len(hyps))
	for i, h := range hyps {
		repl[i] = concl[n.Child[s.HypIndex(h)]]
	}
	for i, h := range s.MandHyps {
		if h.IsVarHyp() {
			continue
		}
		e, err := c.expr(h)
		if err != nil {
			return nil, err
		}
		want, err := substitute(e, hyps, repl)
		if err != nil {
			return nil, err
		}
		if got := concl[n.Child[i]]; !tree.IsDeepDup(got, want) {
			return nil, fmt.Errorf("%w: hypothesis %s is %s, want %s", ErrMismatch, h.Label, got, want)
		}
	}
	if s.TypeCode != c.Provable {
		return n, nil
	}
	e, err := c.expr(s)
	if err != nil {
		return nil, err
	}
	return substitute(e, hyps, repl)
}

func (c *Checker) expr(s *stmt.Stmt) (*tree.Node, error) {
	e := c.Exprs.Expr(s)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExpr, s.Label)
	}
	return e, nil
}

// substitute is CloneSubstHyps with its frame precondition checked.
func substitute(e *tree.Node, hyps []*stmt.Stmt, repl []*tree.Node) (*tree.Node, error) {
	var missing *stmt.Stmt
	e.Visit(func(y *tree.Node, isPost bool) (bool, error) {
		if !isPost && y.IsVarHyp() && slices.Index(hyps, y.Stmt) < 0 {
			missing = y.Stmt
		}
		return missing == nil, nil
	})
	if missing != nil {
		return nil, fmt.Errorf("%w: variable %s outside the mandatory frame", ErrMismatch, missing.Label)
	}
	return e.CloneSubstHyps(hyps, repl), nil
}
