package stmt

// Stmt is a statement handle.
//
// Var is the variable symbol of a variable hypothesis. Formula holds the
// math symbols following the type code. MandHyps is the ordered mandatory
// hypothesis frame of an assertion and fixes the arity of tree nodes
// labelled by it. OptHyps lists a theorem's optional variable hypotheses.
//
// VarID is a dense index, unique within a Table, assigned to variable
// hypotheses; it is -1 for every other kind.
type Stmt struct {
	Label    string
	Seq      int
	Kind     Kind
	TypeCode string
	Var      string
	Formula  []string
	MandHyps []*Stmt
	OptHyps  []*Stmt
	VarID    int
}

func (s *Stmt) IsHyp() bool       { return s.Kind.IsHyp() }
func (s *Stmt) IsVarHyp() bool    { return s.Kind.IsVarHyp() }
func (s *Stmt) IsWorkVar() bool   { return s.Kind == WorkVarHyp }
func (s *Stmt) IsAssertion() bool { return s.Kind.IsAssertion() }

// Arity is the number of children a tree node labelled by s has.
func (s *Stmt) Arity() int {
	if s.Kind.IsAssertion() {
		return len(s.MandHyps)
	}
	return 0
}

// VarHyps returns the variable hypotheses of the mandatory frame of s, in
// frame order.
func (s *Stmt) VarHyps() []*Stmt {
	var res []*Stmt
	for _, h := range s.MandHyps {
		if h.IsVarHyp() {
			res = append(res, h)
		}
	}
	return res
}

// HypIndex returns the position of h in the mandatory frame of s, or -1.
func (s *Stmt) HypIndex(h *Stmt) int {
	for i, mh := range s.MandHyps {
		if mh == h {
			return i
		}
	}
	return -1
}

func (s *Stmt) String() string {
	if s == nil {
		return "?"
	}
	return s.Label
}
