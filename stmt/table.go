package stmt

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicate = errors.New("duplicate")
	ErrBadName   = errors.New("bad name")
	ErrUndefined = errors.New("undefined")
)

// Table is the statement and symbol table of a logical database.
type Table struct {
	stmts   []*Stmt
	byLabel map[string]*Stmt
	consts  map[string]bool
	vars    map[string]bool
	nVars   int
}

func NewTable() *Table {
	return &Table{
		byLabel: map[string]*Stmt{},
		consts:  map[string]bool{},
		vars:    map[string]bool{},
	}
}

// Lookup returns the statement labelled label, or nil.
func (t *Table) Lookup(label string) *Stmt {
	return t.byLabel[label]
}

func (t *Table) HasLabel(label string) bool {
	_, ok := t.byLabel[label]
	return ok
}

// HasSymbol reports whether sym is a declared constant or variable.
func (t *Table) HasSymbol(sym string) bool {
	return t.consts[sym] || t.vars[sym]
}

func (t *Table) IsConst(sym string) bool { return t.consts[sym] }
func (t *Table) IsVar(sym string) bool   { return t.vars[sym] }

// NumVars is the number of variable ids handed out so far. Binding
// environments sized to NumVars can hold every variable hypothesis.
func (t *Table) NumVars() int {
	return t.nVars
}

// Stmts returns the statements in sequence order.
func (t *Table) Stmts() []*Stmt {
	return slices.Clone(t.stmts)
}

// NextSeq is the sequence number the next added statement receives.
func (t *Table) NextSeq() int {
	return len(t.stmts) + 1
}

func (t *Table) AddConst(syms ...string) error {
	for _, sym := range syms {
		if err := t.checkSymbol(sym); err != nil {
			return err
		}
		t.consts[sym] = true
	}
	return nil
}

func (t *Table) AddVar(syms ...string) error {
	for _, sym := range syms {
		if err := t.checkSymbol(sym); err != nil {
			return err
		}
		t.vars[sym] = true
	}
	return nil
}

func (t *Table) checkSymbol(sym string) error {
	if !ValidSymbol(sym) {
		return fmt.Errorf("%w: symbol %q", ErrBadName, sym)
	}
	if t.HasSymbol(sym) {
		return fmt.Errorf("%w: symbol %q", ErrDuplicate, sym)
	}
	if t.HasLabel(sym) {
		return fmt.Errorf("%w: symbol %q is a statement label", ErrDuplicate, sym)
	}
	return nil
}

// AddVarHyp declares a variable hypothesis "label $f typeCode v". The
// variable v must already be declared. kind must be VarHyp or WorkVarHyp.
func (t *Table) AddVarHyp(label, typeCode, v string, kind Kind) (*Stmt, error) {
	if !kind.IsVarHyp() {
		return nil, fmt.Errorf("%w: %s is not a variable hypothesis kind", ErrBadName, kind)
	}
	if !t.vars[v] {
		return nil, fmt.Errorf("%w: variable %q of %s", ErrUndefined, v, label)
	}
	s := &Stmt{
		Label:    label,
		Kind:     kind,
		TypeCode: typeCode,
		Var:      v,
		Formula:  []string{v},
		VarID:    t.nVars,
	}
	if err := t.add(s); err != nil {
		return nil, err
	}
	t.nVars++
	return s, nil
}

func (t *Table) AddLogHyp(label, typeCode string, formula []string) (*Stmt, error) {
	s := &Stmt{
		Label:    label,
		Kind:     LogHyp,
		TypeCode: typeCode,
		Formula:  formula,
		VarID:    -1,
	}
	if err := t.add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddAssertion declares an axiom or theorem with its mandatory frame and,
// for theorems, its optional variable hypotheses.
func (t *Table) AddAssertion(label string, kind Kind, typeCode string, formula []string, mand, opt []*Stmt) (*Stmt, error) {
	if !kind.IsAssertion() {
		return nil, fmt.Errorf("%w: %s is not an assertion kind", ErrBadName, kind)
	}
	for _, h := range mand {
		if h == nil || !h.IsHyp() {
			return nil, fmt.Errorf("%w: mandatory hypothesis of %s", ErrUndefined, label)
		}
	}
	for _, h := range opt {
		if h == nil || !h.IsVarHyp() {
			return nil, fmt.Errorf("%w: optional hypothesis of %s", ErrUndefined, label)
		}
	}
	s := &Stmt{
		Label:    label,
		Kind:     kind,
		TypeCode: typeCode,
		Formula:  formula,
		MandHyps: mand,
		OptHyps:  opt,
		VarID:    -1,
	}
	if err := t.add(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (t *Table) add(s *Stmt) error {
	// work variable hypotheses are labelled by their variable symbol
	workVar := s.Kind == WorkVarHyp && s.Label == s.Var
	switch {
	case workVar && !ValidSymbol(s.Label):
		return fmt.Errorf("%w: label %q", ErrBadName, s.Label)
	case !workVar && !ValidLabel(s.Label):
		return fmt.Errorf("%w: label %q", ErrBadName, s.Label)
	}
	if t.HasLabel(s.Label) {
		return fmt.Errorf("%w: label %q", ErrDuplicate, s.Label)
	}
	if !workVar && t.HasSymbol(s.Label) {
		return fmt.Errorf("%w: label %q is a math symbol", ErrDuplicate, s.Label)
	}
	s.Seq = t.NextSeq()
	t.stmts = append(t.stmts, s)
	t.byLabel[s.Label] = s
	return nil
}

// ValidSymbol reports whether sym is made only of printable non-space ASCII
// characters other than '$'.
func ValidSymbol(sym string) bool {
	if sym == "" {
		return false
	}
	for i := 0; i < len(sym); i++ {
		c := sym[i]
		if c <= ' ' || c > '~' || c == '$' {
			return false
		}
	}
	return true
}

// ValidLabel reports whether label is made only of letters, digits, '.',
// '-' and '_'.
func ValidLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
