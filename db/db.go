package db

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

var (
	ErrLoad    = errors.New("cannot load database")
	ErrNoProof = errors.New("theorem has no proof")
)

// DB is a loaded logical database.
type DB struct {
	Table *stmt.Table
	// Exprs holds the syntax parse of every statement that has one.
	Exprs    map[*stmt.Stmt]*tree.Node
	Proofs   map[*stmt.Stmt]*ProofDef
	Theorems []*stmt.Stmt
}

func LoadFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func Load(r io.Reader) (*DB, error) {
	var file File
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Build(&file)
}

// Build creates the database described by file.
func Build(file *File) (*DB, error) {
	d := &DB{
		Table:  stmt.NewTable(),
		Exprs:  map[*stmt.Stmt]*tree.Node{},
		Proofs: map[*stmt.Stmt]*ProofDef{},
	}
	if err := d.Table.AddConst(file.Constants...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := d.Table.AddVar(file.Variables...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	for i := range file.Statements {
		def := &file.Statements[i]
		if err := d.add(def); err != nil {
			return nil, fmt.Errorf("%w: statement %d (%s): %w", ErrLoad, i+1, def.Label, err)
		}
	}
	return d, nil
}

func (d *DB) add(def *StmtDef) error {
	var kind stmt.Kind
	if err := kind.UnmarshalText([]byte(def.Kind)); err != nil {
		return err
	}
	if kind == stmt.WorkVarHyp {
		return fmt.Errorf("work variables are not declared in databases")
	}
	if def.Type == "" {
		return fmt.Errorf("missing type code")
	}
	formula := strings.Fields(def.Formula)
	for _, sym := range formula {
		if !d.Table.HasSymbol(sym) {
			return fmt.Errorf("%w: symbol %q", stmt.ErrUndefined, sym)
		}
	}
	var (
		s   *stmt.Stmt
		err error
	)
	switch kind {
	case stmt.VarHyp:
		s, err = d.Table.AddVarHyp(def.Label, def.Type, def.Var, kind)
	case stmt.LogHyp:
		s, err = d.Table.AddLogHyp(def.Label, def.Type, formula)
	default:
		var mand, opt []*stmt.Stmt
		if mand, err = d.lookupAll(def.Hyps); err != nil {
			return err
		}
		if opt, err = d.lookupAll(def.Optional); err != nil {
			return err
		}
		s, err = d.Table.AddAssertion(def.Label, kind, def.Type, formula, mand, opt)
	}
	if err != nil {
		return err
	}
	if def.Syntax != "" {
		if err := d.addSyntax(s, def.Syntax); err != nil {
			return err
		}
	}
	if def.Proof != nil {
		if kind != stmt.Theorem {
			return fmt.Errorf("%s has a proof", kind)
		}
		d.Proofs[s] = def.Proof
	}
	if kind == stmt.Theorem {
		d.Theorems = append(d.Theorems, s)
	}
	return nil
}

// lookupAll resolves labels, returning nil for none.
func (d *DB) lookupAll(labels []string) ([]*stmt.Stmt, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	res := make([]*stmt.Stmt, len(labels))
	for i, l := range labels {
		if res[i] = d.Table.Lookup(l); res[i] == nil {
			return nil, fmt.Errorf("%w: label %q", stmt.ErrUndefined, l)
		}
	}
	return res, nil
}

// addSyntax parses the postfix syntax of s and checks that it renders
// the formula of s. The syntax of an assertion or of its logical
// hypotheses may only use the assertion's mandatory variables.
func (d *DB) addSyntax(s *stmt.Stmt, syntax string) error {
	t, err := tree.FromLabels(strings.Fields(syntax), d.lookupBefore(s.Seq))
	if err != nil {
		return fmt.Errorf("syntax: %w", err)
	}
	e := t.Root()
	if e.Stmt == nil || e.Stmt.TypeCode == s.TypeCode {
		return fmt.Errorf("syntax: %q is not a syntax parse", syntax)
	}
	got, err := render(e)
	if err != nil {
		return fmt.Errorf("syntax: %w", err)
	}
	if !slices.Equal(got, s.Formula) {
		return fmt.Errorf("syntax renders %q, want %q",
			strings.Join(got, " "), strings.Join(s.Formula, " "))
	}
	if s.IsAssertion() {
		frame := s.VarHyps()
		check := []*tree.Node{e}
		for _, h := range s.MandHyps {
			if !h.IsVarHyp() && d.Exprs[h] != nil {
				check = append(check, d.Exprs[h])
			}
		}
		for _, c := range check {
			if v := outside(c, frame); v != nil {
				return fmt.Errorf("variable %s is not in the mandatory frame", v.Label)
			}
		}
	}
	d.Exprs[s] = e
	return nil
}

func (d *DB) lookupBefore(seq int) func(string) *stmt.Stmt {
	return func(label string) *stmt.Stmt {
		s := d.Table.Lookup(label)
		if s == nil || s.Seq >= seq {
			return nil
		}
		return s
	}
}

// render rewrites a syntax tree into the symbols it parses.
func render(n *tree.Node) ([]string, error) {
	s := n.Stmt
	if s == nil {
		return nil, fmt.Errorf("unknown step in syntax")
	}
	if s.IsVarHyp() {
		return []string{s.Var}, nil
	}
	if s.IsHyp() {
		return nil, fmt.Errorf("logical hypothesis %s in syntax", s.Label)
	}
	var res []string
	for _, sym := range s.Formula {
		i := slices.IndexFunc(s.MandHyps, func(h *stmt.Stmt) bool {
			return h.IsVarHyp() && h.Var == sym
		})
		if i < 0 {
			res = append(res, sym)
			continue
		}
		sub, err := render(n.Child[i])
		if err != nil {
			return nil, err
		}
		res = append(res, sub...)
	}
	return res, nil
}

func outside(e *tree.Node, frame []*stmt.Stmt) *stmt.Stmt {
	var res *stmt.Stmt
	e.Visit(func(y *tree.Node, isPost bool) (bool, error) {
		if !isPost && y.IsVarHyp() && !slices.Contains(frame, y.Stmt) {
			res = y.Stmt
		}
		return res == nil, nil
	})
	return res
}

// Expr returns the syntax parse of s. A variable hypothesis parses as
// itself.
func (d *DB) Expr(s *stmt.Stmt) *tree.Node {
	if s.IsVarHyp() {
		return tree.Leaf(s)
	}
	return d.Exprs[s]
}

// Theorem returns the theorem labelled label, or nil.
func (d *DB) Theorem(label string) *stmt.Stmt {
	s := d.Table.Lookup(label)
	if s == nil || s.Kind != stmt.Theorem {
		return nil
	}
	return s
}

// DecodeInput describes the stored proof of thm for decoding.
func (d *DB) DecodeInput(thm *stmt.Stmt) (*codec.Input, error) {
	p := d.Proofs[thm]
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoProof, thm.Label)
	}
	return &codec.Input{
		Theorem:  thm.Label,
		Seq:      thm.Seq,
		Lookup:   d.Table.Lookup,
		MandHyps: thm.MandHyps,
		OptHyps:  thm.OptHyps,
		Other:    p.Other,
		Blocks:   p.Blocks,
	}, nil
}
