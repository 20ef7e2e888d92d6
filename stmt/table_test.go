package stmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTable(t *testing.T) (*Table, *Stmt, *Stmt, *Stmt) {
	t.Helper()
	tbl := NewTable()
	if err := tbl.AddConst("|-", "wff", "(", ")", "->"); err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddVar("ph", "ps"); err != nil {
		t.Fatal(err)
	}
	wph, err := tbl.AddVarHyp("wph", "wff", "ph", VarHyp)
	if err != nil {
		t.Fatal(err)
	}
	wps, err := tbl.AddVarHyp("wps", "wff", "ps", VarHyp)
	if err != nil {
		t.Fatal(err)
	}
	wi, err := tbl.AddAssertion("wi", Axiom, "wff", []string{"(", "ph", "->", "ps", ")"},
		[]*Stmt{wph, wps}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tbl, wph, wps, wi
}

func TestTable(t *testing.T) {
	tbl, wph, wps, wi := newTable(t)
	if tbl.Lookup("wi") != wi || tbl.Lookup("nope") != nil {
		t.Error("Lookup")
	}
	if wph.Seq != 1 || wps.Seq != 2 || wi.Seq != 3 || tbl.NextSeq() != 4 {
		t.Errorf("sequence numbers %d %d %d, next %d", wph.Seq, wps.Seq, wi.Seq, tbl.NextSeq())
	}
	if wph.VarID != 0 || wps.VarID != 1 || wi.VarID != -1 || tbl.NumVars() != 2 {
		t.Errorf("var ids %d %d %d, count %d", wph.VarID, wps.VarID, wi.VarID, tbl.NumVars())
	}
	if !tbl.IsConst("->") || tbl.IsVar("->") || !tbl.IsVar("ph") || !tbl.HasSymbol("ph") {
		t.Error("symbol classification")
	}
	if got := wi.Arity(); got != 2 {
		t.Errorf("Arity(wi) = %d", got)
	}
	if got := wph.Arity(); got != 0 {
		t.Errorf("Arity(wph) = %d", got)
	}
	if got := wi.HypIndex(wps); got != 1 {
		t.Errorf("HypIndex(wps) = %d", got)
	}
	var labels []string
	for _, s := range tbl.Stmts() {
		labels = append(labels, s.Label)
	}
	if diff := cmp.Diff([]string{"wph", "wps", "wi"}, labels); diff != "" {
		t.Errorf("Stmts (-want +got):\n%s", diff)
	}
}

func TestVarHyps(t *testing.T) {
	tbl, wph, wps, _ := newTable(t)
	hmin, err := tbl.AddLogHyp("min", "|-", []string{"ph"})
	if err != nil {
		t.Fatal(err)
	}
	ax, err := tbl.AddAssertion("ax-mp", Axiom, "|-", []string{"ps"},
		[]*Stmt{wph, wps, hmin}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*Stmt{wph, wps}, ax.VarHyps()); diff != "" {
		t.Errorf("VarHyps (-want +got):\n%s", diff)
	}
	if got := ax.HypIndex(hmin); got != 2 {
		t.Errorf("HypIndex(hmin) = %d", got)
	}
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		name string
		f    func(*Table) error
		want error
	}{
		{"duplicate const", func(tbl *Table) error { return tbl.AddConst("wff") }, ErrDuplicate},
		{"var shadows const", func(tbl *Table) error { return tbl.AddVar("->") }, ErrDuplicate},
		{"symbol is a label", func(tbl *Table) error { return tbl.AddConst("wi") }, ErrDuplicate},
		{"bad symbol", func(tbl *Table) error { return tbl.AddVar("a$") }, ErrBadName},
		{"bad label", func(tbl *Table) error {
			_, err := tbl.AddLogHyp("a:b", "|-", nil)
			return err
		}, ErrBadName},
		{"duplicate label", func(tbl *Table) error {
			_, err := tbl.AddLogHyp("wi", "|-", nil)
			return err
		}, ErrDuplicate},
		{"label is a symbol", func(tbl *Table) error {
			_, err := tbl.AddLogHyp("ph", "|-", nil)
			return err
		}, ErrDuplicate},
		{"undeclared variable", func(tbl *Table) error {
			_, err := tbl.AddVarHyp("wch", "wff", "ch", VarHyp)
			return err
		}, ErrUndefined},
		{"hyp kind", func(tbl *Table) error {
			_, err := tbl.AddVarHyp("wx", "wff", "ph", Axiom)
			return err
		}, ErrBadName},
		{"assertion kind", func(tbl *Table) error {
			_, err := tbl.AddAssertion("th", LogHyp, "|-", nil, nil, nil)
			return err
		}, ErrBadName},
		{"nil hypothesis", func(tbl *Table) error {
			_, err := tbl.AddAssertion("th", Theorem, "|-", nil, []*Stmt{nil}, nil)
			return err
		}, ErrUndefined},
		{"optional logical hypothesis", func(tbl *Table) error {
			h, err := tbl.AddLogHyp("h1", "|-", []string{"ph"})
			if err != nil {
				return err
			}
			_, err = tbl.AddAssertion("th", Theorem, "|-", nil, nil, []*Stmt{h})
			return err
		}, ErrUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, _, _, _ := newTable(t)
			if err := tt.f(tbl); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWorkVarLabel(t *testing.T) {
	tbl, _, _, _ := newTable(t)
	if err := tbl.AddVar("&W1"); err != nil {
		t.Fatal(err)
	}
	if _, err := tbl.AddVarHyp("&W1", "wff", "&W1", VarHyp); !errors.Is(err, ErrBadName) {
		t.Errorf("plain hypothesis labelled &W1: %v, want ErrBadName", err)
	}
	w, err := tbl.AddVarHyp("&W1", "wff", "&W1", WorkVarHyp)
	if err != nil {
		t.Fatal(err)
	}
	if !w.IsWorkVar() || !w.IsVarHyp() || w.VarID != 2 {
		t.Errorf("work variable %+v", w)
	}
}

func TestStmtString(t *testing.T) {
	var s *Stmt
	if got := s.String(); got != "?" {
		t.Errorf("nil String = %q", got)
	}
	_, wph, _, _ := newTable(t)
	if got := wph.String(); got != "wph" {
		t.Errorf("String = %q", got)
	}
}
