package workvar

import (
	"strings"
	"testing"

	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

type fixture struct {
	tbl      *stmt.Table
	wph, wps *stmt.Stmt
	wn, wi   *stmt.Stmt
	vars     *Vars
}

// newFixture declares wff work variables &W1..&W10 and class work
// variables &C1..&C10 over a small propositional syntax.
func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{tbl: stmt.NewTable()}
	must := func(s *stmt.Stmt, err error) *stmt.Stmt {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	if err := f.tbl.AddConst("wff", "class", "(", ")", "->", "-."); err != nil {
		t.Fatal(err)
	}
	if err := f.tbl.AddVar("ph", "ps"); err != nil {
		t.Fatal(err)
	}
	f.wph = must(f.tbl.AddVarHyp("wph", "wff", "ph", stmt.VarHyp))
	f.wps = must(f.tbl.AddVarHyp("wps", "wff", "ps", stmt.VarHyp))
	f.wn = must(f.tbl.AddAssertion("wn", stmt.Axiom, "wff",
		strings.Fields("-. ph"), []*stmt.Stmt{f.wph}, nil))
	f.wi = must(f.tbl.AddAssertion("wi", stmt.Axiom, "wff",
		strings.Fields("( ph -> ps )"), []*stmt.Stmt{f.wph, f.wps}, nil))
	r := NewRegistry()
	if err := r.Define("wff", "&W", 10); err != nil {
		t.Fatal(err)
	}
	if err := r.Define("class", "&C", 10); err != nil {
		t.Fatal(err)
	}
	vs, err := r.Declare(f.tbl)
	if err != nil {
		t.Fatal(err)
	}
	f.vars = vs
	return f
}

func (f *fixture) parse(t testing.TB, rpn string) *tree.Node {
	t.Helper()
	tr, err := tree.FromLabels(strings.Fields(rpn), f.tbl.Lookup)
	if err != nil {
		t.Fatalf("parse %q: %v", rpn, err)
	}
	return tr.Root()
}

func labelsOf(vs []*stmt.Stmt) []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.Label
	}
	return res
}
