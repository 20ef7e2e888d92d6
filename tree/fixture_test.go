package tree

import (
	"strings"
	"testing"

	"github.com/signadot/mmproof/stmt"
)

// fixture is a small propositional syntax: wff variables ph ps ch, negation
// and implication, plus two wff work variables.
type fixture struct {
	tbl           *stmt.Table
	wph, wps, wch *stmt.Stmt
	wn, wi        *stmt.Stmt
	w1, w2        *stmt.Stmt
}

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
	if err := f.tbl.AddConst("wff", "(", ")", "->", "-."); err != nil {
		t.Fatal(err)
	}
	if err := f.tbl.AddVar("ph", "ps", "ch", "&W1", "&W2"); err != nil {
		t.Fatal(err)
	}
	f.wph = must(f.tbl.AddVarHyp("wph", "wff", "ph", stmt.VarHyp))
	f.wps = must(f.tbl.AddVarHyp("wps", "wff", "ps", stmt.VarHyp))
	f.wch = must(f.tbl.AddVarHyp("wch", "wff", "ch", stmt.VarHyp))
	f.wn = must(f.tbl.AddAssertion("wn", stmt.Axiom, "wff",
		strings.Fields("-. ph"), []*stmt.Stmt{f.wph}, nil))
	f.wi = must(f.tbl.AddAssertion("wi", stmt.Axiom, "wff",
		strings.Fields("( ph -> ps )"), []*stmt.Stmt{f.wph, f.wps}, nil))
	f.w1 = must(f.tbl.AddVarHyp("&W1", "wff", "&W1", stmt.WorkVarHyp))
	f.w2 = must(f.tbl.AddVarHyp("&W2", "wff", "&W2", stmt.WorkVarHyp))
	return f
}

// parse builds a tree from a space separated postfix label string.
func (f *fixture) parse(t testing.TB, rpn string) *Node {
	t.Helper()
	tr, err := FromLabels(strings.Fields(rpn), f.tbl.Lookup)
	if err != nil {
		t.Fatalf("parse %q: %v", rpn, err)
	}
	return tr.Root()
}

func labels(steps []RPNStep) []string {
	res := make([]string, len(steps))
	for i, s := range steps {
		res[i] = s.String()
	}
	return res
}
