package codec

import (
	"strings"
	"testing"

	"github.com/signadot/mmproof/stmt"
)

type fixture struct {
	tbl           *stmt.Table
	wph, wps, wch *stmt.Stmt
	wn, wi        *stmt.Stmt
	min           *stmt.Stmt
	th, later     *stmt.Stmt
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
	if err := f.tbl.AddConst("wff", "|-", "(", ")", "->", "-."); err != nil {
		t.Fatal(err)
	}
	if err := f.tbl.AddVar("ph", "ps", "ch"); err != nil {
		t.Fatal(err)
	}
	f.wph = must(f.tbl.AddVarHyp("wph", "wff", "ph", stmt.VarHyp))
	f.wps = must(f.tbl.AddVarHyp("wps", "wff", "ps", stmt.VarHyp))
	f.wch = must(f.tbl.AddVarHyp("wch", "wff", "ch", stmt.VarHyp))
	f.wn = must(f.tbl.AddAssertion("wn", stmt.Axiom, "wff",
		strings.Fields("-. ph"), []*stmt.Stmt{f.wph}, nil))
	f.wi = must(f.tbl.AddAssertion("wi", stmt.Axiom, "wff",
		strings.Fields("( ph -> ps )"), []*stmt.Stmt{f.wph, f.wps}, nil))
	f.min = must(f.tbl.AddLogHyp("min", "|-", strings.Fields("ph")))
	f.th = must(f.tbl.AddAssertion("th", stmt.Theorem, "|-",
		strings.Fields("ph"), []*stmt.Stmt{f.wph, f.wps}, []*stmt.Stmt{f.wch}))
	f.later = must(f.tbl.AddAssertion("later", stmt.Axiom, "wff",
		strings.Fields("ph"), []*stmt.Stmt{f.wph}, nil))
	return f
}

func (f *fixture) input(other []string, blocks ...string) *Input {
	return &Input{
		Theorem:  f.th.Label,
		Seq:      f.th.Seq,
		Lookup:   f.tbl.Lookup,
		MandHyps: f.th.MandHyps,
		Other:    other,
		Blocks:   blocks,
	}
}

func stepLabels(ss Steps) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = s.Stmt.String()
	}
	return res
}

func stepLens(ss Steps) []int {
	res := make([]int, len(ss))
	for i, s := range ss {
		res[i] = s.Len
	}
	return res
}
