package workvar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckOccurs(t *testing.T) {
	tests := []struct {
		name  string
		binds map[string]string
		term  string
		want  Occurs
	}{
		{"absent", nil, "wph &W2 wi", NoOccurrence},
		{"absent through binding", map[string]string{"&W2": "wps"}, "&W2 wn", NoOccurrence},
		{"unbound alias", nil, "&W2", NoOccurrence},
		{"self", nil, "&W1", RenameLoop},
		{"alias loop", map[string]string{"&W2": "&W3", "&W3": "&W1"}, "&W2", RenameLoop},
		{"direct", nil, "&W1 wn", OccursError},
		{"inside binding", map[string]string{"&W2": "&W1 wn"}, "wph &W2 wi", OccursError},
		{"chain ending in structure", map[string]string{"&W2": "&W3", "&W3": "&W1 wph wi"}, "&W2", OccursError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			p := f.vars.NewPool()
			for _, l := range []string{"&W1", "&W2", "&W3"} {
				if _, err := p.AllocToken(l); err != nil {
					t.Fatal(err)
				}
			}
			for l, rpn := range tt.binds {
				p.Bindings().Set(f.tbl.Lookup(l), f.parse(t, rpn))
			}
			got := p.CheckOccurs(f.tbl.Lookup("&W1"), f.parse(t, tt.term))
			if got != tt.want {
				t.Errorf("CheckOccurs(&W1, %s) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestUnify(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		ok   bool
		// want maps bound work variables to their resolved values.
		want map[string]string
	}{
		{
			name: "both sides",
			a:    "&W1 wps wi",
			b:    "wph wn &W2 wi",
			ok:   true,
			want: map[string]string{"&W1": "wn(wph)", "&W2": "wps"},
		},
		{
			name: "same variable",
			a:    "&W1 &W1 wi",
			b:    "&W1 &W1 wi",
			ok:   true,
			want: map[string]string{},
		},
		{
			name: "consistent repeat",
			a:    "&W1 &W1 wi",
			b:    "wph wn &W2 wi",
			ok:   true,
			want: map[string]string{"&W1": "wn(wph)", "&W2": "wn(wph)"},
		},
		{
			name: "occurs",
			a:    "&W1",
			b:    "&W1 wn",
			ok:   false,
			want: map[string]string{},
		},
		{
			name: "rolled back",
			a:    "wph &W1 wi",
			b:    "wps wph wn wi",
			ok:   false,
			want: map[string]string{},
		},
		{
			name: "type code",
			a:    "&C1",
			b:    "wph",
			ok:   false,
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			p := f.vars.NewPool()
			for _, l := range []string{"&W1", "&W2", "&C1"} {
				if _, err := p.AllocToken(l); err != nil {
					t.Fatal(err)
				}
			}
			if ok := p.Unify(f.parse(t, tt.a), f.parse(t, tt.b)); ok != tt.ok {
				t.Fatalf("Unify = %v, want %v", ok, tt.ok)
			}
			got := map[string]string{}
			for _, v := range p.Allocated() {
				if b := p.Bindings().Get(v); b != nil {
					got[v.Label] = p.Resolve(b).String()
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("bindings (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInstantiate(t *testing.T) {
	f := newFixture(t)
	p := f.vars.NewPool()
	expr := f.parse(t, "wph wps wi")
	got, fresh, err := p.Instantiate(f.wi, expr)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"&W1", "&W2"}, labelsOf(fresh)); diff != "" {
		t.Errorf("fresh (-want +got):\n%s", diff)
	}
	if want := "wi(&W1,&W2)"; got.String() != want {
		t.Errorf("Instantiate = %s, want %s", got, want)
	}
	if want := "wi(wph,wps)"; expr.String() != want {
		t.Errorf("source changed to %s", expr)
	}
	if !p.Unify(got, f.parse(t, "wps wph wn wi")) {
		t.Fatal("instance does not unify")
	}
	if want := "wi(wps,wn(wph))"; p.Resolve(got).String() != want {
		t.Errorf("resolved instance = %s, want %s", p.Resolve(got), want)
	}
}

func TestInstantiateExhausted(t *testing.T) {
	f := newFixture(t)
	p := f.vars.NewPool()
	for range f.vars.Count("wff") - 1 {
		if _, err := p.Alloc("wff"); err != nil {
			t.Fatal(err)
		}
	}
	_, _, err := p.Instantiate(f.wi, f.parse(t, "wph wps wi"))
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Instantiate = %v, want ErrExhausted", err)
	}
	if got, want := len(p.Allocated()), f.vars.Count("wff")-1; got != want {
		t.Errorf("%d allocated after failure, want %d", got, want)
	}
}
