package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeMandatory(t *testing.T) {
	f := newFixture(t)
	steps, err := Decode(f.input(nil, "BA"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"wps", "wph"}, stepLabels(steps)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1}, stepLens(steps)); diff != "" {
		t.Errorf("lengths (-want +got):\n%s", diff)
	}
}

func TestDecodeRepeats(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name   string
		other  []string
		blocks []string
		labels []string
		lens   []int
	}{
		{
			name:   "assertion lengths",
			other:  []string{"wi", "wn"},
			blocks: []string{"ABCD"},
			labels: []string{"wph", "wps", "wi", "wn"},
			lens:   []int{1, 1, 3, 4},
		},
		{
			name:   "repeat replays subproof",
			other:  []string{"wi", "wn"},
			blocks: []string{"ABCZDEC"},
			labels: []string{"wph", "wps", "wi", "wn", "wph", "wps", "wi", "wi"},
			lens:   []int{1, 1, 3, 4, 1, 1, 3, 8},
		},
		{
			name:   "split across blocks",
			other:  []string{"wi", "wn"},
			blocks: []string{"ABC", "ZD", "E", "C"},
			labels: []string{"wph", "wps", "wi", "wn", "wph", "wps", "wi", "wi"},
			lens:   []int{1, 1, 3, 4, 1, 1, 3, 8},
		},
		{
			name:   "other hypothesis",
			other:  []string{"wch", "wn"},
			blocks: []string{"CD"},
			labels: []string{"wch", "wn"},
			lens:   []int{1, 2},
		},
		{
			name:   "unknown step",
			other:  []string{"wi"},
			blocks: []string{"?BC"},
			labels: []string{"?", "wps", "wi"},
			lens:   []int{1, 1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := Decode(f.input(tt.other, tt.blocks...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.labels, stepLabels(steps)); diff != "" {
				t.Errorf("labels (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.lens, stepLens(steps)); diff != "" {
				t.Errorf("lengths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name   string
		other  []string
		blocks []string
		want   error
		block  int
		char   int
	}{
		{"no blocks", nil, nil, ErrNoBlocks, -1, -1},
		{"bad char", nil, []string{"Aa"}, ErrBadChar, 0, 1},
		{"space", nil, []string{"A B"}, ErrBadChar, 0, 1},
		{"unknown inside number", nil, []string{"AU?A"}, ErrCharInNumber, 0, 2},
		{"repeat inside number", nil, []string{"UZA"}, ErrCharInNumber, 0, 1},
		{"repeat first", nil, []string{"ZA"}, ErrBadRepeat, 0, 0},
		{"repeat twice", []string{"wn"}, []string{"ACZZ"}, ErrBadRepeat, 0, 3},
		{"repeat after unknown", nil, []string{"?Z"}, ErrBadRepeat, 0, 1},
		{"incomplete number", nil, []string{"A", "U"}, ErrIncompleteNumber, 1, 1},
		{"reference past end", nil, []string{"C"}, ErrBadRef, 0, 0},
		{"number past every reference", nil, []string{strings.Repeat("Y", 40) + "A"}, ErrBadRef, 0, 40},
		{"long number across blocks", nil, []string{strings.Repeat("Y", 30), strings.Repeat("U", 30) + "B"}, ErrBadRef, 1, 30},
		{"long number then unknown", nil, []string{strings.Repeat("Y", 40) + "?"}, ErrCharInNumber, 0, 40},
		{"assertion without operands", []string{"wi"}, []string{"C"}, ErrCorrupt, 0, 0},
		{"assertion short of operands", []string{"wi"}, []string{"AC"}, ErrCorrupt, 0, 1},
		{"label not found", []string{"nope"}, []string{"A"}, ErrLabelNotFound, -1, -1},
		{"forward reference", []string{"later"}, []string{"A"}, ErrForwardRef, -1, -1},
		{"self reference", []string{"th"}, []string{"A"}, ErrForwardRef, -1, -1},
		{"logical hypothesis", []string{"min"}, []string{"A"}, ErrBadLabelKind, -1, -1},
		{"hypothesis after assertion", []string{"wn", "wch"}, []string{"A"}, ErrHypAfterAssertion, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(f.input(tt.other, tt.blocks...))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("%v is not a *Error", err)
			}
			if cerr.Theorem != "th" {
				t.Errorf("theorem %q, want th", cerr.Theorem)
			}
			if cerr.Block != tt.block || cerr.Char != tt.char {
				t.Errorf("position block %d char %d, want %d %d", cerr.Block, cerr.Char, tt.block, tt.char)
			}
		})
	}
}

func TestDecodeOptional(t *testing.T) {
	f := newFixture(t)
	in := f.input([]string{"wch"}, "C")
	in.OptHyps = f.th.OptHyps
	if _, err := Decode(in); err != nil {
		t.Fatal(err)
	}
	in.OptHyps = f.th.OptHyps[:0]
	if _, err := Decode(in); !errors.Is(err, ErrNotOptional) {
		t.Errorf("got %v, want ErrNotOptional", err)
	}
}

func TestDecoderReuse(t *testing.T) {
	f := newFixture(t)
	d := NewDecoder()
	first, err := d.Decode(f.input([]string{"wi"}, "ABC"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.Decode(f.input(nil, "B"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"wph", "wps", "wi"}, stepLabels(first)); diff != "" {
		t.Errorf("first result changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"wps"}, stepLabels(second)); diff != "" {
		t.Errorf("second result (-want +got):\n%s", diff)
	}
	if _, err := d.Decode(f.input(nil, "Q?")); err == nil {
		t.Fatal("expected error")
	}
	third, err := d.Decode(f.input(nil, "A"))
	if err != nil {
		t.Fatal(err)
	}
	if len(third) != 1 {
		t.Errorf("stale scratch after error: %d steps", len(third))
	}
}

func TestStepsTree(t *testing.T) {
	f := newFixture(t)
	steps, err := Decode(f.input([]string{"wi", "wn"}, "ABCZDEC"))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := steps.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tr.String(), "wi(wn(wi(wph,wps)),wi(wph,wps))"; got != want {
		t.Errorf("tree %s, want %s", got, want)
	}
}
