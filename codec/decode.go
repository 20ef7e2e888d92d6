package codec

import (
	"fmt"
	"slices"

	"github.com/signadot/mmproof/debug"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

// Input describes one compressed proof to decode.
//
// Seq is the sequence number of the theorem being proved; every other label
// must have been declared before it. OptHyps, when non-nil, restricts the
// other variable hypotheses to the theorem's optional hypotheses.
type Input struct {
	Theorem  string
	Seq      int
	Lookup   func(label string) *stmt.Stmt
	MandHyps []*stmt.Stmt
	OptHyps  []*stmt.Stmt
	Other    []string
	Blocks   []string
}

// Step is one decoded proof step and the length, in steps, of the subproof
// ending at it. Stmt is nil for an unknown step.
type Step struct {
	Stmt *stmt.Stmt
	Len  int
}

type Steps []Step

func (ss Steps) Stmts() []*stmt.Stmt {
	res := make([]*stmt.Stmt, len(ss))
	for i := range ss {
		res[i] = ss[i].Stmt
	}
	return res
}

// Tree builds the proof tree of the steps.
func (ss Steps) Tree() (*tree.Tree, error) {
	return tree.FromStmts(ss.Stmts())
}

// Decoder turns compressed proofs into step sequences. Its scratch space is
// reused across calls.
type Decoder struct {
	otherHyps    []*stmt.Stmt
	otherAsserts []*stmt.Stmt
	repeats      []int
	steps        []Step
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes in with a fresh Decoder.
func Decode(in *Input) (Steps, error) {
	return NewDecoder().Decode(in)
}

type lastToken int

const (
	lastNone lastToken = iota
	lastNumber
	lastUnknown
	lastRepeat
)

// Decode decodes in. The returned steps do not share memory with the
// decoder.
func (d *Decoder) Decode(in *Input) (Steps, error) {
	d.reset()
	if err := d.resolveOther(in); err != nil {
		return nil, err
	}
	if len(in.Blocks) == 0 {
		return nil, posErr(in.Theorem, -1, -1, ErrNoBlocks)
	}
	var (
		n        int
		inNumber bool
		last     = lastNone
	)
	for b, block := range in.Blocks {
		for i := 0; i < len(block); i++ {
			c := block[i]
			switch {
			case isLow(c):
				n += lowValue(c) + 1
				if err := d.ref(in, n-1); err != nil {
					return nil, posErr(in.Theorem, b, i, err)
				}
				n, inNumber, last = 0, false, lastNumber
			case isHigh(c):
				// capped: every value from refCount on is out of range
				n = min(n*highBase+highValue(c), d.refCount(in))
				inNumber = true
			case c == '?':
				if inNumber {
					return nil, posErr(in.Theorem, b, i, fmt.Errorf("%w: '?'", ErrCharInNumber))
				}
				d.steps = append(d.steps, Step{Len: 1})
				last = lastUnknown
			case c == 'Z':
				if inNumber {
					return nil, posErr(in.Theorem, b, i, fmt.Errorf("%w: 'Z'", ErrCharInNumber))
				}
				if last != lastNumber {
					return nil, posErr(in.Theorem, b, i, fmt.Errorf("%w: 'Z' must follow a number", ErrBadRepeat))
				}
				d.repeats = append(d.repeats, len(d.steps)-1)
				last = lastRepeat
			default:
				return nil, posErr(in.Theorem, b, i, fmt.Errorf("%w: %q", ErrBadChar, c))
			}
		}
	}
	if inNumber {
		lb := len(in.Blocks) - 1
		return nil, posErr(in.Theorem, lb, len(in.Blocks[lb]), ErrIncompleteNumber)
	}
	if debug.Codec() {
		debug.Logf("codec: %s decoded %d steps, %d repeats\n", in.Theorem, len(d.steps), len(d.repeats))
	}
	return slices.Clone(d.steps), nil
}

func (d *Decoder) reset() {
	d.otherHyps = d.otherHyps[:0]
	d.otherAsserts = d.otherAsserts[:0]
	d.repeats = d.repeats[:0]
	d.steps = d.steps[:0]
}

func (d *Decoder) resolveOther(in *Input) error {
	for _, label := range in.Other {
		s := in.Lookup(label)
		if s == nil {
			return labelErr(in.Theorem, label, ErrLabelNotFound)
		}
		if s.Seq >= in.Seq {
			return labelErr(in.Theorem, label, ErrForwardRef)
		}
		switch {
		case s.IsVarHyp():
			if len(d.otherAsserts) > 0 {
				return labelErr(in.Theorem, label, ErrHypAfterAssertion)
			}
			if in.OptHyps != nil && !slices.Contains(in.OptHyps, s) {
				return labelErr(in.Theorem, label, ErrNotOptional)
			}
			d.otherHyps = append(d.otherHyps, s)
		case s.IsAssertion():
			d.otherAsserts = append(d.otherAsserts, s)
		default:
			return labelErr(in.Theorem, label, ErrBadLabelKind)
		}
	}
	return nil
}

// refCount is the number of references a number may currently name.
func (d *Decoder) refCount(in *Input) int {
	return len(in.MandHyps) + len(d.otherHyps) + len(d.otherAsserts) + len(d.repeats)
}

// ref appends the step(s) for the 0-based reference idx.
func (d *Decoder) ref(in *Input, idx int) error {
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrBadRef, idx+1)
	}
	if idx < len(in.MandHyps) {
		d.steps = append(d.steps, Step{Stmt: in.MandHyps[idx], Len: 1})
		return nil
	}
	idx -= len(in.MandHyps)
	if idx < len(d.otherHyps) {
		d.steps = append(d.steps, Step{Stmt: d.otherHyps[idx], Len: 1})
		return nil
	}
	idx -= len(d.otherHyps)
	if idx < len(d.otherAsserts) {
		a := d.otherAsserts[idx]
		n, err := d.subproofLen(a)
		if err != nil {
			return err
		}
		d.steps = append(d.steps, Step{Stmt: a, Len: n})
		return nil
	}
	idx -= len(d.otherAsserts)
	if idx < len(d.repeats) {
		end := d.repeats[idx]
		start := end + 1 - d.steps[end].Len
		if start < 0 {
			return fmt.Errorf("%w: repeated subproof %d starts before the proof", ErrCorrupt, idx+1)
		}
		d.steps = append(d.steps, d.steps[start:end+1]...)
		return nil
	}
	idx -= len(d.repeats)
	return fmt.Errorf("%w: %d past the last reference", ErrBadRef, idx+1)
}

// subproofLen is 1 plus the lengths of the a.Arity() subproofs ending at
// the current end of output, found by hopping back one subproof at a time.
func (d *Decoder) subproofLen(a *stmt.Stmt) (int, error) {
	ttl := 1
	pos := len(d.steps) - 1
	for k := range a.Arity() {
		if pos < 0 {
			return 0, fmt.Errorf("%w: %s needs %d operands, found %d", ErrCorrupt, a.Label, a.Arity(), k)
		}
		n := d.steps[pos].Len
		if n < 1 || pos-n < -1 {
			return 0, fmt.Errorf("%w: subproof length %d at step %d", ErrCorrupt, n, pos)
		}
		ttl += n
		pos -= n
	}
	return ttl, nil
}
