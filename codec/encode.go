package codec

import (
	"fmt"
	"strings"

	"github.com/signadot/mmproof/debug"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

// Compressed is an encoded proof.
type Compressed struct {
	Other  []string
	Blocks []string
}

// Text is the concatenation of the blocks.
func (c *Compressed) Text() string {
	return strings.Join(c.Blocks, "")
}

type Encoder struct {
	width  int
	squish bool
}

func NewEncoder(opts ...EncodeOption) *Encoder {
	e := &Encoder{width: DefaultLineWidth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the proof tree t of a theorem with mandatory hypotheses
// mandHyps. Every hypothesis used in t that is not mandatory must be a
// variable hypothesis.
func (e *Encoder) Encode(mandHyps []*stmt.Stmt, t *tree.Tree) (*Compressed, error) {
	root := t.Root()
	if e.squish {
		root = root.Clone()
		tree.New(root).SquishTree()
	}
	rpn := unmarkLeaves(root.ToRPN(false))

	numbers := make(map[*stmt.Stmt]int, len(mandHyps))
	for i, h := range mandHyps {
		numbers[h] = i + 1
	}
	var hyps, asserts []*stmt.Stmt
	for _, s := range rpn {
		if s.BackRef > 0 || s.Stmt == nil {
			continue
		}
		if _, ok := numbers[s.Stmt]; ok {
			continue
		}
		switch {
		case s.Stmt.IsVarHyp():
			hyps = append(hyps, s.Stmt)
		case s.Stmt.IsAssertion():
			asserts = append(asserts, s.Stmt)
		default:
			return nil, fmt.Errorf("%w: %s is not a mandatory hypothesis", ErrEncode, s.Stmt.Label)
		}
		numbers[s.Stmt] = -1
	}
	res := &Compressed{}
	next := len(mandHyps) + 1
	for _, l := range [][]*stmt.Stmt{hyps, asserts} {
		for _, s := range l {
			numbers[s] = next
			next++
			res.Other = append(res.Other, s.Label)
		}
	}
	refBase := next - 1

	var b strings.Builder
	for _, s := range rpn {
		switch {
		case s.BackRef > 0:
			b.WriteString(EncodeNumber(refBase + s.BackRef))
		case s.Stmt == nil:
			b.WriteByte('?')
		default:
			b.WriteString(EncodeNumber(numbers[s.Stmt]))
		}
		if s.Mark {
			b.WriteByte('Z')
		}
	}
	res.Blocks = split(b.String(), e.width)
	if debug.Encode() {
		debug.Logf("codec: encoded %d steps as %d chars, %d other labels\n",
			len(rpn), b.Len(), len(res.Other))
	}
	return res, nil
}

// unmarkLeaves drops reuse marks on single step subtrees, writing later
// references to them as the leaf itself, and renumbers the remaining
// back-references.
func unmarkLeaves(rpn []tree.RPNStep) []tree.RPNStep {
	type target struct {
		ref  int
		leaf tree.RPNStep
	}
	var (
		targets []target
		nMarked int
	)
	res := make([]tree.RPNStep, 0, len(rpn))
	for _, s := range rpn {
		if s.BackRef > 0 {
			tgt := targets[s.BackRef-1]
			if tgt.ref == 0 {
				res = append(res, tgt.leaf)
				continue
			}
			res = append(res, tree.RPNStep{BackRef: tgt.ref})
			continue
		}
		if !s.Mark {
			res = append(res, s)
			continue
		}
		if s.Stmt == nil || s.Stmt.Arity() == 0 {
			leaf := tree.RPNStep{Stmt: s.Stmt}
			targets = append(targets, target{leaf: leaf})
			res = append(res, leaf)
			continue
		}
		nMarked++
		targets = append(targets, target{ref: nMarked})
		res = append(res, s)
	}
	return res
}

func split(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	res := make([]string, 0, (len(s)+width-1)/width)
	for len(s) > width {
		res = append(res, s[:width])
		s = s[width:]
	}
	if s != "" {
		res = append(res, s)
	}
	return res
}
