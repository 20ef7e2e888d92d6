package tree

import (
	"strings"

	"github.com/signadot/mmproof/stmt"
)

// Tree owns a root node and caches derived facts about it.
type Tree struct {
	root *Node

	maxDepth    int
	levelOneTwo string
	haveL12     bool
}

func New(root *Node) *Tree {
	return &Tree{root: root, maxDepth: -1}
}

func (t *Tree) Root() *Node {
	return t.root
}

// SetRoot replaces the root and invalidates the cached depth and signature.
func (t *Tree) SetRoot(n *Node) {
	t.root = n
	t.invalidate()
}

func (t *Tree) invalidate() {
	t.maxDepth = -1
	t.levelOneTwo = ""
	t.haveL12 = false
}

// MaxDepth is the depth of the tree, ignoring work variable leaves.
func (t *Tree) MaxDepth() int {
	if t.maxDepth < 0 {
		t.maxDepth = t.root.MaxDepth()
	}
	return t.maxDepth
}

// LevelOneTwo is the root's label followed by its children's labels,
// space separated.
func (t *Tree) LevelOneTwo() string {
	if !t.haveL12 {
		t.levelOneTwo = t.root.LevelOneTwo()
		t.haveL12 = true
	}
	return t.levelOneTwo
}

func (n *Node) LevelOneTwo() string {
	parts := make([]string, 0, 1+len(n.Child))
	parts = append(parts, n.Label())
	for _, c := range n.Child {
		parts = append(parts, c.Label())
	}
	return strings.Join(parts, " ")
}

func (t *Tree) Clone() *Tree {
	return New(t.root.Clone())
}

func (t *Tree) CountParseNodes(expanded bool) int {
	return t.root.CountParseNodes(expanded)
}

func (t *Tree) ToRPN(expanded bool) []RPNStep {
	return t.root.ToRPN(expanded)
}

// Stmts returns the fully expanded postfix label sequence of the tree.
func (t *Tree) Stmts() []*stmt.Stmt {
	rpn := t.root.ToRPN(true)
	res := make([]*stmt.Stmt, len(rpn))
	for i := range rpn {
		res[i] = rpn[i].Stmt
	}
	return res
}

// SquishTree maximizes sharing of structurally equal subtrees. See
// Node.Squish.
func (t *Tree) SquishTree() bool {
	if !t.root.Squish() {
		return false
	}
	t.invalidate()
	return true
}

func (t *Tree) String() string {
	return t.root.String()
}
