package tree

import "github.com/signadot/mmproof/stmt"

// Bindings holds the current substitution of variable hypotheses, indexed
// by stmt.Stmt.VarID. A nil entry means unbound.
type Bindings struct {
	slots []*Node
}

// NewBindings returns an environment with room for n variables. It grows
// on demand.
func NewBindings(n int) *Bindings {
	return &Bindings{slots: make([]*Node, n)}
}

func (b *Bindings) Get(v *stmt.Stmt) *Node {
	if v == nil || v.VarID < 0 || v.VarID >= len(b.slots) {
		return nil
	}
	return b.slots[v.VarID]
}

func (b *Bindings) IsBound(v *stmt.Stmt) bool {
	return b.Get(v) != nil
}

func (b *Bindings) Set(v *stmt.Stmt, n *Node) {
	if v.VarID < 0 {
		panic(internalf("binding non variable %s", v.Label))
	}
	if v.VarID >= len(b.slots) {
		b.slots = append(b.slots, make([]*Node, v.VarID+1-len(b.slots))...)
	}
	b.slots[v.VarID] = n
}

func (b *Bindings) Clear(v *stmt.Stmt) {
	if v.VarID >= 0 && v.VarID < len(b.slots) {
		b.slots[v.VarID] = nil
	}
}

// Reset unbinds every variable.
func (b *Bindings) Reset() {
	clear(b.slots)
}
