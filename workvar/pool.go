package workvar

import (
	"fmt"

	"github.com/signadot/mmproof/debug"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

type typeState struct {
	tv    *typeVars
	alloc []bool
	last  int
}

// Pool is the allocation state and binding environment of one session.
type Pool struct {
	vars  *Vars
	b     *tree.Bindings
	types []*typeState
	byTyp map[string]*typeState
}

// NewPool returns a pool with every work variable free and unbound.
func (vs *Vars) NewPool() *Pool {
	p := &Pool{
		vars:  vs,
		b:     tree.NewBindings(vs.nVars),
		byTyp: map[string]*typeState{},
	}
	for _, tv := range vs.types {
		ts := &typeState{tv: tv, alloc: make([]bool, len(tv.vars)), last: -1}
		p.types = append(p.types, ts)
		p.byTyp[tv.typeCode] = ts
	}
	return p
}

func (p *Pool) Vars() *Vars {
	return p.vars
}

// Bindings is the pool's binding environment. Variables of the database
// may be bound in it too.
func (p *Pool) Bindings() *tree.Bindings {
	return p.b
}

// Alloc returns the first free work variable of typeCode after the most
// recently allocated one, wrapping around. Its binding is cleared.
func (p *Pool) Alloc(typeCode string) (*stmt.Stmt, error) {
	ts := p.byTyp[typeCode]
	if ts == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeCode)
	}
	n := len(ts.alloc)
	for k := 1; k <= n; k++ {
		i := (ts.last + k) % n
		if ts.alloc[i] {
			continue
		}
		ts.alloc[i] = true
		ts.last = i
		v := ts.tv.vars[i]
		p.b.Clear(v)
		if debug.Pool() {
			debug.Logf("workvar: alloc %s\n", v.Label)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: type %s, maximum %d", ErrExhausted, typeCode, n)
}

// AllocToken allocates the work variable labelled label. If it is already
// allocated it is returned as is, binding included.
func (p *Pool) AllocToken(label string) (*stmt.Stmt, error) {
	typeCode, i, ok := p.vars.Lookup(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotWorkVar, label)
	}
	ts := p.byTyp[typeCode]
	v := ts.tv.vars[i]
	if ts.alloc[i] {
		return v, nil
	}
	ts.alloc[i] = true
	p.b.Clear(v)
	return v, nil
}

// Dealloc frees v and clears its binding. The allocation cursor is rewound
// so that the lowest freed index is preferred next.
func (p *Pool) Dealloc(v *stmt.Stmt) error {
	pos, ok := p.vars.pos[v]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWorkVar, v.Label)
	}
	ts := p.byTyp[pos.typeCode]
	ts.alloc[pos.index] = false
	p.b.Clear(v)
	if pos.index-1 < ts.last {
		ts.last = pos.index - 1
	}
	if debug.Pool() {
		debug.Logf("workvar: dealloc %s\n", v.Label)
	}
	return nil
}

func (p *Pool) IsAllocated(v *stmt.Stmt) bool {
	pos, ok := p.vars.pos[v]
	if !ok {
		return false
	}
	return p.byTyp[pos.typeCode].alloc[pos.index]
}

// Allocated lists the allocated work variables, per type code in
// definition order and by index.
func (p *Pool) Allocated() []*stmt.Stmt {
	var res []*stmt.Stmt
	for _, ts := range p.types {
		for i, a := range ts.alloc {
			if a {
				res = append(res, ts.tv.vars[i])
			}
		}
	}
	return res
}

// Release deallocates every allocated work variable.
func (p *Pool) Release() {
	for _, v := range p.Allocated() {
		p.Dealloc(v)
	}
}

// Update is the final value of a work variable after resolution.
type Update struct {
	Var   *stmt.Stmt
	Value *tree.Node
}

// ResolveUpdates resolves the bindings of all allocated work variables and
// then deallocates them.
//
// Variables are visited in reverse index order per type code. A binding
// that contains bound work variables is replaced by a copy in which they
// are resolved transitively. Every binding is resolved before any variable
// is deallocated, so each chain is followed through intact bindings.
func (p *Pool) ResolveUpdates() []Update {
	var (
		res  []Update
		done []*stmt.Stmt
	)
	for _, ts := range p.types {
		for i := len(ts.alloc) - 1; i >= 0; i-- {
			if !ts.alloc[i] {
				continue
			}
			v := ts.tv.vars[i]
			done = append(done, v)
			val := p.b.Get(v)
			if val == nil {
				continue
			}
			if val.HasBoundWorkVar(p.b) {
				val = val.CloneResolvingWorkVars(p.b)
				p.b.Set(v, val)
			}
			res = append(res, Update{Var: v, Value: val})
		}
	}
	for _, v := range done {
		p.Dealloc(v)
	}
	return res
}

// Resolve returns a copy of n with bound work variables resolved.
func (p *Pool) Resolve(n *tree.Node) *tree.Node {
	return n.CloneResolvingWorkVars(p.b)
}
