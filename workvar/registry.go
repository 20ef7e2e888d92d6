package workvar

import (
	"fmt"
	"strconv"

	"github.com/signadot/mmproof/stmt"
)

const (
	DefaultMinCount = 10
	DefaultMaxCount = 9999
)

type definition struct {
	typeCode string
	prefix   string
	count    int
}

// Registry collects work variable definitions before they are declared.
type Registry struct {
	Min, Max int

	defs     []definition
	declared bool
}

func NewRegistry() *Registry {
	return &Registry{Min: DefaultMinCount, Max: DefaultMaxCount}
}

// Define records count work variables named prefix+N for typeCode,
// replacing an earlier definition for the same type code.
func (r *Registry) Define(typeCode, prefix string, count int) error {
	if r.declared {
		return ErrAlreadyDeclared
	}
	if !stmt.ValidSymbol(prefix) {
		return fmt.Errorf("%w: %q for %s", ErrBadPrefix, prefix, typeCode)
	}
	if count < r.Min || count > r.Max {
		return fmt.Errorf("%w: %d for %s, want [%d, %d]", ErrBadCount, count, typeCode, r.Min, r.Max)
	}
	for i := range r.defs {
		if r.defs[i].prefix == prefix && r.defs[i].typeCode != typeCode {
			return fmt.Errorf("%w: %q used by %s and %s",
				ErrDuplicatePrefix, prefix, r.defs[i].typeCode, typeCode)
		}
	}
	for i := range r.defs {
		if r.defs[i].typeCode == typeCode {
			r.defs[i] = definition{typeCode, prefix, count}
			return nil
		}
	}
	r.defs = append(r.defs, definition{typeCode, prefix, count})
	return nil
}

// Declare creates the defined work variables in tbl. It may only succeed
// once.
func (r *Registry) Declare(tbl *stmt.Table) (*Vars, error) {
	if r.declared {
		return nil, ErrAlreadyDeclared
	}
	names := map[string]bool{}
	for _, def := range r.defs {
		for i := range def.count {
			name := def.prefix + strconv.Itoa(i+1)
			if names[name] || tbl.HasSymbol(name) || tbl.HasLabel(name) {
				return nil, fmt.Errorf("%w: %q", ErrNameClash, name)
			}
			names[name] = true
		}
	}
	vs := &Vars{byType: map[string]*typeVars{}, pos: map[*stmt.Stmt]varPos{}}
	for _, def := range r.defs {
		tv := &typeVars{
			typeCode: def.typeCode,
			prefix:   def.prefix,
			vars:     make([]*stmt.Stmt, def.count),
		}
		for i := range def.count {
			name := def.prefix + strconv.Itoa(i+1)
			if err := tbl.AddVar(name); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNameClash, err)
			}
			h, err := tbl.AddVarHyp(name, def.typeCode, name, stmt.WorkVarHyp)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNameClash, err)
			}
			tv.vars[i] = h
			vs.pos[h] = varPos{typeCode: def.typeCode, index: i}
		}
		vs.types = append(vs.types, tv)
		vs.byType[def.typeCode] = tv
	}
	vs.nVars = tbl.NumVars()
	r.declared = true
	return vs, nil
}

type typeVars struct {
	typeCode string
	prefix   string
	vars     []*stmt.Stmt
}

type varPos struct {
	typeCode string
	index    int
}

// Vars is the immutable set of declared work variables.
type Vars struct {
	types  []*typeVars
	byType map[string]*typeVars
	pos    map[*stmt.Stmt]varPos
	nVars  int
}

// Var returns the work variable of typeCode at the 0-based index, or nil.
func (vs *Vars) Var(typeCode string, index int) *stmt.Stmt {
	tv := vs.byType[typeCode]
	if tv == nil || index < 0 || index >= len(tv.vars) {
		return nil
	}
	return tv.vars[index]
}

// TypeCodes lists the type codes with work variables, in definition order.
func (vs *Vars) TypeCodes() []string {
	res := make([]string, len(vs.types))
	for i, tv := range vs.types {
		res[i] = tv.typeCode
	}
	return res
}

// Count is the number of work variables declared for typeCode.
func (vs *Vars) Count(typeCode string) int {
	tv := vs.byType[typeCode]
	if tv == nil {
		return 0
	}
	return len(tv.vars)
}

// Lookup reverse-parses a work variable label into its type code and
// 0-based index.
func (vs *Vars) Lookup(label string) (typeCode string, index int, ok bool) {
	best := -1
	for i, tv := range vs.types {
		if len(label) <= len(tv.prefix) || label[:len(tv.prefix)] != tv.prefix {
			continue
		}
		if best >= 0 && len(vs.types[best].prefix) >= len(tv.prefix) {
			continue
		}
		n, err := strconv.Atoi(label[len(tv.prefix):])
		if err != nil || n < 1 || n > len(tv.vars) || strconv.Itoa(n) != label[len(tv.prefix):] {
			continue
		}
		best = i
		index = n - 1
	}
	if best < 0 {
		return "", 0, false
	}
	return vs.types[best].typeCode, index, true
}
