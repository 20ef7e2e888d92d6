package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mmproof/db"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
	"github.com/signadot/mmproof/workvar"
)

func unify(cfg *UnifyConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Unify.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Assertion == "" || cfg.Expr == "" {
		return fmt.Errorf("%w: -a and -e are required", cli.ErrUsage)
	}
	d, err := cfg.loadDB(cfg.DB)
	if err != nil {
		return err
	}
	return unifyExpr(cfg, cc.Out, d, cfg.Assertion, cfg.Expr)
}

// unifyExpr unifies the conclusion of the assertion labelled label with the
// postfix expression rpn and prints the bindings of its variables.
func unifyExpr(cfg *UnifyConfig, w io.Writer, d *db.DB, label, rpn string) error {
	reg, err := cfg.Settings.Registry()
	if err != nil {
		return err
	}
	vars, err := reg.Declare(d.Table)
	if err != nil {
		return err
	}
	a := d.Table.Lookup(label)
	if a == nil || !a.IsAssertion() {
		return fmt.Errorf("%w: no assertion %q", cli.ErrUsage, label)
	}
	pattern := d.Expr(a)
	if pattern == nil {
		return fmt.Errorf("%s has no syntax", a.Label)
	}
	pool := vars.NewPool()
	defer pool.Release()
	target, err := parseTarget(pool, d.Table, rpn)
	if err != nil {
		return err
	}
	pal := cfg.colors(w)

	if len(pool.Allocated()) == 0 && tree.New(target).MaxDepth() >= tree.New(pattern).MaxDepth() {
		subst, ok := tree.UnifyWithSubtree(pattern, target, a.VarHyps())
		if ok {
			fmt.Fprintf(w, "%s %s\n", pal.ok("matched"), a.Label)
			for i, h := range a.VarHyps() {
				if subst[i] != nil {
					fmt.Fprintf(w, "  %s := %s\n", h.Label, subst[i])
				}
			}
			return nil
		}
	}

	inst, fresh, err := pool.Instantiate(a, pattern)
	if err != nil {
		return err
	}
	if !pool.Unify(inst, target) {
		fmt.Fprintf(w, "%s %s does not unify with %s\n", pal.fail("failed"), inst, target)
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintf(w, "%s %s\n", pal.ok("unified"), pool.Resolve(inst))
	updates := map[*stmt.Stmt]*tree.Node{}
	for _, u := range pool.ResolveUpdates() {
		updates[u.Var] = u.Value
	}
	for i, h := range a.VarHyps() {
		val := updates[fresh[i]]
		if val == nil {
			fmt.Fprintf(w, "  %s := %s\n", h.Label, pal.note(fresh[i].Label))
			continue
		}
		fmt.Fprintf(w, "  %s := %s\n", h.Label, val)
	}
	return nil
}

// parseTarget builds the target expression, allocating the work variables
// it names.
func parseTarget(pool *workvar.Pool, tbl *stmt.Table, rpn string) (*tree.Node, error) {
	labels := strings.Fields(rpn)
	for _, l := range labels {
		if s := tbl.Lookup(l); s != nil && s.IsWorkVar() {
			if _, err := pool.AllocToken(l); err != nil {
				return nil, err
			}
		}
	}
	t, err := tree.FromLabels(labels, tbl.Lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: -e: %w", cli.ErrUsage, err)
	}
	return t.Root(), nil
}
