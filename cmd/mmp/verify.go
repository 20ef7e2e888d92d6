package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/db"
	"github.com/signadot/mmproof/diag"
	"github.com/signadot/mmproof/proof"
	"github.com/signadot/mmproof/stmt"
	"golang.org/x/sync/errgroup"
)

// theoremEnv is what a -where expression sees of a theorem.
type theoremEnv struct {
	Label  string `expr:"label"`
	Seq    int    `expr:"seq"`
	Hyps   int    `expr:"hyps"`
	Other  int    `expr:"other"`
	Length int    `expr:"length"`
}

func newTheoremEnv(d *db.DB, thm *stmt.Stmt) theoremEnv {
	env := theoremEnv{Label: thm.Label, Seq: thm.Seq, Hyps: len(thm.MandHyps)}
	if p := d.Proofs[thm]; p != nil {
		env.Other = len(p.Other)
		for _, b := range p.Blocks {
			env.Length += len(b)
		}
	}
	return env
}

func compileWhere(where string) (*vm.Program, error) {
	if where == "" {
		return nil, nil
	}
	prg, err := expr.Compile(where, expr.Env(theoremEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: -where: %w", cli.ErrUsage, err)
	}
	return prg, nil
}

type verdict struct {
	thm *stmt.Stmt
	err error
}

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			cfg.Log.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	where, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	d, err := cfg.loadDB(cfg.DB)
	if err != nil {
		return err
	}
	thms, err := theorems(d, args)
	if err != nil {
		return err
	}
	if thms, err = selectWhere(where, d, thms); err != nil {
		return err
	}
	return verifyTheorems(cfg, cc.Out, d, thms)
}

func selectWhere(where *vm.Program, d *db.DB, thms []*stmt.Stmt) ([]*stmt.Stmt, error) {
	if where == nil {
		return thms, nil
	}
	var kept []*stmt.Stmt
	for _, thm := range thms {
		ok, err := expr.Run(where, newTheoremEnv(d, thm))
		if err != nil {
			return nil, fmt.Errorf("-where on %s: %w", thm.Label, err)
		}
		if ok.(bool) {
			kept = append(kept, thm)
		}
	}
	return kept, nil
}

func verifyTheorems(cfg *VerifyConfig, w io.Writer, d *db.DB, thms []*stmt.Stmt) error {
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = cfg.Settings.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	checker := &proof.Checker{Exprs: d, Provable: cfg.Settings.Provable}
	collector := &diag.Collector{}
	sink := diag.Multi{collector, &diag.LogSink{Log: cfg.Log}}
	verdicts := make([]verdict, len(thms))
	start := time.Now()
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, thm := range thms {
		g.Go(func() error {
			err := verifyOne(codec.NewDecoder(), d, checker, thm)
			if err != nil {
				sink.Error(thm.Label, err)
			} else {
				sink.Info(thm.Label, "verified")
			}
			verdicts[i] = verdict{thm: thm, err: err}
			return nil
		})
	}
	g.Wait()

	pal := cfg.colors(w)
	for _, v := range verdicts {
		if v.err != nil {
			fmt.Fprintf(w, "%s %s %s\n", pal.fail("FAIL"), v.thm.Label, firstLine(v.err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", pal.ok("ok  "), v.thm.Label)
	}
	failed := len(collector.Errors())
	fmt.Fprintf(w, "%d verified, %d failed\n", len(thms)-failed, failed)
	cfg.Log.Debug("verify done", "theorems", len(thms), "jobs", jobs, "elapsed", time.Since(start))
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func verifyOne(dec *codec.Decoder, d *db.DB, checker *proof.Checker, thm *stmt.Stmt) error {
	_, pt, err := decodeTree(dec, d, thm)
	if err != nil {
		return err
	}
	return checker.Check(thm, pt)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
