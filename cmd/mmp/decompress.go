package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/db"
	"github.com/signadot/mmproof/diag"
	"github.com/signadot/mmproof/stmt"
)

func decompress(cfg *DecompressConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decompress.Parse(cc, args)
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
	return decompressTheorems(cfg, cc.Out, d, thms)
}

func decompressTheorems(cfg *DecompressConfig, w io.Writer, d *db.DB, thms []*stmt.Stmt) error {
	pal := cfg.colors(w)
	sink := &diag.LogSink{Log: cfg.Log}
	dec := codec.NewDecoder()
	failed := 0
	for _, thm := range thms {
		steps, pt, err := decodeTree(dec, d, thm)
		if err != nil {
			sink.Error(thm.Label, err)
			fmt.Fprintf(w, "%s %s\n", thm.Label, pal.fail("FAILED"))
			failed++
			continue
		}
		labels := make([]string, len(steps))
		for i, s := range steps {
			labels[i] = s.Stmt.String()
		}
		fmt.Fprintf(w, "%s\n", thm.Label)
		fmt.Fprintf(w, "  %s %s\n", pal.note("steps:"), strings.Join(labels, " "))
		fmt.Fprintf(w, "  %s %s\n", pal.note("tree: "), pt)
		fmt.Fprintf(w, "  %s %d  %s %d  %s %d\n",
			pal.note("depth:"), pt.MaxDepth(),
			pal.note("nodes:"), pt.CountParseNodes(true),
			pal.note("distinct:"), distinctNodes(pt))
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
