package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/db"
	"github.com/signadot/mmproof/diag"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

func compress(cfg *CompressConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compress.Parse(cc, args)
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
	return compressTheorems(cfg, cc.Out, d, thms)
}

func compressTheorems(cfg *CompressConfig, w io.Writer, d *db.DB, thms []*stmt.Stmt) error {
	opts := cfg.Settings.EncodeOptions()
	if cfg.Squish {
		opts = append(opts, codec.Squish(true))
	}
	if cfg.Width > 0 {
		opts = append(opts, codec.LineWidth(cfg.Width))
	}
	enc := codec.NewEncoder(opts...)
	pal := cfg.colors(w)
	sink := &diag.LogSink{Log: cfg.Log}
	dec := codec.NewDecoder()
	failed := 0
	for _, thm := range thms {
		_, pt, err := decodeTree(dec, d, thm)
		if err != nil {
			sink.Error(thm.Label, err)
			failed++
			continue
		}
		c, err := enc.Encode(thm.MandHyps, pt)
		if err != nil {
			sink.Error(thm.Label, err)
			failed++
			continue
		}
		stored := d.Proofs[thm]
		old := proofText(stored.Other, strings.Join(stored.Blocks, ""))
		cur := proofText(c.Other, c.Text())
		if old == cur {
			fmt.Fprintf(w, "%s %s\n", thm.Label, pal.ok("unchanged"))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", thm.Label, pal.note("changed"))
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(old, cur, false)
		if pal.on {
			fmt.Fprintf(w, "  %s\n", dmp.DiffPrettyText(diffs))
		} else {
			fmt.Fprintf(w, "  - %s\n  + %s\n", old, cur)
		}
		for _, b := range c.Blocks {
			fmt.Fprintf(w, "    %s\n", b)
		}
		cfg.Log.Debug("re-encoded", "theorem", thm.Label,
			"distance", dmp.DiffLevenshtein(diffs), "blocks", len(c.Blocks))
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func proofText(other []string, text string) string {
	return "( " + strings.Join(append(slices.Clone(other), ")"), " ") + " " + text
}

// distinctNodes counts the nodes of pt once all repeated subproofs are
// shared.
func distinctNodes(pt *tree.Tree) int {
	c := pt.Clone()
	c.SquishTree()
	return c.CountParseNodes(false)
}
