package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mmproof/codec"
	"github.com/signadot/mmproof/config"
	"github.com/signadot/mmproof/db"
	"github.com/signadot/mmproof/diag"
	"github.com/signadot/mmproof/stmt"
	"github.com/signadot/mmproof/tree"
)

func mmpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.setup(); err != nil {
		return err
	}
	defer func() {
		if cfg.closeLog != nil {
			cfg.closeLog()
		}
	}()
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// setup opens the log and reads the settings.
func (cfg *MainConfig) setup() error {
	var jsonOut io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		jsonOut = f
		cfg.closeLog = f.Close
	}
	if cfg.Verbose {
		diag.Level.Set(slog.LevelDebug)
	}
	cfg.Log = diag.NewLogger(os.Stderr, jsonOut)
	cfg.Settings = config.Default()
	if cfg.ConfigFile != "" {
		s, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		cfg.Settings = s
	}
	return nil
}

func (cfg *MainConfig) loadDB(path string) (*db.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -db is required", cli.ErrUsage)
	}
	d, err := db.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Log.Debug("loaded database", "path", path,
		"statements", len(d.Table.Stmts()), "theorems", len(d.Theorems))
	return d, nil
}

// theorems resolves labels, or lists every theorem with a proof when there
// are none.
func theorems(d *db.DB, labels []string) ([]*stmt.Stmt, error) {
	if len(labels) == 0 {
		var res []*stmt.Stmt
		for _, thm := range d.Theorems {
			if d.Proofs[thm] != nil {
				res = append(res, thm)
			}
		}
		return res, nil
	}
	res := make([]*stmt.Stmt, len(labels))
	for i, l := range labels {
		if res[i] = d.Theorem(l); res[i] == nil {
			return nil, fmt.Errorf("%w: no theorem %q", cli.ErrUsage, l)
		}
	}
	return res, nil
}

func decodeTree(dec *codec.Decoder, d *db.DB, thm *stmt.Stmt) (codec.Steps, *tree.Tree, error) {
	in, err := d.DecodeInput(thm)
	if err != nil {
		return nil, nil, err
	}
	steps, err := dec.Decode(in)
	if err != nil {
		return nil, nil, err
	}
	pt, err := steps.Tree()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", thm.Label, err)
	}
	return steps, pt, nil
}
