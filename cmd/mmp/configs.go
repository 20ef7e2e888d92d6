package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/mmproof/config"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='color verdicts and diffs'"`
	LogFile    string `cli:"name=log desc='also write JSON log records to this file'"`
	ConfigFile string `cli:"name=config desc='settings file (yaml)'"`
	Verbose    bool   `cli:"name=v desc='log debug records'"`

	Settings *config.Config
	Log      *slog.Logger
	closeLog func() error

	Main *cli.Command
}

type palette struct {
	on             bool
	ok, fail, note func(string, ...any) string
}

// colors returns the palette for w. It is colored when -color is given,
// or when -color is absent and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *palette {
	plain := &palette{ok: fmt.Sprintf, fail: fmt.Sprintf, note: fmt.Sprintf}
	colored := &palette{
		ok:   color.New(color.FgGreen).SprintfFunc(),
		fail: color.New(color.FgRed, color.Bold).SprintfFunc(),
		note: color.RGB(128, 168, 196).SprintfFunc(),
		on:   true,
	}
	if cfg.Color {
		color.NoColor = false
		return colored
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return plain
			}
		}
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return colored
	}
	return plain
}

type DecompressConfig struct {
	*MainConfig
	DB string `cli:"name=db desc='database file (yaml)'"`

	Decompress *cli.Command
}

type CompressConfig struct {
	*MainConfig
	DB     string `cli:"name=db desc='database file (yaml)'"`
	Squish bool   `cli:"name=squish desc='write every repeated subproof once'"`
	Width  int    `cli:"name=w desc='line width of proof blocks (0: settings)'"`

	Compress *cli.Command
}

type VerifyConfig struct {
	*MainConfig
	DB    string `cli:"name=db desc='database file (yaml)'"`
	Jobs  int    `cli:"name=j desc='number of theorems checked in parallel (0: settings)'"`
	Where string `cli:"name=where desc='only theorems matching this expression'"`
	Gops  bool   `cli:"name=gops desc='run a gops agent while verifying'"`

	Verify *cli.Command
}

type UnifyConfig struct {
	*MainConfig
	DB        string `cli:"name=db desc='database file (yaml)'"`
	Assertion string `cli:"name=a desc='assertion label'"`
	Expr      string `cli:"name=e desc='target expression as postfix labels'"`

	Unify *cli.Command
}
