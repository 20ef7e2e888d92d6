package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "mmp").
		WithSynopsis("mmp [-color] [-log file] [-config file] command [opts]").
		WithDescription("mmp decodes, re-encodes and checks compressed proofs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mmpMain(cfg, cc, args)
		}).
		WithSubs(
			DecompressCommand(cfg),
			CompressCommand(cfg),
			VerifyCommand(cfg),
			UnifyCommand(cfg))
}

func DecompressCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecompressConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decompress, "decompress").
		WithAliases("d", "dec").
		WithSynopsis("decompress -db file [theorems]").
		WithDescription("print the decoded steps and tree of compressed proofs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decompress(cfg, cc, args)
		})
}

func CompressCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompressConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compress, "compress").
		WithAliases("c").
		WithSynopsis("compress -db file [-squish] [-w width] [theorems]").
		WithDescription("re-encode compressed proofs and show how they differ from the stored ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compress(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("v", "check").
		WithSynopsis("verify -db file [-j n] [-where expr] [-gops] [theorems]").
		WithDescription("decode and check proofs; failures are reported per theorem").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}

func UnifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unify, "unify").
		WithAliases("u").
		WithSynopsis("unify -db file -a assertion -e 'postfix labels'").
		WithDescription("unify the conclusion of an assertion with an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unify(cfg, cc, args)
		})
}
