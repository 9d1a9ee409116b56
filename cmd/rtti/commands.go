package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rtti").
		WithSynopsis("rtti [opts] command [opts]").
		WithDescription("rtti inspects registered types and maps documents to and from them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rttiMain(cfg, cc, args)
		}).
		WithSubs(
			TypesCommand(cfg),
			DescribeCommand(cfg),
			EnumCommand(cfg),
			DecodeCommand(cfg),
			NewCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			StoreCommand(cfg))
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t", "ls").
		WithSynopsis("types [-a]").
		WithDescription("list registered types").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}

func DescribeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DescribeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Describe, "describe").
		WithAliases("desc").
		WithSynopsis("describe <type> [types]").
		WithDescription("describe registered types").
		WithRun(func(cc *cli.Context, args []string) error {
			return describe(cfg, cc, args)
		})
}

func EnumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EnumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Enum, "enum").
		WithSynopsis("enum <type>").
		WithDescription("list the names and values of an enum").
		WithRun(func(cc *cli.Context, args []string) error {
			return enum(cfg, cc, args)
		})
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode -t <type> [files]").
		WithDescription("decode documents as a type and encode the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.New, "new").
		WithAliases("n").
		WithSynopsis("new <type>").
		WithDescription("encode a default constructed value").
		WithRun(func(cc *cli.Context, args []string) error {
			return newValue(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff -t <type> [files]").
		WithDescription("show what decoding as a type changes in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -t <type> -e <expr> [files]").
		WithDescription("evaluate an expression over decoded documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalExpr(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -t <type> [-m] [-f] -p <patch> [files]").
		WithDescription("apply a json patch or json merge patch to decoded documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDocs(cfg, cc, args)
		})
}

func StoreCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StoreConfig{MainConfig: mainCfg, Addr: "localhost:6379", Prefix: "rtti:"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Store, "store").
		WithSynopsis("store [-addr <addr>] [-prefix <prefix>] <subcommand>").
		WithDescription("store values of registered types in redis").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return store(cfg, cc, args)
		}).
		WithSubs(
			StorePutCommand(cfg),
			StoreGetCommand(cfg),
			StoreDelCommand(cfg),
			StoreKeysCommand(cfg))
}

func StorePutCommand(storeCfg *StoreConfig) *cli.Command {
	cfg := &StorePutConfig{StoreConfig: storeCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "ttl",
		Description: "expiration of the key",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkTTL()), "(duration)"),
	})
	return cli.NewCommandAt(&cfg.Put, "put").
		WithSynopsis("put -t <type> [-ttl <duration>] <key> [file]").
		WithDescription("decode a document and store it under key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return storePut(cfg, cc, args)
		})
}

func StoreGetCommand(storeCfg *StoreConfig) *cli.Command {
	cfg := &StoreGetConfig{StoreConfig: storeCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithSynopsis("get -t <type> <key>").
		WithDescription("load and encode the value stored under key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return storeGet(cfg, cc, args)
		})
}

func StoreDelCommand(storeCfg *StoreConfig) *cli.Command {
	cfg := &StoreDelConfig{StoreConfig: storeCfg}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("rm").
		WithSynopsis("del <key> [keys]").
		WithDescription("delete stored values").
		WithRun(func(cc *cli.Context, args []string) error {
			return storeDel(cfg, cc, args)
		})
}

func StoreKeysCommand(storeCfg *StoreConfig) *cli.Command {
	cfg := &StoreKeysConfig{StoreConfig: storeCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithSynopsis("keys [pattern]").
		WithDescription("list stored keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return storeKeys(cfg, cc, args)
		})
}
