package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/infrastructure/config"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
	Dump        bool `long:"dump" description:"Dump every parameter of the network, including the genesis block"`
	config.NetworkFlags
}

func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "karmaparams [--testnet|--regtest] [--dump]"
	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
