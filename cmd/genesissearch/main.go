package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/karmanet/karmad/infrastructure/logger"
	"github.com/karmanet/karmad/util/panics"
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

type searchResult struct {
	header *wire.BlockHeader
	err    error
}

func main() {
	defer panics.HandlePanic(log, "MAIN", nil)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	level, _ := logger.LevelFromString(cfg.DebugLevel)
	logger.InitLogStdout(level)
	logger.SetLogLevels(cfg.DebugLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	params := cfg.NetParams()
	header := cfg.startHeader()
	log.Infof("Searching a %s genesis block starting at time %d, nonce %d",
		params.Name, header.Timestamp.Unix(), header.Nonce)

	results := make(chan searchResult, 1)
	spawn("searchGenesis", func() {
		defer logger.LogAndMeasureExecutionTime(log, "searchGenesis")()
		found, err := chainparams.SearchGenesis(ctx, header, cfg.searchTarget())
		results <- searchResult{header: found, err: err}
	})

	result := <-results
	if result.err != nil {
		panics.Exit(log, fmt.Sprintf("Genesis search stopped: %s", result.err))
	}

	fmt.Println(describeHeader(result.header))
	logger.BackendLog.Close()
}

// describeHeader formats the fields that have to be copied into the network
// parameters once a genesis block is found.
func describeHeader(header *wire.BlockHeader) string {
	return fmt.Sprintf("time: %d\nbits: 0x%08x\nnonce: %d\nhash: %s\nmerkle root: %s",
		header.Timestamp.Unix(), header.Bits, header.Nonce, header.BlockHash(), header.MerkleRoot)
}
