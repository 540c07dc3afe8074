package main

import (
	"math/big"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/infrastructure/config"
	"github.com/karmanet/karmad/infrastructure/logger"
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel = "info"
	maxTargetShift  = 255
)

type configFlags struct {
	TargetShift uint          `long:"target-shift" description:"Search below 2^256-1 shifted right by this many bits instead of the network proof of work limit"`
	StartNonce  *uint32       `long:"start-nonce" description:"Nonce to start the search from (default: the network genesis nonce)"`
	StartTime   int64         `long:"start-time" description:"Unix time to start the search from (default: the network genesis time)"`
	Timeout     time.Duration `long:"timeout" description:"Give up after this long, e.g. 10m (0 means no limit)"`
	DebugLevel  string        `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	config.NetworkFlags
}

func newConfigParser(cfg *configFlags) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "genesissearch [--testnet|--regtest] [--target-shift=N] [--start-nonce=N] [--start-time=T] [--timeout=D]\n\n" +
		"The network genesis header already meets the network proof of work limit, so\n" +
		"without --start-nonce, --start-time or --target-shift the search returns it unchanged."
	return parser
}

func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{DebugLevel: defaultLogLevel}
	parser := newConfigParser(cfg)
	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	if cfg.TargetShift > maxTargetShift {
		return nil, errors.Errorf("--target-shift must be at most %d, got %d", maxTargetShift, cfg.TargetShift)
	}
	if cfg.Timeout < 0 {
		return nil, errors.Errorf("--timeout must not be negative, got %s", cfg.Timeout)
	}
	if _, ok := logger.LevelFromString(cfg.DebugLevel); !ok {
		return nil, errors.Errorf("the specified debug level [%s] is invalid", cfg.DebugLevel)
	}
	return cfg, nil
}

// searchTarget returns the value the genesis hash must not exceed.
func (cfg *configFlags) searchTarget() *big.Int {
	if cfg.TargetShift == 0 {
		return new(big.Int).Set(cfg.NetParams().PowLimit)
	}
	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	return maxUint256.Rsh(maxUint256, cfg.TargetShift)
}

// startHeader returns a copy of the network genesis header with the
// configured starting point applied.
func (cfg *configFlags) startHeader() *wire.BlockHeader {
	header := cfg.NetParams().GenesisBlock.Header
	if cfg.StartNonce != nil {
		header.Nonce = *cfg.StartNonce
	}
	if cfg.StartTime != 0 {
		header.Timestamp = time.Unix(cfg.StartTime, 0)
	}
	return &header
}
