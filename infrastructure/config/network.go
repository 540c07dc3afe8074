package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/domain/chainparams"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Regtest bool `long:"regtest" description:"Use the regression test network"`

	ActiveNetParams *chainparams.Params
}

// ResolveNetwork selects the network requested by the command line flags
// and makes it the active one. Requesting more than one network prints the
// error along with the usage message and returns the error.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	err := chainparams.SelectFromStartupFlags(networkFlags.Testnet, networkFlags.Regtest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	networkFlags.ActiveNetParams = chainparams.ActiveParams()
	log.Debugf("Selected network %s", networkFlags.ActiveNetParams.Name)
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chainparams.Params {
	return networkFlags.ActiveNetParams
}
