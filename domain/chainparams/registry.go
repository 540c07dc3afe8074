package chainparams

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrConflictingNetworks is returned when more than one network is
	// requested at startup.
	ErrConflictingNetworks = errors.New("testnet and regtest cannot be used together, please choose only one network")

	// ErrUnknownNetwork is returned when looking up a network that does not
	// exist.
	ErrUnknownNetwork = errors.New("unknown karma network")
)

// activeParams holds the *Params of the selected network. It is written once
// during startup and read by any number of goroutines afterwards.
var activeParams atomic.Value

// ActiveParams returns the parameters of the selected network. The main
// network is active until another one is selected.
func ActiveParams() *Params {
	return activeParams.Load().(*Params)
}

// SelectNetwork makes the parameters of the given network the active ones.
// It is meant to be called once, early during startup, before other
// goroutines read ActiveParams. It panics if id is not one of Mainnet,
// Testnet or Regtest, since callers can only reach that by a programming
// error.
func SelectNetwork(id NetworkID) {
	params, err := ParamsForNetwork(id)
	if err != nil {
		panic(err)
	}
	activeParams.Store(params)
}

// SelectFromStartupFlags selects the network requested by the testnet and
// regtest startup flags. Regtest is selected if requested, then testnet, and
// the main network otherwise. ErrConflictingNetworks is returned, and the
// active network left untouched, when both are requested.
func SelectFromStartupFlags(testnet, regtest bool) error {
	if testnet && regtest {
		return ErrConflictingNetworks
	}

	switch {
	case regtest:
		SelectNetwork(Regtest)
	case testnet:
		SelectNetwork(Testnet)
	default:
		SelectNetwork(Mainnet)
	}
	return nil
}

// ParamsForNetwork returns the parameters of the given network.
func ParamsForNetwork(id NetworkID) (*Params, error) {
	switch id {
	case Mainnet:
		return MainnetParams, nil
	case Testnet:
		return TestnetParams, nil
	case Regtest:
		return RegtestParams, nil
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "network id %d", int(id))
}

// ParamsForName returns the parameters of the network with the given name,
// such as "testnet".
func ParamsForName(name string) (*Params, error) {
	params, ok := registeredNames[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "network name %q", name)
	}
	return params, nil
}
