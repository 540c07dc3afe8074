/*
Package chainparams defines the karma networks and their consensus-critical
constants.

Three networks exist: the main network, the public test network and the
local regression test network. Each is described by a Params value that is
built exactly once during package initialization. The testnet parameters are
a copy of the mainnet parameters with a documented subset of fields
overridden, and the regtest parameters are derived from testnet the same way.
Every genesis block is rebuilt from its coinbase message, timestamp, bits and
nonce and checked against its known hash and merkle root; a mismatch panics
before any caller can observe the parameters.

One set of parameters is active at a time. Startup code selects it once with
SelectNetwork or SelectFromStartupFlags and everything else reads it through
ActiveParams:

	if err := chainparams.SelectFromStartupFlags(cfg.Testnet, cfg.Regtest); err != nil {
		return err
	}
	params := chainparams.ActiveParams()
	listenAddr := net.JoinHostPort("", params.DefaultPort)

Params values are shared between goroutines without locking and must be
treated as read-only.
*/
package chainparams
