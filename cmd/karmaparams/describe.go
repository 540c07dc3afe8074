package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/karmanet/karmad/util/address"
)

// describeParams writes the constants other subsystems consume from params,
// one per line.
func describeParams(w io.Writer, params *chainparams.Params) error {
	alertAddress, err := address.EncodePubKeyHashAddress(params, params.AlertPubKey)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	rows := []struct {
		name  string
		value interface{}
	}{
		{"network", params.Name},
		{"message start", fmt.Sprintf("% x", params.MessageStart())},
		{"p2p port", params.DefaultPort},
		{"rpc port", params.RPCPort},
		{"pow limit", fmt.Sprintf("%064x", params.PowLimit)},
		{"pow limit bits", fmt.Sprintf("%08x", params.PowLimitBits)},
		{"pos limit", fmt.Sprintf("%064x", params.PosLimit)},
		{"genesis hash", params.GenesisHash},
		{"genesis merkle root", params.GenesisBlock.Header.MerkleRoot},
		{"pubkey hash prefix", params.PubKeyHashAddrID},
		{"script hash prefix", params.ScriptHashAddrID},
		{"private key prefix", params.PrivateKeyID},
		{"extended public key prefix", fmt.Sprintf("%x", params.HDPublicKeyID)},
		{"extended private key prefix", fmt.Sprintf("%x", params.HDPrivateKeyID)},
		{"alert key address", alertAddress},
		{"data directory", fmt.Sprintf("%q", params.DataDir)},
		{"rpc password required", params.RequireRPCPassword},
		{"dns seeds", len(params.DNSSeeds)},
		{"fixed seeds", len(params.FixedSeeds)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%v\n", row.name, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// dumpParams writes every field of params, nested values included.
func dumpParams(w io.Writer, params *chainparams.Params) {
	config := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	config.Fdump(w, params)
}
