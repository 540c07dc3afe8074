package chainparams

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"net"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/karmanet/karmad/util/network"
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

// These variables are the proof-of-work and proof-of-stake limits of the
// networks.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is the value 2^256 - 1.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

	// mainPowLimit is the highest proof of work value a karma block can
	// have on the main and test networks. It is the value 2^240 - 1.
	mainPowLimit = new(big.Int).Rsh(maxUint256, 16)

	// mainPosLimit is the highest proof of stake value a karma block can
	// have. It is the value 2^236 - 1 on every network.
	mainPosLimit = new(big.Int).Rsh(maxUint256, 20)

	// regtestPowLimit is the highest proof of work value a karma block can
	// have on the regression test network. It is the value 2^255 - 1.
	regtestPowLimit = new(big.Int).Rsh(maxUint256, 1)
)

// NetworkID identifies one of the karma networks.
type NetworkID int

const (
	// Mainnet is the production network.
	Mainnet NetworkID = iota

	// Testnet is the public test network.
	Testnet

	// Regtest is the local regression test network.
	Regtest
)

var networkIDStrings = map[NetworkID]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
	Regtest: "regtest",
}

// String returns the name of the network.
func (id NetworkID) String() string {
	if s, ok := networkIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("unknown network (%d)", int(id))
}

// Base58Type is the role of a base58check encoded string, which decides the
// version prefix it is encoded with.
type Base58Type int

const (
	// PubKeyAddress is a pay-to-pubkey-hash address.
	PubKeyAddress Base58Type = iota

	// ScriptAddress is a pay-to-script-hash address.
	ScriptAddress

	// SecretKey is a WIF encoded private key.
	SecretKey

	// ExtPublicKey is a BIP32 extended public key.
	ExtPublicKey

	// ExtSecretKey is a BIP32 extended private key.
	ExtSecretKey
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

// String returns the hostname of the DNS seed.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a karma network by its parameters. These parameters may be
// used by karma applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// ID identifies the network.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.KarmaNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// RPCPort defines the rpc server port.
	RPCPort string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit defines the highest allowed proof of stake value for a
	// block as a uint256.
	PosLimit *big.Int

	// AlertPubKey is the serialized public key that signs network alerts.
	AlertPubKey []byte

	// CheckpointPubKey is the serialized public key that signs
	// synchronized checkpoints.
	CheckpointPubKey []byte

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte

	// DataDir is the subdirectory of the application directory that
	// holds the network's data. It is empty for the main network.
	DataDir string

	// RequireRPCPassword defines whether the RPC server refuses to start
	// without credentials.
	RequireRPCPassword bool

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are hardcoded peer addresses, used until fresher
	// addresses are learned from peers.
	FixedSeeds []*btcwire.NetAddress
}

// MessageStart returns the four bytes that start every peer message on the
// network.
func (p *Params) MessageStart() [4]byte {
	return p.Net.MessageStart()
}

// NormalizeRPCServerAddress returns addr with the current network default
// RPC port appended if there is not already a port specified.
func (p *Params) NormalizeRPCServerAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.RPCPort)
}

// NormalizeP2PAddress returns addr with the current network default
// peer-to-peer port appended if there is not already a port specified.
func (p *Params) NormalizeP2PAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.DefaultPort)
}

// Base58Prefix returns the version prefix used when base58check encoding
// data of the given role on this network, or nil for an unknown role.
func (p *Params) Base58Prefix(role Base58Type) []byte {
	switch role {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	}
	return nil
}

// clone returns a deep copy of p. Derived networks start from a clone of
// their parent so that overriding a field never leaks into the parent.
func (p *Params) clone() *Params {
	clone := *p
	clone.PowLimit = new(big.Int).Set(p.PowLimit)
	clone.PosLimit = new(big.Int).Set(p.PosLimit)
	clone.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	clone.CheckpointPubKey = append([]byte(nil), p.CheckpointPubKey...)
	clone.GenesisBlock = p.GenesisBlock.Copy()
	genesisHash := *p.GenesisHash
	clone.GenesisHash = &genesisHash
	clone.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)

	clone.FixedSeeds = make([]*btcwire.NetAddress, len(p.FixedSeeds))
	for i, seed := range p.FixedSeeds {
		seedCopy := *seed
		seedCopy.IP = append(net.IP(nil), seed.IP...)
		clone.FixedSeeds[i] = &seedCopy
	}
	return &clone
}

// newMainnetParams builds the parameters of the main karma network.
func newMainnetParams() *Params {
	powLimitBits := blockchain.BigToCompact(mainPowLimit)
	genesisBlock := createGenesisBlock(genesisCoinbaseMessage, genesisTxTime, time.Unix(1498428923, 0),
		powLimitBits, 7669)
	genesisHash := newHashFromStr("00002c01cb27a044b348d86f33f5d8137838787485a386def867363613175365")
	mustVerifyGenesis("mainnet", genesisBlock, genesisHash, genesisMerkleRoot)

	return &Params{
		ID:          Mainnet,
		Name:        "mainnet",
		Net:         wire.Mainnet,
		DefaultPort: "19188",
		RPCPort:     "19187",

		// Chain parameters
		PowLimit:     new(big.Int).Set(mainPowLimit),
		PowLimitBits: powLimitBits,
		PosLimit:     new(big.Int).Set(mainPosLimit),
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,

		AlertPubKey: mustParsePubKey("0466d7648d499ebf0e485638df9754ad250a2392140a940700478cbf4aad74604" +
			"6b8c058822fa8b57ba5ad5b4ed7c1f73eb8916fafa0f96efd0d7b933701b38faf"),
		CheckpointPubKey: mustParsePubKey("04194c5c2ccfe7c7629ef3361953168d153084958761449653b0118c6222fc88a" +
			"0051ea8327077196fc8fba736b9b8b689ad96b2376e6b2f2a05be649164e6dcdd"),

		// Address encoding magics
		PubKeyHashAddrID: 45,  // starts with K
		ScriptHashAddrID: 127, // starts with t
		PrivateKeyID:     173,

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv

		DataDir:            "",
		RequireRPCPassword: true,
		DNSSeeds:           mainDNSSeeds,
		FixedSeeds:         mustConvertSeeds(mainSeeds),
	}
}

// newTestnetParams builds the parameters of the public test network from the
// main network parameters.
func newTestnetParams(mainnet *Params) *Params {
	p := mainnet.clone()
	p.ID = Testnet
	p.Name = "testnet"
	p.Net = wire.Testnet
	p.DefaultPort = "17899"
	p.RPCPort = "17891"
	p.DataDir = "testnet"

	p.PowLimit = new(big.Int).Rsh(maxUint256, 16)
	p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)
	p.AlertPubKey = mustParsePubKey("04c4de2de66598742420cef692aff12686030977bd39a3bc037226eb7545a8a40" +
		"cf9594d8818dc7b77d962e5360bcaf82c86d337cead66723187f9d67926a4fcd8")

	p.GenesisBlock.Header.Bits = p.PowLimitBits
	p.GenesisBlock.Header.Nonce = 151507
	p.GenesisHash = newHashFromStr("0000880a1407bf00be60df9aa811d0e1e5ba872a707dcea3c5d2d36897381bd5")
	mustVerifyGenesis(p.Name, p.GenesisBlock, p.GenesisHash, genesisMerkleRoot)

	p.DNSSeeds = nil
	p.FixedSeeds = mustConvertSeeds(testnetSeeds)

	p.PubKeyHashAddrID = 135 // starts with w
	p.ScriptHashAddrID = 208 // starts with 2
	p.PrivateKeyID = 249
	p.HDPublicKeyID = [4]byte{0x04, 0x35, 0x87, 0xcf}  // starts with tpub
	p.HDPrivateKeyID = [4]byte{0x04, 0x35, 0x83, 0x94} // starts with tprv
	return p
}

// newRegtestParams builds the parameters of the regression test network
// from the test network parameters.
func newRegtestParams(testnet *Params) *Params {
	p := testnet.clone()
	p.ID = Regtest
	p.Name = "regtest"
	p.Net = wire.Regtest
	p.DefaultPort = "22212"
	p.DataDir = "regtest"
	p.RequireRPCPassword = false

	p.PowLimit = new(big.Int).Set(regtestPowLimit)
	p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)

	p.GenesisBlock.Header.Timestamp = time.Unix(1470000000, 0)
	p.GenesisBlock.Header.Bits = p.PowLimitBits
	p.GenesisBlock.Header.Nonce = 4
	p.GenesisHash = newHashFromStr("11fe80d9889d02d20a735843a6c274daaaf2616aa0c2a8eb88797bf550a0fe0e")
	mustVerifyGenesis(p.Name, p.GenesisBlock, p.GenesisHash, genesisMerkleRoot)

	// Regtest nodes never discover peers through DNS.
	p.DNSSeeds = nil

	p.PubKeyHashAddrID = 111 // starts with m or n
	p.ScriptHashAddrID = 196 // starts with 2
	p.PrivateKeyID = 239
	p.HDPublicKeyID = [4]byte{0x04, 0x20, 0xbd, 0x3a}  // starts with spub
	p.HDPrivateKeyID = [4]byte{0x04, 0x20, 0xb9, 0x00} // starts with sprv
	return p
}

// mustParsePubKey decodes a hard-coded hex public key and checks that it is
// a valid secp256k1 point. It panics on failure since the keys are
// compiled in.
func mustParsePubKey(hexStr string) []byte {
	serialized, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(errors.Wrapf(err, "invalid public key hex %q", hexStr))
	}
	_, err = btcec.ParsePubKey(serialized, btcec.S256())
	if err != nil {
		panic(errors.Wrapf(err, "invalid public key %q", hexStr))
	}
	return serialized
}

var (
	// MainnetParams defines the network parameters for the main karma
	// network.
	MainnetParams = newMainnetParams()

	// TestnetParams defines the network parameters for the test karma
	// network.
	TestnetParams = newTestnetParams(MainnetParams)

	// RegtestParams defines the network parameters for the regression test
	// karma network.
	RegtestParams = newRegtestParams(TestnetParams)
)
