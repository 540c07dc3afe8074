package chainparams

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

const (
	// genesisCoinbaseMessage is embedded in the signature script of every
	// genesis coinbase.
	genesisCoinbaseMessage = "Time to fix your KARMA"

	// genesisCoinbaseMarker is the number pushed between OP_0 and the
	// message in the genesis coinbase signature script.
	genesisCoinbaseMarker = 42

	// genesisBlockVersion is the header version of every genesis block.
	genesisBlockVersion = 1
)

// genesisTxTime is the timestamp of the genesis coinbase transaction. It is
// shared by all networks, so all of them have the same genesis merkle root.
var genesisTxTime = time.Unix(1498428923, 0)

// genesisMerkleRoot is the merkle root of every genesis block.
var genesisMerkleRoot = newHashFromStr("5f2ca39b0bb41de705cf7f2f5bdee0a6e3ee3696e5978ff34ab96b5714492f0e")

// createGenesisBlock builds a genesis block whose only transaction is a
// coinbase carrying message in its signature script and a single empty
// output.
func createGenesisBlock(message string, txTime, blockTime time.Time, bits, nonce uint32) *wire.MsgBlock {
	signatureScript, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisCoinbaseMarker).
		AddData([]byte(message)).
		Script()
	if err != nil {
		panic(errors.Wrap(err, "failed to build the genesis coinbase script"))
	}

	coinbaseTx := wire.NewMsgTx(wire.TxVersion, txTime)
	coinbaseTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), signatureScript))
	output := &wire.TxOut{}
	output.SetEmpty()
	coinbaseTx.AddTxOut(output)

	transactions := []*wire.MsgTx{coinbaseTx}
	merkleRoot := wire.MerkleRoot(transactions)
	header := wire.NewBlockHeader(genesisBlockVersion, &chainhash.Hash{}, &merkleRoot, bits, nonce)
	header.Timestamp = time.Unix(blockTime.Unix(), 0)

	block := wire.NewMsgBlock(header)
	block.AddTransaction(coinbaseTx)
	return block
}

// verifyGenesis checks that block has the expected hash and merkle root. The
// merkle root is recomputed from the transactions rather than trusted from
// the header.
func verifyGenesis(block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) error {
	merkleRoot := block.BuildMerkleRoot()
	if !merkleRoot.IsEqual(wantMerkleRoot) {
		return errors.Errorf("genesis merkle root is %s, expected %s", merkleRoot, wantMerkleRoot)
	}
	if !block.Header.MerkleRoot.IsEqual(wantMerkleRoot) {
		return errors.Errorf("genesis header commits to merkle root %s, expected %s",
			block.Header.MerkleRoot, wantMerkleRoot)
	}
	hash := block.BlockHash()
	if !hash.IsEqual(wantHash) {
		return errors.Errorf("genesis hash is %s, expected %s", hash, wantHash)
	}
	return nil
}

// mustVerifyGenesis performs the same function as verifyGenesis except it
// panics on a mismatch. A mismatch means the compiled-in constants of the
// network contradict each other, so the node must not start.
func mustVerifyGenesis(networkName string, block *wire.MsgBlock, wantHash, wantMerkleRoot *chainhash.Hash) {
	if err := verifyGenesis(block, wantHash, wantMerkleRoot); err != nil {
		panic(errors.Wrapf(err, "invalid %s genesis block", networkName))
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
