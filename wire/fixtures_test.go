package wire

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// genesisScript is OP_0 <0x2a> <"Time to fix your KARMA">.
var genesisScript = mustDecodeHex("00012a1654696d6520746f2066697820796f7572204b41524d41")

// genesisTxBytes is the serialized coinbase of the main network genesis block.
var genesisTxBytes = mustDecodeHex("01000000fb355059010000000000000000000000000000000000" +
	"000000000000000000000000000000ffffffff1a00012a1654696d6520746f2066697820796f" +
	"7572204b41524d41ffffffff0100000000000000000000000000")

// genesisHeaderBytes is the serialized header of the main network genesis block.
var genesisHeaderBytes = mustDecodeHex("01000000000000000000000000000000000000000000000000" +
	"00000000000000000000000e2f4914576bb94af38f97e59636eee3a6e0de5b2f7fcf05e71db40b" +
	"9ba32c5ffb355059ffff001ff51d0000")

const (
	genesisMerkleRootStr = "5f2ca39b0bb41de705cf7f2f5bdee0a6e3ee3696e5978ff34ab96b5714492f0e"
	genesisHashStr       = "00002c01cb27a044b348d86f33f5d8137838787485a386def867363613175365"
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func mustHash(s string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *hash
}

func genesisCoinbase() *MsgTx {
	tx := NewMsgTx(TxVersion, time.Unix(1498428923, 0))
	tx.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex), cloneBytes(genesisScript)))
	out := &TxOut{Value: 5, PkScript: []byte{0x51}}
	out.SetEmpty()
	tx.AddTxOut(out)
	return tx
}

func genesisHeader() *BlockHeader {
	return &BlockHeader{
		Version:    1,
		MerkleRoot: mustHash(genesisMerkleRootStr),
		Timestamp:  time.Unix(1498428923, 0),
		Bits:       0x1f00ffff,
		Nonce:      7669,
	}
}
