package wire

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func TestMerkleRootSingleTransaction(t *testing.T) {
	tx := genesisCoinbase()
	if got, want := MerkleRoot([]*MsgTx{tx}), tx.TxHash(); got != want {
		t.Errorf("single transaction merkle root = %s, want the transaction hash %s", got, want)
	}
}

func TestMerkleRootOddLevels(t *testing.T) {
	txs := make([]*MsgTx, 3)
	for i := range txs {
		txs[i] = NewMsgTx(TxVersion, time.Unix(int64(1000+i), 0))
	}
	h0, h1, h2 := txs[0].TxHash(), txs[1].TxHash(), txs[2].TxHash()
	left := HashMerkleBranches(&h0, &h1)
	right := HashMerkleBranches(&h2, &h2)
	want := HashMerkleBranches(left, right)

	if got := MerkleRoot(txs); got != *want {
		t.Errorf("three transaction merkle root = %s, want %s", got, want)
	}

	store := BuildMerkleTreeStore(txs)
	if len(store) != 7 {
		t.Fatalf("merkle store has %d nodes, want 7", len(store))
	}
	if store[3] != nil {
		t.Errorf("padding leaf should be nil")
	}
}

func TestMerkleRootEmpty(t *testing.T) {
	root := MerkleRoot(nil)
	if !root.IsEqual(&chainhash.Hash{}) {
		t.Errorf("empty merkle root = %s, want zero hash", root)
	}
}
