package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/karmanet/karmad/util/hashes"
)

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.
func HashMerkleBranches(left *chainhash.Hash, right *chainhash.Hash) *chainhash.Hash {
	writer := hashes.NewDoubleHashWriter()
	_, _ = writer.Write(left[:])
	_, _ = writer.Write(right[:])
	newHash := writer.Finalize()
	return &newHash
}

// nextPowerOfTwo returns the next highest power of two from a given number if
// it is not already a power of two.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}

	exponent := uint(0)
	for n > 0 {
		n >>= 1
		exponent++
	}
	return 1 << exponent
}

// BuildMerkleTreeStore creates a merkle tree from a slice of transactions,
// stores it using a linear array, and returns a slice of the backing array.
// The root of the tree is the last element of the array.
//
// A merkle tree is a tree in which every non-leaf node is the hash of its
// children nodes. When a level has an odd number of nodes, the last node is
// hashed with itself. A block with a single transaction therefore has that
// transaction's hash as its merkle root.
//
// The array is laid out level by level, leaves first, and unused slots in an
// incomplete tree are nil.
func BuildMerkleTreeStore(transactions []*MsgTx) []*chainhash.Hash {
	if len(transactions) == 0 {
		return []*chainhash.Hash{{}}
	}

	nextPoT := nextPowerOfTwo(len(transactions))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	for i, tx := range transactions {
		txHash := tx.TxHash()
		merkles[i] = &txHash
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		// When there is no left child node, the parent is nil too.
		case merkles[i] == nil:
			merkles[offset] = nil

		// When there is no right child, the parent is generated by
		// hashing the concatenation of the left child with itself.
		case merkles[i+1] == nil:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i])

		default:
			merkles[offset] = HashMerkleBranches(merkles[i], merkles[i+1])
		}
		offset++
	}

	return merkles
}

// MerkleRoot returns the merkle root of the given transactions.
func MerkleRoot(transactions []*MsgTx) chainhash.Hash {
	merkles := BuildMerkleTreeStore(transactions)
	return *merkles[len(merkles)-1]
}
