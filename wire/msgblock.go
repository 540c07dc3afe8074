package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// defaultTransactionAlloc is the default size used for the backing array
// for transactions. The transaction array will dynamically grow as needed, but
// this figure is intended to provide enough space for the number of
// transactions in the vast majority of blocks without needing to grow the
// backing array multiple times.
const defaultTransactionAlloc = 2048

// MsgBlock implements a karma block: a header, its transactions, and the
// block signature of proof-of-stake blocks. The signature is not covered by
// the block hash and is empty for proof-of-work blocks such as genesis.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	Signature    []byte
}

// NewMsgBlock returns a new karma block message that conforms to the
// Message interface. See MsgBlock for details.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// BuildMerkleRoot computes the merkle root of the block's transactions. It
// does not modify the header.
func (msg *MsgBlock) BuildMerkleRoot() chainhash.Hash {
	return MerkleRoot(msg.Transactions)
}

// Copy returns a deep copy of the block.
func (msg *MsgBlock) Copy() *MsgBlock {
	newBlock := MsgBlock{
		Header:       msg.Header,
		Transactions: make([]*MsgTx, len(msg.Transactions)),
		Signature:    cloneBytes(msg.Signature),
	}
	for i, tx := range msg.Transactions {
		newBlock.Transactions[i] = tx.Copy()
	}
	return &newBlock
}

// Serialize encodes the block to w: the header, the var-int prefixed
// transactions, and the var-int prefixed signature.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	err := writeBlockHeader(w, &msg.Header)
	if err != nil {
		return err
	}

	err = writeVarInt(w, uint64(len(msg.Transactions)))
	if err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		err = tx.Serialize(w)
		if err != nil {
			return err
		}
	}

	return writeVarBytes(w, msg.Signature)
}

// Bytes returns the serialized block.
func (msg *MsgBlock) Bytes() []byte {
	var buf bytes.Buffer
	_ = msg.Serialize(&buf)
	return buf.Bytes()
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	var header BlockHeader
	err := readBlockHeader(r, &header)
	if err != nil {
		return err
	}

	txCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	if txCount > maxTxPerBlock {
		str := fmt.Sprintf("too many transactions to fit into a block "+
			"[count %d, max %d]", txCount, maxTxPerBlock)
		return messageError("MsgBlock.Deserialize", str)
	}

	transactions := make([]*MsgTx, txCount)
	for i := range transactions {
		tx := MsgTx{}
		err := tx.Deserialize(r)
		if err != nil {
			return err
		}
		transactions[i] = &tx
	}

	signature, err := readScript(r, "block signature")
	if err != nil {
		return err
	}

	*msg = MsgBlock{
		Header:       header,
		Transactions: transactions,
		Signature:    signature,
	}
	return nil
}
