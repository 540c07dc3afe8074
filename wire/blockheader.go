// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/karmanet/karmad/util/binaryserializer"
	"github.com/karmanet/karmad/util/hashes"
	"github.com/pkg/errors"
)

// BlockHeaderPayload is the number of bytes a block header can be.
// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const BlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is used in the karma
// block (MsgBlock) message.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created. This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block, in compact form.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	writer := hashes.NewDoubleHashWriter()
	// Writing to a hash writer never fails, so neither can Serialize.
	_ = writeBlockHeader(writer, h)
	return writer.Finalize()
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes a block header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with the current time, truncated to one second precision, as the
// timestamp.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a karma block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	version, err := binaryserializer.Int32(r)
	if err != nil {
		return err
	}
	var prevBlock, merkleRoot chainhash.Hash
	if _, err := io.ReadFull(r, prevBlock[:]); err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.ReadFull(r, merkleRoot[:]); err != nil {
		return errors.WithStack(err)
	}
	timestamp, err := binaryserializer.Uint32(r)
	if err != nil {
		return err
	}
	bits, err := binaryserializer.Uint32(r)
	if err != nil {
		return err
	}
	nonce, err := binaryserializer.Uint32(r)
	if err != nil {
		return err
	}

	*bh = BlockHeader{
		Version:    version,
		PrevBlock:  prevBlock,
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(int64(timestamp), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
	return nil
}

// writeBlockHeader writes a karma block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	err := binaryserializer.PutInt32(w, bh.Version)
	if err != nil {
		return err
	}
	if _, err := w.Write(bh.PrevBlock[:]); err != nil {
		return errors.WithStack(err)
	}
	if _, err := w.Write(bh.MerkleRoot[:]); err != nil {
		return errors.WithStack(err)
	}
	err = binaryserializer.PutUint32(w, uint32(bh.Timestamp.Unix()))
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint32(w, bh.Bits)
	if err != nil {
		return err
	}
	return binaryserializer.PutUint32(w, bh.Nonce)
}
