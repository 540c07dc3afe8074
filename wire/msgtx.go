package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/karmanet/karmad/util/binaryserializer"
	"github.com/karmanet/karmad/util/hashes"
	"github.com/pkg/errors"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = math.MaxUint32

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = math.MaxUint32
)

// OutPoint defines a karma data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new karma transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// IsNull returns whether the outpoint references nothing, which is only the
// case for coinbase inputs.
func (o OutPoint) IsNull() bool {
	return o.Index == MaxPrevOutIndex && o.Hash == chainhash.Hash{}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// TxIn defines a karma transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new karma transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a karma transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new karma transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// SetEmpty turns the output into an empty one: no value and no script, so
// nothing can ever claim it.
func (t *TxOut) SetEmpty() {
	t.Value = 0
	t.PkScript = nil
}

// IsEmpty returns whether the output carries neither value nor script.
func (t *TxOut) IsEmpty() bool {
	return t.Value == 0 && len(t.PkScript) == 0
}

// MsgTx implements a proof-of-stake style karma transaction. Unlike bitcoin
// transactions it carries its own timestamp, serialized right after the
// version.
type MsgTx struct {
	Version   int32
	Timestamp time.Time
	TxIn      []*TxIn
	TxOut     []*TxOut
	LockTime  uint32
}

// NewMsgTx returns a new karma tx message with the given version and
// timestamp and no inputs or outputs. The timestamp is truncated to one
// second precision since the protocol doesn't support better.
func NewMsgTx(version int32, timestamp time.Time) *MsgTx {
	return &MsgTx{
		Version:   version,
		Timestamp: time.Unix(timestamp.Unix(), 0),
		TxIn:      make([]*TxIn, 0, 1),
		TxOut:     make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not a transaction is a coinbase. A
// coinbase is a special transaction created by miners that has exactly one
// input spending the null outpoint.
func (msg *MsgTx) IsCoinBase() bool {
	return len(msg.TxIn) == 1 && msg.TxIn[0].PreviousOutPoint.IsNull()
}

// TxHash generates the hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	writer := hashes.NewDoubleHashWriter()
	// Writing to a hash writer never fails, so neither can Serialize.
	_ = msg.Serialize(writer)
	return writer.Finalize()
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:   msg.Version,
		Timestamp: msg.Timestamp,
		TxIn:      make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:     make([]*TxOut, 0, len(msg.TxOut)),
		LockTime:  msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  cloneBytes(oldTxIn.SignatureScript),
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		newTxOut := TxOut{
			Value:    oldTxOut.Value,
			PkScript: cloneBytes(oldTxOut.PkScript),
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	clone := make([]byte, len(b))
	copy(clone, b)
	return clone
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Timestamp 4 bytes + LockTime 4 bytes + serialized
	// var-int sizes for the number of transaction inputs and outputs.
	n := 12 + varIntSerializeSize(uint64(len(msg.TxIn))) +
		varIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		// Outpoint 36 bytes + Sequence 4 bytes + script length + script.
		n += 40 + varIntSerializeSize(uint64(len(txIn.SignatureScript))) +
			len(txIn.SignatureScript)
	}

	for _, txOut := range msg.TxOut {
		// Value 8 bytes + script length + script.
		n += 8 + varIntSerializeSize(uint64(len(txOut.PkScript))) +
			len(txOut.PkScript)
	}

	return n
}

func varIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	}
	return 9
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := binaryserializer.PutInt32(w, msg.Version)
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint32(w, uint32(msg.Timestamp.Unix()))
	if err != nil {
		return err
	}

	err = writeVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = writeTxIn(w, ti)
		if err != nil {
			return err
		}
	}

	err = writeVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	return binaryserializer.PutUint32(w, msg.LockTime)
}

// Bytes returns the serialized transaction.
func (msg *MsgTx) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return buf.Bytes()
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	version, err := binaryserializer.Int32(r)
	if err != nil {
		return err
	}
	timestamp, err := binaryserializer.Uint32(r)
	if err != nil {
		return err
	}

	inputCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	if inputCount > maxTxInPerMessage {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", inputCount,
			maxTxInPerMessage)
		return messageError("MsgTx.Deserialize", str)
	}
	txIns := make([]*TxIn, inputCount)
	for i := range txIns {
		txIns[i] = &TxIn{}
		err = readTxIn(r, txIns[i])
		if err != nil {
			return err
		}
	}

	outputCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	if outputCount > maxTxOutPerMessage {
		str := fmt.Sprintf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", outputCount,
			maxTxOutPerMessage)
		return messageError("MsgTx.Deserialize", str)
	}
	txOuts := make([]*TxOut, outputCount)
	for i := range txOuts {
		txOuts[i] = &TxOut{}
		err = readTxOut(r, txOuts[i])
		if err != nil {
			return err
		}
	}

	lockTime, err := binaryserializer.Uint32(r)
	if err != nil {
		return err
	}

	*msg = MsgTx{
		Version:   version,
		Timestamp: time.Unix(int64(timestamp), 0),
		TxIn:      txIns,
		TxOut:     txOuts,
		LockTime:  lockTime,
	}
	return nil
}

func writeOutPoint(w io.Writer, op *OutPoint) error {
	_, err := w.Write(op.Hash[:])
	if err != nil {
		return errors.WithStack(err)
	}
	return binaryserializer.PutUint32(w, op.Index)
}

func readOutPoint(r io.Reader, op *OutPoint) error {
	_, err := io.ReadFull(r, op.Hash[:])
	if err != nil {
		return errors.WithStack(err)
	}
	op.Index, err = binaryserializer.Uint32(r)
	return err
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeOutPoint(w, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}
	err = writeVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}
	return binaryserializer.PutUint32(w, ti.Sequence)
}

func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}
	ti.SignatureScript, err = readScript(r, "transaction input signature script")
	if err != nil {
		return err
	}
	ti.Sequence, err = binaryserializer.Uint32(r)
	return err
}

func writeTxOut(w io.Writer, to *TxOut) error {
	err := binaryserializer.PutInt64(w, to.Value)
	if err != nil {
		return err
	}
	return writeVarBytes(w, to.PkScript)
}

func readTxOut(r io.Reader, to *TxOut) error {
	var err error
	to.Value, err = binaryserializer.Int64(r)
	if err != nil {
		return err
	}
	to.PkScript, err = readScript(r, "transaction output public key script")
	return err
}
