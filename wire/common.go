package wire

import (
	"io"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// pver is the protocol version handed to the var-int codecs. The encodings
// used here never changed between protocol versions.
const pver = 0

const (
	// MaxBlockPayload is the maximum bytes a serialized block may be.
	MaxBlockPayload = 1000000

	// MaxScriptSize is the maximum length of a signature or public key
	// script.
	MaxScriptSize = 10000

	// minTxInPayload is the minimum payload size for a transaction input:
	// previous outpoint 36 bytes + var-int script length 1 byte + sequence
	// 4 bytes.
	minTxInPayload = 41

	// minTxOutPayload is the minimum payload size for a transaction output:
	// value 8 bytes + var-int script length 1 byte.
	minTxOutPayload = 9

	// maxTxInPerMessage and maxTxOutPerMessage bound the counts read while
	// decoding so a malicious length prefix cannot force huge allocations.
	maxTxInPerMessage  = (MaxBlockPayload / minTxInPayload) + 1
	maxTxOutPerMessage = (MaxBlockPayload / minTxOutPayload) + 1

	// maxTxPerBlock is the maximum number of transactions that could
	// possibly fit into a block.
	maxTxPerBlock = (MaxBlockPayload / 60) + 1
)

// messageError describes an issue with a message that was being decoded.
func messageError(f string, desc string) error {
	return errors.Errorf("%s: %s", f, desc)
}

func writeVarInt(w io.Writer, val uint64) error {
	return errors.WithStack(btcwire.WriteVarInt(w, pver, val))
}

func readVarInt(r io.Reader) (uint64, error) {
	val, err := btcwire.ReadVarInt(r, pver)
	return val, errors.WithStack(err)
}

func writeVarBytes(w io.Writer, bytes []byte) error {
	return errors.WithStack(btcwire.WriteVarBytes(w, pver, bytes))
}

func readScript(r io.Reader, fieldName string) ([]byte, error) {
	script, err := btcwire.ReadVarBytes(r, pver, MaxScriptSize, fieldName)
	return script, errors.WithStack(err)
}
