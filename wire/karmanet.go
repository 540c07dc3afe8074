package wire

import (
	"encoding/binary"
	"fmt"
)

// KarmaNet represents which karma network a message belongs to. Its four
// little-endian bytes are the message start that prefixes every peer
// message on that network.
type KarmaNet uint32

// Constants used to indicate the message karma network.
const (
	// Mainnet represents the main karma network.
	Mainnet KarmaNet = 0xaf1b8a9f

	// Testnet represents the public test network.
	Testnet KarmaNet = 0x177961a8

	// Regtest represents the local regression test network.
	Regtest KarmaNet = 0xdab5bff1
)

// knStrings is a map of karma networks back to their constant names for
// pretty printing.
var knStrings = map[KarmaNet]string{
	Mainnet: "Mainnet",
	Testnet: "Testnet",
	Regtest: "Regtest",
}

// String returns the KarmaNet in human-readable form.
func (n KarmaNet) String() string {
	if s, ok := knStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown KarmaNet (%d)", uint32(n))
}

// MessageStart returns the four bytes, in wire order, that start every
// message sent on the network.
func (n KarmaNet) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(n))
	return start
}

// KarmaNetFromMessageStart is the inverse of KarmaNet.MessageStart.
func KarmaNetFromMessageStart(start [4]byte) KarmaNet {
	return KarmaNet(binary.LittleEndian.Uint32(start[:]))
}
