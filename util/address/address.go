// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/pkg/errors"
)

const (
	checksumLength = 4

	// hash160Length is the length of the hash of a public key or script
	// that an address commits to.
	hash160Length = 20

	// compressMagic is the byte appended to a WIF private key whose public
	// key is serialized compressed.
	compressMagic byte = 0x01
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidFormat describes an error where decoding failed due to
	// invalid base58 or a string too short to hold a version and checksum.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

	// ErrWrongNetwork describes an error where an address or key belongs to
	// a network other than the one it was decoded for.
	ErrWrongNetwork = errors.New("address is for the wrong network")

	// ErrUnknownAddressType describes an error where an address can not be
	// decoded as a specific address type due to the string encoding beginning
	// with an identifier byte unknown to any registered network.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// Type is the kind of payment an address encodes.
type Type int

const (
	// PubKeyHash is a pay-to-pubkey-hash address.
	PubKeyHash Type = iota

	// ScriptHash is a pay-to-script-hash address.
	ScriptHash
)

// Address is a decoded pay-to-pubkey-hash or pay-to-script-hash address.
type Address struct {
	Type   Type
	Hash   [hash160Length]byte
	params *chainparams.Params
}

// String returns the base58check encoding of the address.
func (a *Address) String() string {
	role := chainparams.PubKeyAddress
	if a.Type == ScriptHash {
		role = chainparams.ScriptAddress
	}
	return EncodeBase58Check(a.params.Base58Prefix(role), a.Hash[:])
}

// IsForNet returns whether the address belongs to the passed network.
func (a *Address) IsForNet(params *chainparams.Params) bool {
	return a.params.Net == params.Net
}

// checksum returns the first four bytes of the double SHA-256 of input.
func checksum(input []byte) []byte {
	return chainhash.DoubleHashB(input)[:checksumLength]
}

// EncodeBase58Check prepends the version prefix to payload, appends a four
// byte checksum and encodes the result in base58. The prefix may be longer
// than one byte, as the prefixes of extended keys are.
func EncodeBase58Check(version []byte, payload []byte) string {
	b := make([]byte, 0, len(version)+len(payload)+checksumLength)
	b = append(b, version...)
	b = append(b, payload...)
	b = append(b, checksum(b)...)
	return base58.Encode(b)
}

// DecodeBase58Check decodes a string encoded by EncodeBase58Check whose
// version prefix is versionLength bytes long, and verifies its checksum.
func DecodeBase58Check(encoded string, versionLength int) (version []byte, payload []byte, err error) {
	decoded := base58.Decode(encoded)
	if len(decoded) < versionLength+checksumLength {
		return nil, nil, errors.WithStack(ErrInvalidFormat)
	}

	data := decoded[:len(decoded)-checksumLength]
	if !bytes.Equal(checksum(data), decoded[len(decoded)-checksumLength:]) {
		return nil, nil, errors.WithStack(ErrChecksumMismatch)
	}
	return data[:versionLength], data[versionLength:], nil
}

// EncodePubKeyHashAddress returns the pay-to-pubkey-hash address of the
// serialized public key on the given network. The key may be compressed or
// uncompressed; each yields a different address.
func EncodePubKeyHashAddress(params *chainparams.Params, serializedPubKey []byte) (string, error) {
	_, err := btcec.ParsePubKey(serializedPubKey, btcec.S256())
	if err != nil {
		return "", errors.Wrap(err, "invalid public key")
	}
	return EncodeBase58Check(params.Base58Prefix(chainparams.PubKeyAddress), btcutil.Hash160(serializedPubKey)), nil
}

// EncodeScriptHashAddress returns the pay-to-script-hash address of the
// redeem script on the given network.
func EncodeScriptHashAddress(params *chainparams.Params, script []byte) string {
	return EncodeBase58Check(params.Base58Prefix(chainparams.ScriptAddress), btcutil.Hash160(script))
}

// DecodeAddress decodes a pay-to-pubkey-hash or pay-to-script-hash address
// of the given network. Addresses of other registered networks are rejected
// with ErrWrongNetwork.
func DecodeAddress(params *chainparams.Params, encoded string) (*Address, error) {
	version, payload, err := DecodeBase58Check(encoded, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding address %q", encoded)
	}
	if len(payload) != hash160Length {
		return nil, errors.Errorf("address %q has a %d byte payload, expected %d",
			encoded, len(payload), hash160Length)
	}

	address := &Address{params: params}
	copy(address.Hash[:], payload)
	switch netID := version[0]; {
	case netID == params.PubKeyHashAddrID:
		address.Type = PubKeyHash
	case netID == params.ScriptHashAddrID:
		address.Type = ScriptHash
	case chainparams.IsPubKeyHashAddrID(netID) || chainparams.IsScriptHashAddrID(netID):
		return nil, errors.Wrapf(ErrWrongNetwork, "address %q on %s", encoded, params.Name)
	default:
		return nil, errors.Wrapf(ErrUnknownAddressType, "address %q", encoded)
	}
	return address, nil
}
