package address

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/pkg/errors"
)

const privateKeyLength = 32

// EncodePrivateKey returns the wallet import format encoding of the private
// key for the given network. compressed marks that the key's public key is
// serialized in compressed form.
func EncodePrivateKey(params *chainparams.Params, privateKey *btcec.PrivateKey, compressed bool) string {
	payload := make([]byte, privateKeyLength, privateKeyLength+1)
	serialized := privateKey.Serialize()
	copy(payload[privateKeyLength-len(serialized):], serialized)
	if compressed {
		payload = append(payload, compressMagic)
	}
	return EncodeBase58Check(params.Base58Prefix(chainparams.SecretKey), payload)
}

// DecodePrivateKey decodes a wallet import format private key of the given
// network and reports whether its public key is meant to be compressed.
func DecodePrivateKey(params *chainparams.Params, wif string) (*btcec.PrivateKey, bool, error) {
	version, payload, err := DecodeBase58Check(wif, 1)
	if err != nil {
		return nil, false, errors.Wrap(err, "decoding private key")
	}
	if version[0] != params.PrivateKeyID {
		return nil, false, errors.Wrapf(ErrWrongNetwork, "private key version %d on %s", version[0], params.Name)
	}

	compressed := false
	switch {
	case len(payload) == privateKeyLength+1 && payload[privateKeyLength] == compressMagic:
		compressed = true
		payload = payload[:privateKeyLength]
	case len(payload) == privateKeyLength:
	default:
		return nil, false, errors.Errorf("malformed private key of %d bytes", len(payload))
	}

	privateKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), payload)
	return privateKey, compressed, nil
}
