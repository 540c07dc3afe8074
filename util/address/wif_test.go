package address

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/pkg/errors"
)

func keyOne() *btcec.PrivateKey {
	key := make([]byte, privateKeyLength)
	key[privateKeyLength-1] = 1
	privateKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), key)
	return privateKey
}

func TestEncodePrivateKey(t *testing.T) {
	tests := []struct {
		params     *chainparams.Params
		compressed bool
		want       string
	}{
		{chainparams.MainnetParams, true, "SbK5uvLdHbVnaXHtg7HVj7NG4AkrRPumARmYoawNwnP8imV6JfYz"},
		{chainparams.RegtestParams, false, "91avARGdfge8E4tZfYLoxeJ5sGBdNJQH4kvjJoQFacbgwmaKkrx"},
	}

	for _, test := range tests {
		got := EncodePrivateKey(test.params, keyOne(), test.compressed)
		if got != test.want {
			t.Errorf("%s: got %s, want %s", test.params.Name, got, test.want)
			continue
		}

		privateKey, compressed, err := DecodePrivateKey(test.params, got)
		if err != nil {
			t.Errorf("%s: DecodePrivateKey: %v", test.params.Name, err)
			continue
		}
		if compressed != test.compressed || privateKey.D.Int64() != 1 {
			t.Errorf("%s: decoded key %s, compressed %t", test.params.Name, privateKey.D, compressed)
		}
	}
}

func TestDecodePrivateKeyWrongNetwork(t *testing.T) {
	wif := EncodePrivateKey(chainparams.TestnetParams, keyOne(), true)
	_, _, err := DecodePrivateKey(chainparams.MainnetParams, wif)
	if !errors.Is(err, ErrWrongNetwork) {
		t.Errorf("got %v, want %v", err, ErrWrongNetwork)
	}

	malformed := EncodeBase58Check([]byte{chainparams.MainnetParams.PrivateKeyID}, make([]byte, 31))
	if _, _, err := DecodePrivateKey(chainparams.MainnetParams, malformed); err == nil {
		t.Errorf("a short private key was accepted")
	}
}
