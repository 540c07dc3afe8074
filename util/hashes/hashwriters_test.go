package hashes

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func TestHashWritersMatchOneShotHashing(t *testing.T) {
	chunks := [][]byte{
		[]byte("Time to fix "),
		[]byte("your "),
		{},
		[]byte("KARMA"),
	}
	var whole []byte
	single := NewHashWriter()
	double := NewDoubleHashWriter()
	for _, chunk := range chunks {
		whole = append(whole, chunk...)
		if n, err := single.Write(chunk); n != len(chunk) || err != nil {
			t.Fatalf("HashWriter.Write returned (%d, %v)", n, err)
		}
		if n, err := double.Write(chunk); n != len(chunk) || err != nil {
			t.Fatalf("DoubleHashWriter.Write returned (%d, %v)", n, err)
		}
	}

	if got, want := single.Finalize(), chainhash.HashH(whole); got != want {
		t.Errorf("HashWriter: got %s, want %s", got, want)
	}
	if got, want := double.Finalize(), chainhash.DoubleHashH(whole); got != want {
		t.Errorf("DoubleHashWriter: got %s, want %s", got, want)
	}
}
