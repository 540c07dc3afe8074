package chainparams

import (
	"net"
	"time"

	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/karmanet/karmad/util/random"
	"github.com/pkg/errors"
)

const oneWeek = 7 * 24 * time.Hour

// SeedSpec is a compiled-in fixed seed: a 16 byte IPv6 address, with IPv4
// nodes given in IPv4-mapped form, and a port.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// ConvertSeeds turns a fixed seed table into network addresses. Each address
// gets a random last seen time between two weeks and one week ago, so that
// addresses learned from live peers are always preferred over fixed seeds.
func ConvertSeeds(specs []SeedSpec) ([]*btcwire.NetAddress, error) {
	return convertSeeds(specs, time.Now(), random.Uint64n)
}

// convertSeeds is ConvertSeeds with an injectable clock and randomness
// source. randUint64n must return a value in [0, max).
func convertSeeds(specs []SeedSpec, now time.Time,
	randUint64n func(max uint64) (uint64, error)) ([]*btcwire.NetAddress, error) {

	now = time.Unix(now.Unix(), 0)
	weekSeconds := uint64(oneWeek / time.Second)

	addresses := make([]*btcwire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		offset, err := randUint64n(weekSeconds)
		if err != nil {
			return nil, errors.Wrap(err, "failed to randomize a seed last seen time")
		}
		if offset >= weekSeconds {
			return nil, errors.Errorf("random seed offset %d out of range [0, %d)", offset, weekSeconds)
		}

		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])
		address := btcwire.NewNetAddressIPPort(ip, spec.Port, btcwire.SFNodeNetwork)
		address.Timestamp = now.Add(-2*oneWeek + time.Duration(offset)*time.Second)
		addresses = append(addresses, address)
	}
	return addresses, nil
}

// mustConvertSeeds performs the same function as ConvertSeeds except it
// panics on an error. It is only called while building the network
// parameters.
func mustConvertSeeds(specs []SeedSpec) []*btcwire.NetAddress {
	addresses, err := ConvertSeeds(specs)
	if err != nil {
		panic(err)
	}
	return addresses
}
