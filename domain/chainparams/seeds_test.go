package chainparams

import (
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec {
	spec := SeedSpec{Port: port}
	copy(spec.Addr[:], net.IPv4(a, b, c, d).To16())
	return spec
}

func TestConvertSeedsLastSeenRange(t *testing.T) {
	now := time.Unix(1600000000, 0)
	weekSeconds := uint64(oneWeek / time.Second)
	offsets := []uint64{0, 1, weekSeconds / 2, weekSeconds - 1}

	specs := make([]SeedSpec, len(offsets))
	for i := range specs {
		specs[i] = ipv4Seed(10, 0, 0, byte(i), 19188)
	}

	next := 0
	fixedRandom := func(max uint64) (uint64, error) {
		if max != weekSeconds {
			t.Fatalf("random bound %d, want %d", max, weekSeconds)
		}
		offset := offsets[next]
		next++
		return offset, nil
	}

	addresses, err := convertSeeds(specs, now, fixedRandom)
	if err != nil {
		t.Fatalf("convertSeeds: %v", err)
	}
	if len(addresses) != len(specs) {
		t.Fatalf("got %d addresses, want %d", len(addresses), len(specs))
	}

	wantFirst := now.Add(-2 * oneWeek)
	wantLast := now.Add(-oneWeek - time.Second)
	if !addresses[0].Timestamp.Equal(wantFirst) {
		t.Errorf("smallest offset gave %v, want %v", addresses[0].Timestamp, wantFirst)
	}
	if !addresses[len(addresses)-1].Timestamp.Equal(wantLast) {
		t.Errorf("largest offset gave %v, want %v", addresses[len(addresses)-1].Timestamp, wantLast)
	}
}

func TestConvertSeedsAddresses(t *testing.T) {
	var ipv6Spec SeedSpec
	copy(ipv6Spec.Addr[:], net.ParseIP("2001:db8::1"))
	ipv6Spec.Port = 17899
	specs := []SeedSpec{ipv4Seed(192, 168, 1, 20, 19188), ipv6Spec}

	now := time.Now()
	addresses, err := ConvertSeeds(specs)
	if err != nil {
		t.Fatalf("ConvertSeeds: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("got %d addresses, want 2", len(addresses))
	}

	if !addresses[0].IP.Equal(net.IPv4(192, 168, 1, 20)) || addresses[0].IP.To4() == nil {
		t.Errorf("IPv4-mapped seed decoded as %s", addresses[0].IP)
	}
	if addresses[0].Port != 19188 {
		t.Errorf("port %d, want 19188", addresses[0].Port)
	}
	if !addresses[1].IP.Equal(net.ParseIP("2001:db8::1")) || addresses[1].Port != 17899 {
		t.Errorf("IPv6 seed decoded as [%s]:%d", addresses[1].IP, addresses[1].Port)
	}

	// Addresses must not alias the compiled-in table.
	specs[0].Addr[15] = 99
	if !addresses[0].IP.Equal(net.IPv4(192, 168, 1, 20)) {
		t.Errorf("address aliases the seed table")
	}

	earliest := now.Add(-2*oneWeek - time.Second)
	for _, address := range addresses {
		if address.Timestamp.Before(earliest) || !address.Timestamp.Before(now.Add(-oneWeek)) {
			t.Errorf("last seen %v outside [now-2w, now-1w)", address.Timestamp)
		}
	}
}

func TestConvertSeedsManyRandom(t *testing.T) {
	const count = 200
	specs := make([]SeedSpec, count)
	for i := range specs {
		specs[i] = ipv4Seed(10, 1, byte(i>>8), byte(i), uint16(1000+i))
	}

	now := time.Unix(1700000000, 0)
	start := time.Now()
	addresses, err := convertSeeds(specs, now, func(max uint64) (uint64, error) {
		return uint64(time.Since(start).Nanoseconds()) % max, nil
	})
	if err != nil {
		t.Fatalf("convertSeeds: %v", err)
	}
	if len(addresses) != count {
		t.Fatalf("got %d addresses, want %d", len(addresses), count)
	}
	for i, address := range addresses {
		if address.Timestamp.Before(now.Add(-2*oneWeek)) || !address.Timestamp.Before(now.Add(-oneWeek)) {
			t.Errorf("address %d: last seen %v outside [now-2w, now-1w)", i, address.Timestamp)
		}
		if address.Port != uint16(1000+i) {
			t.Errorf("address %d: port %d, want %d", i, address.Port, 1000+i)
		}
	}
}

func TestConvertSeedsRandomErrors(t *testing.T) {
	specs := []SeedSpec{ipv4Seed(127, 0, 0, 1, 1)}
	now := time.Unix(1700000000, 0)

	failure := errors.New("no entropy")
	_, err := convertSeeds(specs, now, func(uint64) (uint64, error) { return 0, failure })
	if !errors.Is(err, failure) {
		t.Errorf("got %v, want the randomness error", err)
	}

	_, err = convertSeeds(specs, now, func(max uint64) (uint64, error) { return max, nil })
	if err == nil {
		t.Errorf("an out of range random offset was accepted")
	}
}

func TestConvertSeedsEmpty(t *testing.T) {
	addresses, err := ConvertSeeds(nil)
	if err != nil {
		t.Fatalf("ConvertSeeds(nil): %v", err)
	}
	if len(addresses) != 0 {
		t.Errorf("got %d addresses from an empty table", len(addresses))
	}
	if len(MainnetParams.FixedSeeds) != len(mainSeeds) || len(TestnetParams.FixedSeeds) != len(testnetSeeds) {
		t.Errorf("fixed seeds do not match the seed tables")
	}
}

func TestSeedTablesMatchFixedSeeds(t *testing.T) {
	tables := []struct {
		params *Params
		specs  []SeedSpec
	}{
		{MainnetParams, mainSeeds},
		{TestnetParams, testnetSeeds},
		{RegtestParams, testnetSeeds},
	}
	for _, table := range tables {
		if len(table.params.FixedSeeds) != len(table.specs) {
			t.Errorf("%s: got %d fixed seeds from a table of %d", table.params.Name,
				len(table.params.FixedSeeds), len(table.specs))
			continue
		}
		for i, spec := range table.specs {
			seed := table.params.FixedSeeds[i]
			if !seed.IP.Equal(net.IP(spec.Addr[:])) || seed.Port != spec.Port {
				t.Errorf("%s: seed %d is %s:%d, want %s:%d", table.params.Name, i,
					seed.IP, seed.Port, net.IP(spec.Addr[:]), spec.Port)
			}
		}
	}
}
