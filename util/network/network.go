package network

import (
	"net"

	"github.com/pkg/errors"
)

// NormalizeAddresses returns a new slice with all the passed peer addresses
// normalized with the given default port, and all duplicates removed. The
// input slice is left untouched.
func NormalizeAddresses(addrs []string, defaultPort string) ([]string, error) {
	normalized := make([]string, 0, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for _, addr := range addrs {
		addrWithPort, err := NormalizeAddress(addr, defaultPort)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[addrWithPort]; ok {
			continue
		}
		seen[addrWithPort] = struct{}{}
		normalized = append(normalized, addrWithPort)
	}
	return normalized, nil
}

// NormalizeAddress returns addr with the passed default port appended if
// there is not already a port specified.
func NormalizeAddress(addr, defaultPort string) (string, error) {
	_, _, err := net.SplitHostPort(addr)
	if err == nil {
		return addr, nil
	}

	// net.SplitHostPort returns an error if the given host is missing a
	// port, but theoretically it can return an error for other reasons,
	// and this is why we check addrWithPort for validity.
	addrWithPort := net.JoinHostPort(addr, defaultPort)
	_, _, err = net.SplitHostPort(addrWithPort)
	if err != nil {
		return "", errors.Wrapf(err, "invalid address %q", addr)
	}
	return addrWithPort, nil
}
