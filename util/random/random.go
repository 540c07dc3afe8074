package random

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Uint64 returns a cryptographically random uint64 value.
func Uint64() (uint64, error) {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Uint64n returns a uniformly distributed cryptographically random value in
// [0, max). Values from the biased tail of the uint64 range are rejected and
// redrawn.
func Uint64n(max uint64) (uint64, error) {
	if max == 0 {
		return 0, errors.New("random.Uint64n: max must be greater than zero")
	}
	limit := math.MaxUint64 - math.MaxUint64%max
	for {
		value, err := Uint64()
		if err != nil {
			return 0, err
		}
		if value < limit {
			return value % max, nil
		}
	}
}
