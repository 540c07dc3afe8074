package chainparams

import (
	"context"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

// searchProgressMask decides how often SearchGenesis reports progress and
// checks for cancellation: whenever the nonce has these bits clear.
const searchProgressMask = 0xfff

// SearchGenesis looks for a nonce that makes the hash of header less than or
// equal to target. The search starts at the header's current nonce, and each
// time the nonce wraps around to zero the timestamp is moved one second
// forward. The passed header is not modified; the matching header is
// returned.
//
// The search has no upper bound, so it is only used by offline tooling that
// mints the genesis block of a new network. It returns ctx.Err() once ctx is
// done.
func SearchGenesis(ctx context.Context, header *wire.BlockHeader, target *big.Int) (*wire.BlockHeader, error) {
	if target.Sign() < 0 {
		return nil, errors.Errorf("negative genesis search target %s", target)
	}

	candidate := *header
	log.Infof("Searching for genesis block with target %064x", target)
	for {
		hash := candidate.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			log.Infof("Found genesis block: time %d, nonce %d, hash %s, merkle root %s",
				candidate.Timestamp.Unix(), candidate.Nonce, hash, candidate.MerkleRoot)
			return &candidate, nil
		}

		if candidate.Nonce&searchProgressMask == 0 {
			log.Debugf("nonce %08x: hash = %s (target = %064x)", candidate.Nonce, hash, target)
			select {
			case <-ctx.Done():
				return nil, errors.WithStack(ctx.Err())
			default:
			}
		}

		candidate.Nonce++
		if candidate.Nonce == 0 {
			log.Infof("Nonce wrapped, incrementing time")
			candidate.Timestamp = candidate.Timestamp.Add(time.Second)
		}
	}
}
