package chainparams

import (
	"github.com/karmanet/karmad/wire"
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a karma
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate karma network")

	// ErrDuplicatePrefix describes an error where a network uses an
	// address or key prefix already used by a registered network, which
	// would make encoded strings ambiguous between the two.
	ErrDuplicatePrefix = errors.New("address prefix already used by another network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

var (
	registeredNets     = make(map[wire.KarmaNet]struct{})
	registeredIDs      = make(map[NetworkID]struct{})
	registeredNames    = make(map[string]*Params)
	pubKeyHashAddrIDs  = make(map[byte]struct{})
	scriptHashAddrIDs  = make(map[byte]struct{})
	privateKeyIDs      = make(map[byte]struct{})
	hdPrivToPubKeyIDs  = make(map[[4]byte][]byte)
	registeredHDPubIDs = make(map[[4]byte]struct{})
)

// Register registers the network parameters for a karma network. This may
// error with ErrDuplicateNet if the network is already registered, or with
// ErrDuplicatePrefix if any of its address or key prefixes is used by a
// network registered before it. Nothing is registered on error.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return errors.Wrapf(ErrDuplicateNet, "magic %s", params.Net)
	}
	if _, ok := registeredIDs[params.ID]; ok {
		return errors.Wrapf(ErrDuplicateNet, "network id %s", params.ID)
	}
	if _, ok := registeredNames[params.Name]; ok {
		return errors.Wrapf(ErrDuplicateNet, "network name %s", params.Name)
	}

	prefixChecks := []struct {
		role     string
		used     map[byte]struct{}
		prefixID byte
	}{
		{"pubkey hash address", pubKeyHashAddrIDs, params.PubKeyHashAddrID},
		{"script hash address", scriptHashAddrIDs, params.ScriptHashAddrID},
		{"private key", privateKeyIDs, params.PrivateKeyID},
	}
	for _, check := range prefixChecks {
		if _, ok := check.used[check.prefixID]; ok {
			return errors.Wrapf(ErrDuplicatePrefix, "%s prefix %d of %s", check.role, check.prefixID, params.Name)
		}
	}
	if _, ok := hdPrivToPubKeyIDs[params.HDPrivateKeyID]; ok {
		return errors.Wrapf(ErrDuplicatePrefix, "extended private key prefix %x of %s",
			params.HDPrivateKeyID, params.Name)
	}
	if _, ok := registeredHDPubIDs[params.HDPublicKeyID]; ok {
		return errors.Wrapf(ErrDuplicatePrefix, "extended public key prefix %x of %s",
			params.HDPublicKeyID, params.Name)
	}

	registeredNets[params.Net] = struct{}{}
	registeredIDs[params.ID] = struct{}{}
	registeredNames[params.Name] = params
	for _, check := range prefixChecks {
		check.used[check.prefixID] = struct{}{}
	}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]
	registeredHDPubIDs[params.HDPublicKeyID] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-pubkey-hash address on any registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-script-hash address on any registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id. When the
// provided id is not registered, the ErrUnknownHDKeyID error will be
// returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return append([]byte(nil), pubBytes...), nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainnetParams)
	mustRegister(TestnetParams)
	mustRegister(RegtestParams)

	activeParams.Store(MainnetParams)
}
