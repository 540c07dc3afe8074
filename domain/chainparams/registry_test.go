package chainparams

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestActiveParamsDefaultsToMainnet(t *testing.T) {
	defer SelectNetwork(Mainnet)

	if ActiveParams() != MainnetParams {
		t.Fatalf("active network before selection is %s, want mainnet", ActiveParams().Name)
	}
}

func TestSelectNetwork(t *testing.T) {
	defer SelectNetwork(Mainnet)

	for _, id := range []NetworkID{Testnet, Regtest, Mainnet, Regtest, Regtest} {
		SelectNetwork(id)
		if got := ActiveParams().ID; got != id {
			t.Errorf("after SelectNetwork(%s) the active network is %s", id, got)
		}
	}
}

func TestSelectNetworkUnknownPanics(t *testing.T) {
	defer SelectNetwork(Mainnet)
	SelectNetwork(Testnet)

	func() {
		defer func() {
			if err := recover(); err == nil {
				t.Errorf("SelectNetwork did not panic on an unknown network")
			}
		}()
		SelectNetwork(NetworkID(42))
	}()

	if ActiveParams() != TestnetParams {
		t.Errorf("failed selection changed the active network to %s", ActiveParams().Name)
	}
}

func TestSelectFromStartupFlags(t *testing.T) {
	defer SelectNetwork(Mainnet)

	tests := []struct {
		previous NetworkID
		testnet  bool
		regtest  bool
		want     *Params
	}{
		{Regtest, false, false, MainnetParams},
		{Mainnet, true, false, TestnetParams},
		{Mainnet, false, true, RegtestParams},
		{Testnet, false, true, RegtestParams},
	}
	for _, test := range tests {
		SelectNetwork(test.previous)
		if err := SelectFromStartupFlags(test.testnet, test.regtest); err != nil {
			t.Errorf("SelectFromStartupFlags(%t, %t): %v", test.testnet, test.regtest, err)
			continue
		}
		if ActiveParams() != test.want {
			t.Errorf("SelectFromStartupFlags(%t, %t) selected %s, want %s",
				test.testnet, test.regtest, ActiveParams().Name, test.want.Name)
		}
	}

	SelectNetwork(Testnet)
	err := SelectFromStartupFlags(true, true)
	if !errors.Is(err, ErrConflictingNetworks) {
		t.Errorf("SelectFromStartupFlags(true, true) = %v, want %v", err, ErrConflictingNetworks)
	}
	if ActiveParams() != TestnetParams {
		t.Errorf("conflicting flags changed the active network to %s", ActiveParams().Name)
	}
}

func TestParamsLookup(t *testing.T) {
	for _, params := range allParams() {
		byID, err := ParamsForNetwork(params.ID)
		if err != nil || byID != params {
			t.Errorf("ParamsForNetwork(%s) = %p, %v", params.ID, byID, err)
		}
		byName, err := ParamsForName(params.Name)
		if err != nil || byName != params {
			t.Errorf("ParamsForName(%s) = %p, %v", params.Name, byName, err)
		}
	}

	if _, err := ParamsForNetwork(NetworkID(-1)); !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("ParamsForNetwork(-1) = %v, want %v", err, ErrUnknownNetwork)
	}
	if _, err := ParamsForName("simnet"); !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("ParamsForName(simnet) = %v, want %v", err, ErrUnknownNetwork)
	}
}

func TestActiveParamsConcurrentReaders(t *testing.T) {
	defer SelectNetwork(Mainnet)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				params := ActiveParams()
				if params != MainnetParams && params != RegtestParams {
					t.Errorf("reader observed unexpected network %s", params.Name)
					return
				}
			}
		}()
	}
	SelectNetwork(Regtest)
	wg.Wait()
}
