package config

import (
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/domain/chainparams"
	"github.com/pkg/errors"
)

func TestLoadConfigNetworkDirectories(t *testing.T) {
	defer chainparams.SelectNetwork(chainparams.Mainnet)
	appDir := t.TempDir()

	tests := []struct {
		args        []string
		wantParams  *chainparams.Params
		wantDataDir string
	}{
		{nil, chainparams.MainnetParams, appDir},
		{[]string{"--testnet"}, chainparams.TestnetParams, filepath.Join(appDir, "testnet")},
		{[]string{"--regtest"}, chainparams.RegtestParams, filepath.Join(appDir, "regtest")},
	}

	for _, test := range tests {
		args := append([]string{"--appdir", appDir}, test.args...)
		cfg, err := LoadConfig(args)
		if err != nil {
			t.Errorf("LoadConfig(%v): %v", args, err)
			continue
		}
		if cfg.NetParams() != test.wantParams || chainparams.ActiveParams() != test.wantParams {
			t.Errorf("LoadConfig(%v) selected %s", args, cfg.NetParams().Name)
		}
		if cfg.DataDir != test.wantDataDir {
			t.Errorf("LoadConfig(%v): DataDir = %s, want %s", args, cfg.DataDir, test.wantDataDir)
		}
		wantLogFile := filepath.Join(test.wantDataDir, defaultLogDirname, defaultLogFilename)
		if cfg.LogFile != wantLogFile {
			t.Errorf("LoadConfig(%v): LogFile = %s, want %s", args, cfg.LogFile, wantLogFile)
		}
	}
}

func TestLoadConfigConflictingNetworks(t *testing.T) {
	defer chainparams.SelectNetwork(chainparams.Mainnet)
	chainparams.SelectNetwork(chainparams.Regtest)

	_, err := LoadConfig([]string{"--testnet", "--regtest"})
	if !errors.Is(err, chainparams.ErrConflictingNetworks) {
		t.Errorf("got %v, want %v", err, chainparams.ErrConflictingNetworks)
	}
	if chainparams.ActiveParams() != chainparams.RegtestParams {
		t.Errorf("conflicting flags changed the active network")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	defer chainparams.SelectNetwork(chainparams.Mainnet)

	if _, err := LoadConfig([]string{"--version"}); !errors.Is(err, ErrShowVersion) {
		t.Errorf("--version: got %v, want %v", err, ErrShowVersion)
	}

	_, err := LoadConfig([]string{"--help"})
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
		t.Errorf("--help: got %v, want a help error", err)
	}

	if _, err := LoadConfig([]string{"--no-such-flag"}); err == nil {
		t.Errorf("an unknown flag was accepted")
	}
	if _, err := LoadConfig([]string{"--debuglevel", "loud"}); err == nil {
		t.Errorf("an invalid debug level was accepted")
	}
}

func TestRPCCredentials(t *testing.T) {
	defer chainparams.SelectNetwork(chainparams.Mainnet)
	appDir := t.TempDir()

	_, err := LoadConfig([]string{"--appdir", appDir, "--rpclisten", "127.0.0.1"})
	if err == nil {
		t.Errorf("mainnet RPC listener without credentials was accepted")
	}

	cfg, err := LoadConfig([]string{"--appdir", appDir, "--rpclisten", "127.0.0.1", "-u", "user", "-P", "pass"})
	if err != nil {
		t.Fatalf("mainnet with credentials: %v", err)
	}
	if !cfg.RPCCredentialsRequired() {
		t.Errorf("mainnet does not require RPC credentials")
	}

	cfg, err = LoadConfig([]string{"--appdir", appDir, "--regtest", "--rpclisten", "127.0.0.1",
		"--rpclisten", "127.0.0.1:17891", "--rpclisten", "[::1]:1234"})
	if err != nil {
		t.Fatalf("regtest without credentials: %v", err)
	}
	if cfg.RPCCredentialsRequired() {
		t.Errorf("regtest requires RPC credentials")
	}

	listeners, err := cfg.NormalizedRPCListeners()
	if err != nil {
		t.Fatalf("NormalizedRPCListeners: %v", err)
	}
	want := []string{"127.0.0.1:17891", "[::1]:1234"}
	if len(listeners) != len(want) || listeners[0] != want[0] || listeners[1] != want[1] {
		t.Errorf("NormalizedRPCListeners = %v, want %v", listeners, want)
	}
}

func TestDefaultRPCListener(t *testing.T) {
	defer chainparams.SelectNetwork(chainparams.Mainnet)

	cfg, err := LoadConfig([]string{"--appdir", t.TempDir(), "--testnet"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	listeners, err := cfg.NormalizedRPCListeners()
	if err != nil {
		t.Fatalf("NormalizedRPCListeners: %v", err)
	}
	if len(listeners) != 1 || listeners[0] != "localhost:17891" {
		t.Errorf("default listeners = %v, want [localhost:17891]", listeners)
	}
}
