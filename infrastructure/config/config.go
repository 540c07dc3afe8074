// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/infrastructure/logger"
	"github.com/karmanet/karmad/util/network"
	"github.com/karmanet/karmad/version"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "karmad.log"
	defaultErrLogFilename = "karmad_err.log"
	defaultRPCListener    = "localhost"
)

var (
	// DefaultAppDir is the default home directory for karmad.
	DefaultAppDir = btcutil.AppDataDir("karmad", false)
)

// ErrShowVersion is returned by LoadConfig when the version was requested.
// The caller prints the version and exits.
var ErrShowVersion = errors.New("version requested")

// Flags defines the configuration options for karmad.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion  bool     `short:"V" long:"version" description:"Display version information and exit"`
	AppDir       string   `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir       string   `long:"logdir" description:"Directory to log output."`
	DebugLevel   string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	RPCListeners []string `long:"rpclisten" description:"Add an interface/port to listen for RPC connections (default port: 19187, testnet: 17891)"`
	RPCUser      string   `short:"u" long:"rpcuser" description:"Username for RPC connections"`
	RPCPass      string   `short:"P" long:"rpcpass" default-mask:"-" description:"Password for RPC connections"`
	NetworkFlags
}

// Config defines the configuration options for karmad after the network has
// been resolved and the directories derived from it.
type Config struct {
	*Flags

	// DataDir is the network specific data directory inside AppDir.
	DataDir string

	LogFile    string
	ErrLogFile string
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func defaultFlags() *Flags {
	return &Flags{
		AppDir:     DefaultAppDir,
		DebugLevel: defaultLogLevel,
	}
}

// LoadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Parse the command line options
// 	3) Select the requested network
// 	4) Derive the network specific data and log directories
//
// The active network is selected as a side effect. ErrShowVersion is
// returned when --version was passed.
func LoadConfig(args []string) (*Config, error) {
	cfgFlags := defaultFlags()
	parser := flags.NewParser(cfgFlags, flags.HelpFlag)
	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); !ok || flagsErr.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	if cfgFlags.ShowVersion {
		return nil, ErrShowVersion
	}

	err = cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Flags: cfgFlags}
	params := cfg.NetParams()

	cfg.AppDir = cleanAndExpandPath(cfg.AppDir)
	cfg.DataDir = filepath.Join(cfg.AppDir, params.DataDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogFile = filepath.Join(cfg.LogDir, defaultLogFilename)
	cfg.ErrLogFile = filepath.Join(cfg.LogDir, defaultErrLogFilename)

	if cfg.DebugLevel != "show" {
		err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
		if err != nil {
			return nil, err
		}
	}

	if len(cfg.RPCListeners) > 0 && cfg.RPCCredentialsRequired() && (cfg.RPCUser == "" || cfg.RPCPass == "") {
		return nil, errors.Errorf("the RPC server on %s requires --rpcuser and --rpcpass", params.Name)
	}

	log.Debugf("Loaded configuration for %s, data directory %s", params.Name, cfg.DataDir)
	return cfg, nil
}

// NormalizedRPCListeners returns the RPC listen addresses with the network
// default RPC port added where missing. Without configured listeners it
// returns the default listener.
func (cfg *Config) NormalizedRPCListeners() ([]string, error) {
	listeners := cfg.RPCListeners
	if len(listeners) == 0 {
		listeners = []string{defaultRPCListener}
	}
	return network.NormalizeAddresses(listeners, cfg.NetParams().RPCPort)
}

// RPCCredentialsRequired returns whether the RPC server of the selected
// network refuses to run without a user and password.
func (cfg *Config) RPCCredentialsRequired() bool {
	return cfg.NetParams().RequireRPCPassword
}

// VersionString returns the line printed for --version.
func VersionString(appName string) string {
	return fmt.Sprintf("%s version %s", appName, version.Version())
}
