package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/karmanet/karmad/infrastructure/config"
	"github.com/karmanet/karmad/infrastructure/logger"
	"github.com/karmanet/karmad/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, "MAIN", nil)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(config.VersionString(appName))
		return
	}

	logger.InitLogStdout(logger.LevelInfo)
	params := cfg.NetParams()
	log.Debugf("Describing %s", params.Name)

	if cfg.Dump {
		dumpParams(os.Stdout, params)
	} else {
		err = describeParams(os.Stdout, params)
	}
	if err != nil {
		panics.Exit(log, fmt.Sprintf("Error writing the %s parameters: %s", params.Name, err))
	}
	logger.BackendLog.Close()
}
