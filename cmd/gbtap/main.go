package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gbtap/internal/receiver"
	"gbtap/internal/shared/config"
	"gbtap/internal/shared/logger"
	"gbtap/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "gbtap.ini")

	cfg := types.NewDefault()
	if err := config.LoadIni(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	rcv := receiver.New(cfg, receiver.NewLineSink(os.Stdout))
	if err := rcv.Run(); err != nil {
		logger.Error().Err(err).Msg("Connection failed")
		os.Exit(1)
	}
}
