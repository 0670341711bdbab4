// Command lcbgen builds the Local Celestial Bodies SQLite database from the
// fixed planet and orbit-class tables and the CSV datasets in a data
// directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/andrewkroh/go-celestial-db/internal/config"
	"github.com/andrewkroh/go-celestial-db/internal/generator"
	"github.com/andrewkroh/go-celestial-db/internal/logger"
)

func main() {
	var (
		configFile string
		verbose    bool
		dataDir    string
		output     string
		seed       string
	)

	flag.StringVar(&configFile, "config", "", "Path to a YAML or JSON configuration file (optional)")
	flag.BoolVar(&verbose, "v", false, "Log progress")
	flag.BoolVar(&verbose, "verbose", false, "Log progress")
	flag.StringVar(&dataDir, "data", "", "Directory containing the CSV sources (default \"data\")")
	flag.StringVar(&output, "output", "", "Output SQLite file (default \"lcb.db\")")
	flag.StringVar(&seed, "seed", "", "Seed for the synthesized attributes (default random)")
	flag.Parse()

	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags override file and environment.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v", "verbose":
			cfg.Verbose = verbose
		case "data":
			cfg.DataDir = dataDir
		case "output":
			cfg.Output = output
		case "seed":
			s, err := strconv.ParseUint(seed, 10, 64)
			if err != nil {
				flagErr = fmt.Errorf("invalid -seed: %w", err)
				return
			}
			cfg.Seed = &s
		}
	})
	if flagErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", flagErr)
		os.Exit(1)
	}

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.ForVerbosity(cfg.Verbose)
	logCfg.Format = cfg.LogFormat
	log := logger.New(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := generator.Run(ctx, generator.FromConfig(cfg), log); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	if err := config.LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
