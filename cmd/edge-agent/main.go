package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/urbanflow/edge-agent/internal/config"
	"github.com/urbanflow/edge-agent/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var configPath string
	var dumpPath string
	flag.StringVar(&configPath, "c", "", "JSON config file path")
	flag.StringVar(&configPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&dumpPath, "dump", "", "Write the effective config to this file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG")
	}

	cfg, err := config.GetConfig(configPath)
	if err != nil {
		// No config yet, so log with bootstrap settings.
		logger.NewLogger("edge-agent", config.Logging{EnableConsole: true}).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("edge-agent", cfg.Logging)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration validation failed")
	}

	if dumpPath != "" {
		if err := cfg.SaveToFile(dumpPath); err != nil {
			log.Fatal().Err(err).Str("path", dumpPath).Msg("error saving configs")
		}
		log.Info().Str("path", dumpPath).Msg("saved effective config")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
