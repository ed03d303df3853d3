package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "azcensus",
		Short: "Azure subscription resource census",
		Long: `Azcensus - Azure Subscription Resource Census

Azcensus counts the cloud resources that matter for sizing and licensing
across every enabled subscription you can see: virtual machines, potential
AKS node capacity, container instances and apps, function apps, storage
accounts, managed databases, and container registries.

One subscription's failure never aborts the run; errors are collected
and reported once at the end.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`Azcensus {{.Version}} - Azure Subscription Resource Census
`)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cobra.OnInitialize(setupLogging)
}

// setupLogging configures zerolog for console output on stderr.
func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
