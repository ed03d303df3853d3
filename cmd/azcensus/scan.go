package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yairfalse/azcensus/census"
	"github.com/yairfalse/azcensus/config"
	"github.com/yairfalse/azcensus/providers"
	_ "github.com/yairfalse/azcensus/providers/azure" // Register Azure provider
	"github.com/yairfalse/azcensus/report"
	"github.com/yairfalse/azcensus/storage"
	"github.com/yairfalse/azcensus/types"
)

// ScanCommand implements the 'azcensus scan' command
type ScanCommand struct {
	ConfigPath string
	Profile    string
	Output     string
	Ignore     []string
	Timeout    time.Duration
	NoStore    bool
	StorePath  string
}

// Run executes the scan command
func (cmd *ScanCommand) Run() error {
	ctx := context.Background()

	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}

	provider, err := providers.GetProvider(ctx, cfg.Provider, providers.ProviderConfig{
		Profile: cfg.Profile,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}

	scanner := census.NewScanner(provider, log.Logger, census.Options{
		CallTimeout: cfg.CallTimeout,
		Ignore:      cfg.Ignore,
	})

	run, err := scanner.Run(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	previous := cmd.recordRun(cfg, run)

	reporter := report.NewReporter(os.Stdout)
	if cmd.Output == "json" {
		if err := reporter.WriteJSON(run); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	} else {
		reporter.WriteRun(run)
		if previous != nil {
			reporter.WriteDelta(run.Totals, previous.Totals)
		}
	}

	if len(run.Errors) > 0 {
		return fmt.Errorf("census completed with %d errors", len(run.Errors))
	}
	return nil
}

// loadConfig merges the optional config file with command-line flags;
// flags win.
func (cmd *ScanCommand) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cmd.ConfigPath != "" {
		loaded, err := config.LoadConfig(cmd.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Profile != "" {
		cfg.Profile = cmd.Profile
	}
	if cmd.Timeout > 0 {
		cfg.CallTimeout = cmd.Timeout
	}
	if len(cmd.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, cmd.Ignore...)
	}
	if cmd.NoStore {
		cfg.Store.Disabled = true
	}
	if cmd.StorePath != "" {
		cfg.Store.Path = cmd.StorePath
	}

	return cfg, nil
}

// recordRun persists the run and returns the previous one for delta
// display. Store trouble never fails the scan.
func (cmd *ScanCommand) recordRun(cfg *config.Config, run *types.Run) *types.Run {
	if cfg.Store.Disabled {
		return nil
	}

	path, err := cfg.StorePath()
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve run store path")
		return nil
	}

	store, err := storage.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open run store")
		return nil
	}
	defer func() { _ = store.Close() }()

	previous, err := store.LastRun()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load previous run")
		previous = nil
	}

	seq, err := store.SaveRun(run)
	if err != nil {
		log.Warn().Err(err).Msg("failed to record run")
		return previous
	}
	log.Debug().Uint64("seq", seq).Str("path", path).Msg("run recorded")

	return previous
}
