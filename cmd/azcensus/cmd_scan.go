package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	scanConfigPath string
	scanProfile    string
	scanOutput     string
	scanIgnore     string
	scanTimeout    time.Duration
	scanNoStore    bool
	scanStorePath  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Count resources across all enabled subscriptions",
	Long: `Scan every enabled Azure subscription and print a per-subscription
and grand-total census of the counted resource categories.

Disabled subscriptions are skipped entirely. Fetch failures inside one
subscription leave the affected counts at zero and are reported in the
trailing error block; the exit status is non-zero when any error occurred.`,
	Example: `  azcensus scan                                  # Scan with default credentials
  azcensus scan --profile prod                   # Use a named Azure CLI profile
  azcensus scan --output json                    # Machine-readable run output
  azcensus scan --ignore-subscriptions dev,test  # Skip subscriptions by name or ID
  azcensus scan --no-store                       # Do not record the run locally`,
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "Path to config file")
	scanCmd.Flags().StringVarP(&scanProfile, "profile", "p", "", "Azure CLI profile to authenticate with")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "table", "Output format: table, json")
	scanCmd.Flags().StringVarP(&scanIgnore, "ignore-subscriptions", "i", "", "Comma-separated subscription names or IDs to skip")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "Per-call timeout for inventory requests")
	scanCmd.Flags().BoolVar(&scanNoStore, "no-store", false, "Do not record the run in the local history")
	scanCmd.Flags().StringVar(&scanStorePath, "store-path", "", "Run history database path")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Build scan command from flags
	scanCommand := &ScanCommand{
		ConfigPath: scanConfigPath,
		Profile:    scanProfile,
		Output:     scanOutput,
		Timeout:    scanTimeout,
		NoStore:    scanNoStore,
		StorePath:  scanStorePath,
	}
	if scanIgnore != "" {
		scanCommand.Ignore = strings.Split(scanIgnore, ",")
	}

	// Validate output format
	validOutputs := []string{"table", "json"}
	if !contains(validOutputs, scanCommand.Output) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			scanCommand.Output, strings.Join(validOutputs, ", "))
	}

	// Execute scan
	return scanCommand.Run()
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
