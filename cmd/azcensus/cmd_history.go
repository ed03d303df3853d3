package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yairfalse/azcensus/config"
	"github.com/yairfalse/azcensus/storage"
	"github.com/yairfalse/azcensus/types"
)

var (
	historyLimit     int
	historyStorePath string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded census runs",
	Long: `List past census runs recorded in the local history store,
most recent first, with their grand totals per category.`,
	Example: `  azcensus history              # Last 10 runs
  azcensus history --limit 0    # All recorded runs`,
	SilenceUsage: true,
	RunE:         runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum runs to list (0 lists all)")
	historyCmd.Flags().StringVar(&historyStorePath, "store-path", "", "Run history database path")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if historyStorePath != "" {
		cfg.Store.Path = historyStorePath
	}

	path, err := cfg.StorePath()
	if err != nil {
		return err
	}

	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open run store: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "RUN\tTIME\tSUBSCRIPTIONS\tERRORS")
	for _, cat := range types.CategoryOrder {
		fmt.Fprintf(w, "\t%s", shortLabel(cat))
	}
	fmt.Fprintln(w)

	for _, stored := range runs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d",
			stored.Seq,
			stored.Run.Timestamp.Format("2006-01-02 15:04"),
			len(stored.Run.Subscriptions),
			len(stored.Run.Errors))
		for _, cat := range types.CategoryOrder {
			fmt.Fprintf(w, "\t%d", stored.Run.Totals[cat])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

// shortLabel compresses category names for the table header.
func shortLabel(cat types.Category) string {
	switch cat {
	case types.CategoryVirtualMachines:
		return "VMS"
	case types.CategoryContainerHosts:
		return "AKS NODES"
	case types.CategoryCaaS:
		return "CAAS"
	case types.CategoryServerlessFunctions:
		return "FUNCTIONS"
	case types.CategoryCloudBuckets:
		return "BUCKETS"
	case types.CategoryManagedDatabase:
		return "DATABASES"
	case types.CategoryContainerRegistries:
		return "REGISTRIES"
	default:
		return string(cat)
	}
}
